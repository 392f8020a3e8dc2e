package domain

import "time"

// City represents one city belonging to a nation.
type City struct {
	ID             int       `json:"id" db:"id"`
	NationID       int       `json:"nation_id" db:"nation_id"`
	Name           string    `json:"name" db:"name"`
	Capital        bool      `json:"capital" db:"capital"`
	Infrastructure float64   `json:"infrastructure" db:"infrastructure"`
	Land           float64   `json:"land" db:"land"`
	Powered        bool      `json:"powered" db:"powered"`
	Founded        time.Time `json:"founded" db:"founded"`
}

// CityPatch is the partial city record carried by a hook event.
type CityPatch struct {
	ID             *int       `json:"id"`
	NationID       *int       `json:"nation_id"`
	Name           *string    `json:"name"`
	Capital        *bool      `json:"capital"`
	Infrastructure *float64   `json:"infrastructure"`
	Land           *float64   `json:"land"`
	Powered        *bool      `json:"powered"`
	Founded        *time.Time `json:"founded"`
}

// Apply merges the non-nil fields of the patch into the city.
func (c *City) Apply(p CityPatch) {
	if p.ID != nil {
		c.ID = *p.ID
	}
	if p.NationID != nil {
		c.NationID = *p.NationID
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Capital != nil {
		c.Capital = *p.Capital
	}
	if p.Infrastructure != nil {
		c.Infrastructure = *p.Infrastructure
	}
	if p.Land != nil {
		c.Land = *p.Land
	}
	if p.Powered != nil {
		c.Powered = *p.Powered
	}
	if p.Founded != nil {
		c.Founded = *p.Founded
	}
}

// Materialize builds a new city from the patch alone.
func (p CityPatch) Materialize() *City {
	c := &City{}
	c.Apply(p)
	return c
}
