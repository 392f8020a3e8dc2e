package domain

import "time"

// Nation represents one in-game nation, keyed by its upstream numeric ID.
// AllianceID is zero for nations that are not in an alliance.
type Nation struct {
	ID                int       `json:"id" db:"id"`
	Name              string    `json:"name" db:"name"`
	Leader            string    `json:"leader" db:"leader"`
	AllianceID        int       `json:"alliance_id" db:"alliance_id"`
	AlliancePosition  string    `json:"alliance_position" db:"alliance_position"`
	Continent         string    `json:"continent" db:"continent"`
	WarPolicy         string    `json:"war_policy" db:"war_policy"`
	DomesticPolicy    string    `json:"domestic_policy" db:"domestic_policy"`
	Color             string    `json:"color" db:"color"`
	NumCities         int       `json:"num_cities" db:"num_cities"`
	Score             float64   `json:"score" db:"score"`
	Flag              string    `json:"flag" db:"flag"`
	VacationModeTurns int       `json:"vacation_mode_turns" db:"vacation_mode_turns"`
	BeigeTurns        int       `json:"beige_turns" db:"beige_turns"`
	Founded           time.Time `json:"founded" db:"founded"`
}

// NationPatch is the partial nation record carried by a hook event.
type NationPatch struct {
	ID                *int       `json:"id"`
	Name              *string    `json:"name"`
	Leader            *string    `json:"leader"`
	AllianceID        *int       `json:"alliance_id"`
	AlliancePosition  *string    `json:"alliance_position"`
	Continent         *string    `json:"continent"`
	WarPolicy         *string    `json:"war_policy"`
	DomesticPolicy    *string    `json:"domestic_policy"`
	Color             *string    `json:"color"`
	NumCities         *int       `json:"num_cities"`
	Score             *float64   `json:"score"`
	Flag              *string    `json:"flag"`
	VacationModeTurns *int       `json:"vacation_mode_turns"`
	BeigeTurns        *int       `json:"beige_turns"`
	Founded           *time.Time `json:"founded"`
}

// Apply merges the non-nil fields of the patch into the nation.
func (n *Nation) Apply(p NationPatch) {
	if p.ID != nil {
		n.ID = *p.ID
	}
	if p.Name != nil {
		n.Name = *p.Name
	}
	if p.Leader != nil {
		n.Leader = *p.Leader
	}
	if p.AllianceID != nil {
		n.AllianceID = *p.AllianceID
	}
	if p.AlliancePosition != nil {
		n.AlliancePosition = *p.AlliancePosition
	}
	if p.Continent != nil {
		n.Continent = *p.Continent
	}
	if p.WarPolicy != nil {
		n.WarPolicy = *p.WarPolicy
	}
	if p.DomesticPolicy != nil {
		n.DomesticPolicy = *p.DomesticPolicy
	}
	if p.Color != nil {
		n.Color = *p.Color
	}
	if p.NumCities != nil {
		n.NumCities = *p.NumCities
	}
	if p.Score != nil {
		n.Score = *p.Score
	}
	if p.Flag != nil {
		n.Flag = *p.Flag
	}
	if p.VacationModeTurns != nil {
		n.VacationModeTurns = *p.VacationModeTurns
	}
	if p.BeigeTurns != nil {
		n.BeigeTurns = *p.BeigeTurns
	}
	if p.Founded != nil {
		n.Founded = *p.Founded
	}
}

// Materialize builds a new nation from the patch alone.
func (p NationPatch) Materialize() *Nation {
	n := &Nation{}
	n.Apply(p)
	return n
}
