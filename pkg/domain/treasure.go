package domain

import "time"

// Treasure is one collectible treasure. Treasures have no upstream ID;
// their name is unique among live treasures and serves as the natural key.
// Like colors and prices, the full treasure list is persisted as a single
// versioned snapshot row.
type Treasure struct {
	Name      string    `json:"name" db:"name"`
	Color     string    `json:"color" db:"color"`
	Continent string    `json:"continent" db:"continent"`
	Bonus     int       `json:"bonus" db:"bonus"`
	SpawnedAt time.Time `json:"spawn_date" db:"spawn_date"`
	NationID  int       `json:"nation_id" db:"nation_id"`
}

// TreasurePatch is the partial treasure record carried by a hook event.
// Name is the lookup key and is always present in well-formed payloads.
type TreasurePatch struct {
	Name      *string    `json:"name"`
	Color     *string    `json:"color"`
	Continent *string    `json:"continent"`
	Bonus     *int       `json:"bonus"`
	SpawnedAt *time.Time `json:"spawn_date"`
	NationID  *int       `json:"nation_id"`
}

// Apply merges the non-nil fields of the patch into the treasure.
func (t *Treasure) Apply(p TreasurePatch) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Color != nil {
		t.Color = *p.Color
	}
	if p.Continent != nil {
		t.Continent = *p.Continent
	}
	if p.Bonus != nil {
		t.Bonus = *p.Bonus
	}
	if p.SpawnedAt != nil {
		t.SpawnedAt = *p.SpawnedAt
	}
	if p.NationID != nil {
		t.NationID = *p.NationID
	}
}
