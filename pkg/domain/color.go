package domain

// Color is one trade-bloc color and its current turn bonus.
// Colors are keyed by their lowercase color name ("aqua", "beige", ...).
// The upstream stores the full color set as a single versioned snapshot
// row, so bootstrap fans the most recent row out into one Color per entry.
type Color struct {
	Name      string `json:"color" db:"color"`
	BlocName  string `json:"bloc_name" db:"bloc_name"`
	TurnBonus int    `json:"turn_bonus" db:"turn_bonus"`
}

// ColorPatch is the partial color record carried by a hook event.
type ColorPatch struct {
	Name      *string `json:"color"`
	BlocName  *string `json:"bloc_name"`
	TurnBonus *int    `json:"turn_bonus"`
}

// Apply merges the non-nil fields of the patch into the color.
func (c *Color) Apply(p ColorPatch) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.BlocName != nil {
		c.BlocName = *p.BlocName
	}
	if p.TurnBonus != nil {
		c.TurnBonus = *p.TurnBonus
	}
}

// Materialize builds a new color from the patch alone.
func (p ColorPatch) Materialize() *Color {
	c := &Color{}
	c.Apply(p)
	return c
}
