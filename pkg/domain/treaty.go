package domain

import "time"

// Treaty is a pact between two alliances. Beyond the raw endpoint IDs it
// carries live references to both alliances, resolved against the cache at
// construction or update time. A reference stays nil when the alliance is
// not cached at that moment, and it is never repaired retroactively: if
// the alliance arrives (or is deleted) later, the treaty keeps whatever it
// resolved first. Treaties have no surrogate key; they are matched by the
// (FromID, ToID, Type) triple.
type Treaty struct {
	FromID  int        `json:"from_id" db:"from_id"`
	ToID    int        `json:"to_id" db:"to_id"`
	Type    string     `json:"treaty_type" db:"treaty_type"`
	Started time.Time  `json:"started" db:"started"`
	Stopped *time.Time `json:"stopped" db:"stopped"`

	// Resolved endpoints, nil when the alliance was absent at resolution time.
	From *Alliance `json:"-" db:"-"`
	To   *Alliance `json:"-" db:"-"`
}

// Active reports whether the treaty has not been stopped.
func (t *Treaty) Active() bool {
	return t.Stopped == nil
}

// Resolve attaches the given alliance references to the treaty.
func (t *Treaty) Resolve(from, to *Alliance) {
	t.From = from
	t.To = to
}

// TreatyPatch is the partial treaty record carried by a hook event.
type TreatyPatch struct {
	FromID  *int       `json:"from_id"`
	ToID    *int       `json:"to_id"`
	Type    *string    `json:"treaty_type"`
	Started *time.Time `json:"started"`
	Stopped *time.Time `json:"stopped"`
}

// Apply merges the non-nil fields of the patch into the treaty. Stopped is
// merged like any other field, so a delete payload carrying a stop
// timestamp marks the treaty stopped in place.
func (t *Treaty) Apply(p TreatyPatch) {
	if p.FromID != nil {
		t.FromID = *p.FromID
	}
	if p.ToID != nil {
		t.ToID = *p.ToID
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Started != nil {
		t.Started = *p.Started
	}
	if p.Stopped != nil {
		t.Stopped = p.Stopped
	}
}

// Materialize builds a new treaty from the patch alone, with unresolved
// endpoints.
func (p TreatyPatch) Materialize() *Treaty {
	t := &Treaty{}
	t.Apply(p)
	return t
}
