package hooks

import "encoding/json"

// Kind identifies the entity kind a hook event targets. Only the kinds
// the upstream watcher pushes changes for are dispatchable; every other
// cached kind is mutated exclusively through the accessor API.
type Kind string

const (
	KindAlliance Kind = "alliance"
	KindCity     Kind = "city"
	KindColor    Kind = "color"
	KindNation   Kind = "nation"
	KindPrices   Kind = "prices"
	KindTreasure Kind = "treasure"
	KindTreaty   Kind = "treaty"
)

// IsValid returns true if the kind is dispatchable.
func (k Kind) IsValid() bool {
	switch k {
	case KindAlliance, KindCity, KindColor, KindNation, KindPrices, KindTreasure, KindTreaty:
		return true
	default:
		return false
	}
}

// Action is the change kind carried by a hook event.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// IsValid returns true if the action is a known action.
func (a Action) IsValid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionDelete:
		return true
	default:
		return false
	}
}

// Event is one change notification pushed by the external ingestion
// process. Payload carries the raw partial record for the event's kind;
// how the event reaches the process is outside this package.
type Event struct {
	Kind    Kind            `json:"kind"`
	Action  Action          `json:"action"`
	Payload json.RawMessage `json:"payload"`
}
