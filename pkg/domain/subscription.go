package domain

// EventCategory identifies the entity kind a subscription listens to.
type EventCategory string

const (
	EventCategoryAlliance EventCategory = "ALLIANCE"
	EventCategoryForum    EventCategory = "FORUM"
	EventCategoryNation   EventCategory = "NATION"
	EventCategoryTreaty   EventCategory = "TREATY"
)

// IsValid returns true if the category is a known event category.
func (c EventCategory) IsValid() bool {
	switch c {
	case EventCategoryAlliance, EventCategoryForum, EventCategoryNation, EventCategoryTreaty:
		return true
	default:
		return false
	}
}

// EventType identifies the change kind a subscription listens to.
type EventType string

const (
	EventTypeCreate EventType = "CREATE"
	EventTypeUpdate EventType = "UPDATE"
	EventTypeDelete EventType = "DELETE"
)

// IsValid returns true if the type is a known event type.
func (t EventType) IsValid() bool {
	switch t {
	case EventTypeCreate, EventTypeUpdate, EventTypeDelete:
		return true
	default:
		return false
	}
}

// Subscription routes upstream change events of one category/type to a
// guild channel.
type Subscription struct {
	ID        int           `json:"id" db:"id"`
	Token     string        `json:"token" db:"token"`
	GuildID   int64         `json:"guild_id" db:"guild_id"`
	ChannelID int64         `json:"channel_id" db:"channel_id"`
	Category  EventCategory `json:"category" db:"category"`
	Type      EventType     `json:"type" db:"type"`
	SubTypes  []string      `json:"sub_types" db:"sub_types"`
	Arguments []int64       `json:"arguments" db:"arguments"`
}
