package domain

import "encoding/json"

// Menu is a configured interactive menu (rows of item IDs laid out as a
// message component grid).
type Menu struct {
	ID          int       `json:"id" db:"id"`
	GuildID     int64     `json:"guild_id" db:"guild_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Layout      [][]int64 `json:"layout" db:"layout"`
}

// MenuItem is a single button or select within a menu. Data carries the
// item's action payload verbatim; the cache does not interpret it.
type MenuItem struct {
	ID      int             `json:"id" db:"id"`
	GuildID int64           `json:"guild_id" db:"guild_id"`
	Type    string          `json:"type" db:"type"`
	Data    json.RawMessage `json:"data" db:"data"`
}

// MenuInterface records one posted instance of a menu. Interfaces have no
// primary key; they are matched by the (MenuID, MessageID) pair.
type MenuInterface struct {
	MenuID    int   `json:"menu_id" db:"menu_id"`
	GuildID   int64 `json:"guild_id" db:"guild_id"`
	ChannelID int64 `json:"channel_id" db:"channel_id"`
	MessageID int64 `json:"message_id" db:"message_id"`
}
