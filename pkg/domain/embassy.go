package domain

// Embassy is a channel opened for an alliance inside a guild.
type Embassy struct {
	ID         int   `json:"id" db:"id"`
	AllianceID int   `json:"alliance_id" db:"alliance_id"`
	GuildID    int64 `json:"guild_id" db:"guild_id"`
	ChannelID  int64 `json:"channel_id" db:"channel_id"`
	ConfigID   int   `json:"config_id" db:"config_id"`
	Archived   bool  `json:"archived" db:"archived"`
}

// EmbassyConfig describes where and how embassies are created in a guild.
type EmbassyConfig struct {
	ID           int    `json:"id" db:"id"`
	GuildID      int64  `json:"guild_id" db:"guild_id"`
	CategoryID   int64  `json:"category_id" db:"category_id"`
	StartMessage string `json:"start_message" db:"start_message"`
}

// Ticket is a support ticket channel opened by a user.
type Ticket struct {
	ID           int   `json:"id" db:"id"`
	TicketNumber int   `json:"ticket_number" db:"ticket_number"`
	GuildID      int64 `json:"guild_id" db:"guild_id"`
	ChannelID    int64 `json:"channel_id" db:"channel_id"`
	OwnerID      int64 `json:"owner_id" db:"owner_id"`
	ConfigID     int   `json:"config_id" db:"config_id"`
	Open         bool  `json:"open" db:"open"`
}

// TicketConfig describes where and how tickets are created in a guild.
type TicketConfig struct {
	ID                int    `json:"id" db:"id"`
	GuildID           int64  `json:"guild_id" db:"guild_id"`
	CategoryID        int64  `json:"category_id" db:"category_id"`
	StartMessage      string `json:"start_message" db:"start_message"`
	ArchiveCategoryID int64  `json:"archive_category_id" db:"archive_category_id"`
}
