package domain

// Condition is a saved target-search filter expression owned by a user.
type Condition struct {
	ID      int    `json:"id" db:"id"`
	OwnerID int64  `json:"owner_id" db:"owner_id"`
	Name    string `json:"name" db:"name"`
	Value   string `json:"value" db:"value"`
}

// Credentials stores a nation's upstream API key, keyed by nation ID.
type Credentials struct {
	NationID int    `json:"nation_id" db:"nation_id"`
	APIKey   string `json:"api_key" db:"api_key"`
}

// Forum is one upstream forum board.
type Forum struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Link string `json:"link" db:"link"`
}

// Role is an alliance-internal role with a permission bitfield.
type Role struct {
	ID          int     `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	AllianceID  int     `json:"alliance_id" db:"alliance_id"`
	Rank        int     `json:"rank" db:"rank"`
	Permissions int64   `json:"permissions" db:"permissions"`
	MemberIDs   []int64 `json:"member_ids" db:"member_ids"`
}

// Target is a saved war target.
type Target struct {
	ID       int    `json:"id" db:"id"`
	OwnerID  int64  `json:"owner_id" db:"owner_id"`
	NationID int    `json:"nation_id" db:"nation_id"`
	Note     string `json:"note" db:"note"`
}

// TargetReminder pings channels, roles or users when a target nation
// leaves protection.
type TargetReminder struct {
	ID            int     `json:"id" db:"id"`
	NationID      int     `json:"nation_id" db:"nation_id"`
	OwnerID       int64   `json:"owner_id" db:"owner_id"`
	ChannelIDs    []int64 `json:"channel_ids" db:"channel_ids"`
	RoleIDs       []int64 `json:"role_ids" db:"role_ids"`
	UserIDs       []int64 `json:"user_ids" db:"user_ids"`
	DirectMessage bool    `json:"direct_message" db:"direct_message"`
}
