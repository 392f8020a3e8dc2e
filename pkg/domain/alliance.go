package domain

import "time"

// Alliance represents one in-game alliance.
// Alliances are keyed by their upstream numeric ID and are referenced
// by nations (membership) and treaties (both endpoints).
type Alliance struct {
	ID             int       `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Acronym        string    `json:"acronym" db:"acronym"`
	Score          float64   `json:"score" db:"score"`
	Color          string    `json:"color" db:"color"`
	Founded        time.Time `json:"founded" db:"founded"`
	AcceptsMembers bool      `json:"accepts_members" db:"accepts_members"`
	Flag           string    `json:"flag" db:"flag"`
	ForumLink      string    `json:"forum_link" db:"forum_link"`
	DiscordLink    string    `json:"discord_link" db:"discord_link"`
}

// AlliancePatch is the partial alliance record carried by a hook event.
// Nil fields were absent from the payload and must not overwrite the
// stored value.
type AlliancePatch struct {
	ID             *int       `json:"id"`
	Name           *string    `json:"name"`
	Acronym        *string    `json:"acronym"`
	Score          *float64   `json:"score"`
	Color          *string    `json:"color"`
	Founded        *time.Time `json:"founded"`
	AcceptsMembers *bool      `json:"accepts_members"`
	Flag           *string    `json:"flag"`
	ForumLink      *string    `json:"forum_link"`
	DiscordLink    *string    `json:"discord_link"`
}

// Apply merges the non-nil fields of the patch into the alliance.
func (a *Alliance) Apply(p AlliancePatch) {
	if p.ID != nil {
		a.ID = *p.ID
	}
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Acronym != nil {
		a.Acronym = *p.Acronym
	}
	if p.Score != nil {
		a.Score = *p.Score
	}
	if p.Color != nil {
		a.Color = *p.Color
	}
	if p.Founded != nil {
		a.Founded = *p.Founded
	}
	if p.AcceptsMembers != nil {
		a.AcceptsMembers = *p.AcceptsMembers
	}
	if p.Flag != nil {
		a.Flag = *p.Flag
	}
	if p.ForumLink != nil {
		a.ForumLink = *p.ForumLink
	}
	if p.DiscordLink != nil {
		a.DiscordLink = *p.DiscordLink
	}
}

// Materialize builds a new alliance from the patch alone.
// Fields absent from the patch are left at their zero value.
func (p AlliancePatch) Materialize() *Alliance {
	a := &Alliance{}
	a.Apply(p)
	return a
}

// AllianceAutoRole binds a Discord role to an alliance so membership
// roles can be assigned automatically. Auto-role bindings have no
// primary key; they are matched by (RoleID, AllianceID).
type AllianceAutoRole struct {
	RoleID     int64 `json:"role_id" db:"role_id"`
	GuildID    int64 `json:"guild_id" db:"guild_id"`
	AllianceID int   `json:"alliance_id" db:"alliance_id"`
}

// Matches reports whether two bindings refer to the same role/alliance pair.
func (r *AllianceAutoRole) Matches(other *AllianceAutoRole) bool {
	return r.RoleID == other.RoleID && r.AllianceID == other.AllianceID
}

// AllianceSettings holds per-alliance bot configuration, keyed by alliance ID.
type AllianceSettings struct {
	AllianceID              int     `json:"alliance_id" db:"alliance_id"`
	DefaultRaidCondition    string  `json:"default_raid_condition" db:"default_raid_condition"`
	WithdrawChannelIDs      []int64 `json:"withdraw_channel_ids" db:"withdraw_channel_ids"`
	RequireWithdrawApproval bool    `json:"require_withdraw_approval" db:"require_withdraw_approval"`
	OffshoreID              int     `json:"offshore_id" db:"offshore_id"`
}
