package domain

// GuildSettings holds per-guild bot configuration, keyed by guild ID.
type GuildSettings struct {
	GuildID         int64   `json:"guild_id" db:"guild_id"`
	Purpose         string  `json:"purpose" db:"purpose"`
	PurposeArgument string  `json:"purpose_argument" db:"purpose_argument"`
	ManagerRoleIDs  []int64 `json:"manager_role_ids" db:"manager_role_ids"`
}

// GuildWelcomeSettings configures how new members are greeted and which
// roles they receive, keyed by guild ID.
type GuildWelcomeSettings struct {
	GuildID           int64   `json:"guild_id" db:"guild_id"`
	WelcomeMessage    string  `json:"welcome_message" db:"welcome_message"`
	WelcomeChannelIDs []int64 `json:"welcome_channel_ids" db:"welcome_channel_ids"`
	JoinRoleIDs       []int64 `json:"join_role_ids" db:"join_role_ids"`
	VerifiedRoleIDs   []int64 `json:"verified_role_ids" db:"verified_role_ids"`
	MemberRoleIDs     []int64 `json:"member_role_ids" db:"member_role_ids"`
	DiplomatRoleIDs   []int64 `json:"diplomat_role_ids" db:"diplomat_role_ids"`
	VerifiedNickname  string  `json:"verified_nickname" db:"verified_nickname"`
}
