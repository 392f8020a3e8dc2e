package domain

import "github.com/google/uuid"

// User links a Discord account to an in-game nation. A user may be looked
// up by either identity, so the container holds users keyless and scans.
// The UUID is issued during account verification.
type User struct {
	UserID   int64     `json:"user_id" db:"user_id"`
	NationID int       `json:"nation_id" db:"nation_id"`
	UUID     uuid.UUID `json:"uuid" db:"uuid"`
}

// MatchesID reports whether the given identity is the user's Discord ID
// or nation ID.
func (u *User) MatchesID(id int64) bool {
	return u.UserID == id || int64(u.NationID) == id
}
