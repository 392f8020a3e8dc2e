package domain

import "time"

// Account is a member bank account held within an alliance bank.
type Account struct {
	ID         int       `json:"id" db:"id"`
	OwnerID    int64     `json:"owner_id" db:"owner_id"`
	AllianceID int       `json:"alliance_id" db:"alliance_id"`
	Name       string    `json:"name" db:"name"`
	Balance    Resources `json:"balance" db:"balance"`
	Primary    bool      `json:"primary" db:"primary"`
}

// Grant is a resource grant issued from an alliance bank to a nation.
type Grant struct {
	ID          int       `json:"id" db:"id"`
	RecipientID int64     `json:"recipient_id" db:"recipient_id"`
	AllianceID  int       `json:"alliance_id" db:"alliance_id"`
	Resources   Resources `json:"resources" db:"resources"`
	Note        string    `json:"note" db:"note"`
	Status      string    `json:"status" db:"status"`
}

// Transaction is one movement of resources between accounts, nations or
// alliance banks.
type Transaction struct {
	ID        int       `json:"id" db:"id"`
	Time      time.Time `json:"time" db:"time"`
	Status    string    `json:"status" db:"status"`
	Type      string    `json:"type" db:"type"`
	CreatorID int64     `json:"creator_id" db:"creator_id"`
	FromID    int       `json:"from_id" db:"from_id"`
	ToID      int       `json:"to_id" db:"to_id"`
	Resources Resources `json:"resources" db:"resources"`
	Note      string    `json:"note" db:"note"`
}

// TransactionRequest tracks the message through which a pending
// transaction awaits approval.
type TransactionRequest struct {
	ID            int   `json:"id" db:"id"`
	TransactionID int   `json:"transaction_id" db:"transaction_id"`
	ChannelID     int64 `json:"channel_id" db:"channel_id"`
	MessageID     int64 `json:"message_id" db:"message_id"`
}
