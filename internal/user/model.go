package user

import "time"

// User represents a registered user. The ID is immutable once created;
// the user's balance sheet is opened in the ledger at registration and
// shares the user's lifetime.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
