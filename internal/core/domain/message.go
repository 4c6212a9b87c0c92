package domain

import "time"

// Message is a note sent by a staff member to the admin inbox. Messages are
// immutable once created; there is no update or delete operation.
type Message struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
