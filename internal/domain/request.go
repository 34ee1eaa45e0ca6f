package domain

import "time"

// ItemRequest is a user's public ask for an item type not currently listed.
// Items fulfilling it reference it by RequestID.
type ItemRequest struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	RequestorID int64     `json:"requestor_id"`
	Created     time.Time `json:"created"`
}
