package domain

import "time"

// Comment can only be left by a user whose booking of the item has ended.
type Comment struct {
	ID       int64     `json:"id"`
	Text     string    `json:"text"`
	ItemID   int64     `json:"item_id"`
	AuthorID int64     `json:"author_id"`
	Author   *User     `json:"author,omitempty"` // Populated on reads
	Created  time.Time `json:"created"`
}
