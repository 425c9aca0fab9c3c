package models

import "time"

// UnloadEntry is one free-text journal entry. Entries are persisted as an
// unordered collection and presented sorted by UpdatedAt descending.
type UnloadEntry struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Content   string    `json:"content"`
}
