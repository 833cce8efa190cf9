// Package entities defines the domain entities for the notes service.
package entities

import "time"

// Note is a single persisted note record. ID and CreatedAt are assigned by
// the database and immutable afterwards.
type Note struct {
	ID        int64     `json:"note_id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"data"`
}

// NewNote creates a note with the given title and text. ID and CreatedAt are
// populated by the repository on insert.
func NewNote(title, text string) *Note {
	return &Note{
		Title: title,
		Text:  text,
	}
}
