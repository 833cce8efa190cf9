// Package dto defines the HTTP request and response shapes for the notes
// service. The wire keys (note_id, title, text, data) are frozen for
// compatibility with existing clients.
package dto

import (
	"time"

	"notekeep/internal/notes/domain/entities"
)

// CreateNoteRequest carries the body of POST /notes. Pointer fields make an
// absent field distinguishable from an empty string.
type CreateNoteRequest struct {
	Title *string `json:"title"`
	Text  *string `json:"text"`
}

// ReplaceNoteRequest carries the body of PUT /notes/:note_id. Absent fields
// clear the stored value (full replace).
type ReplaceNoteRequest struct {
	Title *string `json:"title"`
	Text  *string `json:"text"`
}

// NoteResponse is a single note on the wire. The data field holds the
// creation timestamp.
type NoteResponse struct {
	NoteID    int64     `json:"note_id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"data"`
}

// NewNoteResponse converts a domain note to its wire shape.
func NewNoteResponse(note *entities.Note) *NoteResponse {
	return &NoteResponse{
		NoteID:    note.ID,
		Title:     note.Title,
		Text:      note.Text,
		CreatedAt: note.CreatedAt,
	}
}

// NewNoteListResponse converts a slice of domain notes, never returning nil
// so an empty list serializes as [].
func NewNoteListResponse(notes []*entities.Note) []*NoteResponse {
	response := make([]*NoteResponse, 0, len(notes))
	for _, note := range notes {
		response = append(response, NewNoteResponse(note))
	}
	return response
}
