// Package repositories defines repository interfaces for the notes service.
package repositories

import (
	"context"
	"errors"

	"notekeep/internal/notes/domain/entities"
)

// Storage outcome errors shared by all NoteRepository implementations.
var (
	// ErrNoteNotFound is returned when a write targets a note that does not
	// exist.
	ErrNoteNotFound = errors.New("note not found")

	// ErrNoteAlreadyExists is returned when an insert violates a uniqueness
	// constraint.
	ErrNoteAlreadyExists = errors.New("note already exists")
)

// NoteRepository is the storage-access capability for note records.
type NoteRepository interface {
	// Create inserts a new note and returns it with the database-assigned
	// ID and creation timestamp.
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)

	// GetByID returns the note with the given ID, or (nil, nil) when no such
	// record exists.
	GetByID(ctx context.Context, noteID int64) (*entities.Note, error)

	// List returns all notes ordered by ID.
	List(ctx context.Context) ([]*entities.Note, error)

	// Replace overwrites the title and text of an existing note.
	Replace(ctx context.Context, note *entities.Note) error

	// Delete removes the note with the given ID.
	Delete(ctx context.Context, noteID int64) error
}
