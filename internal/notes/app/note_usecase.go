// Package app implements the application business logic for the notes
// service.
package app

import (
	"context"
	"errors"
	"fmt"

	"notekeep/internal/notes/domain/entities"
	"notekeep/internal/notes/ports/repositories"
)

// Business-level error kinds. Transport adapters map these to status codes;
// anything else is an internal fault.
var (
	ErrNoteNotFound      = errors.New("note not found")
	ErrNoteAlreadyExists = errors.New("note already exists")
	ErrTitleRequired     = errors.New("title is required")
	ErrTextRequired      = errors.New("text is required")
)

// NoteUseCase implements the note CRUD operations over a repository.
type NoteUseCase struct {
	noteRepo repositories.NoteRepository
}

// NewNoteUseCase creates a new NoteUseCase.
func NewNoteUseCase(noteRepo repositories.NoteRepository) *NoteUseCase {
	return &NoteUseCase{noteRepo: noteRepo}
}

// CreateNote creates a new note. Both title and text must be present in the
// request; their values are stored verbatim, length limits are enforced by
// the storage schema.
func (uc *NoteUseCase) CreateNote(ctx context.Context, title, text *string) (*entities.Note, error) {
	if title == nil {
		return nil, ErrTitleRequired
	}
	if text == nil {
		return nil, ErrTextRequired
	}

	note, err := uc.noteRepo.Create(ctx, entities.NewNote(*title, *text))
	if err != nil {
		if errors.Is(err, repositories.ErrNoteAlreadyExists) {
			return nil, ErrNoteAlreadyExists
		}
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return note, nil
}

// GetNote returns the note with the given ID.
func (uc *NoteUseCase) GetNote(ctx context.Context, noteID int64) (*entities.Note, error) {
	note, err := uc.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}

	return note, nil
}

// ListNotes returns all existing notes.
func (uc *NoteUseCase) ListNotes(ctx context.Context) ([]*entities.Note, error) {
	notes, err := uc.noteRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	return notes, nil
}

// ReplaceNote overwrites the title and text of an existing note. Fields
// absent from the request become empty, a full replace rather than a patch.
// The creation timestamp is immutable.
func (uc *NoteUseCase) ReplaceNote(ctx context.Context, noteID int64, title, text *string) (*entities.Note, error) {
	note, err := uc.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}

	note.Title = ""
	note.Text = ""
	if title != nil {
		note.Title = *title
	}
	if text != nil {
		note.Text = *text
	}

	if err := uc.noteRepo.Replace(ctx, note); err != nil {
		if errors.Is(err, repositories.ErrNoteNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to replace note: %w", err)
	}

	return note, nil
}

// DeleteNote removes the note with the given ID.
func (uc *NoteUseCase) DeleteNote(ctx context.Context, noteID int64) error {
	if err := uc.noteRepo.Delete(ctx, noteID); err != nil {
		if errors.Is(err, repositories.ErrNoteNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("failed to delete note: %w", err)
	}

	return nil
}
