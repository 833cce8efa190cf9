// Package api defines the application-service interfaces consumed by
// transport adapters.
package api

import (
	"context"

	"notekeep/internal/notes/domain/entities"
)

// NoteService is the use-case surface the HTTP layer depends on.
type NoteService interface {
	CreateNote(ctx context.Context, title, text *string) (*entities.Note, error)
	GetNote(ctx context.Context, noteID int64) (*entities.Note, error)
	ListNotes(ctx context.Context) ([]*entities.Note, error)
	ReplaceNote(ctx context.Context, noteID int64, title, text *string) (*entities.Note, error)
	DeleteNote(ctx context.Context, noteID int64) error
}
