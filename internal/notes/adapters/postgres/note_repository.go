// Package postgres provides the PostgreSQL implementation of the note
// repository.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"notekeep/internal/notes/domain/entities"
	"notekeep/internal/notes/ports/repositories"
	"notekeep/pkg/logger"
)

// Pool is the subset of pgxpool.Pool the repository uses. pgxmock satisfies
// it in tests.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NoteRepository implements repositories.NoteRepository over Postgres.
type NoteRepository struct {
	pool Pool
}

// NewNoteRepository creates a note repository backed by the given pool.
func NewNoteRepository(pool Pool) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// Create inserts a new note. The database assigns note_id and created_at.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Create"))
	log.Debug(ctx, "creating new note", zap.String("title", note.Title))

	created := &entities.Note{Title: note.Title, Text: note.Text}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO notes (title, text) VALUES ($1, $2) RETURNING note_id, created_at`,
		note.Title, note.Text,
	).Scan(&created.ID, &created.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			log.Debug(ctx, "uniqueness violation on insert", zap.String("constraint", pgErr.ConstraintName))
			return nil, repositories.ErrNoteAlreadyExists
		}
		log.Error(ctx, "failed to create note", zap.Error(err))
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	log.Debug(ctx, "note created", zap.Int64("noteID", created.ID))
	return created, nil
}

// GetByID fetches a note by ID, returning (nil, nil) when it does not exist.
func (r *NoteRepository) GetByID(ctx context.Context, noteID int64) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.GetByID"))
	log.Debug(ctx, "getting note", zap.Int64("noteID", noteID))

	var note entities.Note
	err := r.pool.QueryRow(ctx,
		`SELECT note_id, title, text, created_at FROM notes WHERE note_id = $1`,
		noteID,
	).Scan(&note.ID, &note.Title, &note.Text, &note.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.Int64("noteID", noteID))
			return nil, nil
		}
		log.Error(ctx, "failed to get note", zap.Error(err))
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return &note, nil
}

// List returns all notes ordered by ID.
func (r *NoteRepository) List(ctx context.Context) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.List"))
	log.Debug(ctx, "listing notes")

	rows, err := r.pool.Query(ctx,
		`SELECT note_id, title, text, created_at FROM notes ORDER BY note_id`,
	)
	if err != nil {
		log.Error(ctx, "failed to list notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		var note entities.Note
		err := rows.Scan(&note.ID, &note.Title, &note.Text, &note.CreatedAt)
		if err != nil {
			log.Error(ctx, "failed to scan note", zap.Error(err))
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return notes, nil
}

// Replace overwrites the title and text of an existing note. created_at is
// never touched.
func (r *NoteRepository) Replace(ctx context.Context, note *entities.Note) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Replace"))
	log.Debug(ctx, "replacing note", zap.Int64("noteID", note.ID))

	result, err := r.pool.Exec(ctx,
		`UPDATE notes SET title = $1, text = $2 WHERE note_id = $3`,
		note.Title, note.Text, note.ID,
	)
	if err != nil {
		log.Error(ctx, "failed to replace note", zap.Error(err))
		return fmt.Errorf("failed to replace note: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found", zap.Int64("noteID", note.ID))
		return repositories.ErrNoteNotFound
	}

	return nil
}

// Delete removes a note by ID.
func (r *NoteRepository) Delete(ctx context.Context, noteID int64) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Delete"))
	log.Debug(ctx, "deleting note", zap.Int64("noteID", noteID))

	result, err := r.pool.Exec(ctx,
		`DELETE FROM notes WHERE note_id = $1`,
		noteID,
	)
	if err != nil {
		log.Error(ctx, "failed to delete note", zap.Error(err))
		return fmt.Errorf("failed to delete note: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found", zap.Int64("noteID", noteID))
		return repositories.ErrNoteNotFound
	}

	return nil
}
