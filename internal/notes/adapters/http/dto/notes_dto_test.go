package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeep/internal/notes/adapters/http/dto"
	"notekeep/internal/notes/domain/entities"
)

func TestNoteResponseWireKeys(t *testing.T) {
	note := &entities.Note{
		ID:        42,
		Title:     "T",
		Text:      "X",
		CreatedAt: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(dto.NewNoteResponse(note))
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"note_id":42,"title":"T","text":"X","data":"2025-03-10T12:00:00Z"}`,
		string(raw))
}

func TestNoteListResponseNeverNil(t *testing.T) {
	raw, err := json.Marshal(dto.NewNoteListResponse(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}
