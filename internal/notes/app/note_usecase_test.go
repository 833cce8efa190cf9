package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"notekeep/internal/notes/app"
	"notekeep/internal/notes/domain/entities"
	"notekeep/internal/notes/ports/repositories"
)

var errDatabaseOperation = errors.New("database error")

type mockNoteRepository struct {
	mock.Mock
}

func (m *mockNoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) GetByID(ctx context.Context, noteID int64) (*entities.Note, error) {
	args := m.Called(ctx, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) List(ctx context.Context) ([]*entities.Note, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) Replace(ctx context.Context, note *entities.Note) error {
	return m.Called(ctx, note).Error(0)
}

func (m *mockNoteRepository) Delete(ctx context.Context, noteID int64) error {
	return m.Called(ctx, noteID).Error(0)
}

func strPtr(s string) *string {
	return &s
}

func TestNewNoteUseCase(t *testing.T) {
	mockRepo := new(mockNoteRepository)

	useCase := app.NewNoteUseCase(mockRepo)

	assert.NotNil(t, useCase, "NewNoteUseCase should return a non-nil object")
}

func TestCreateNote(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		title       *string
		text        *string
		setupMocks  func(mockRepo *mockNoteRepository)
		expected    *entities.Note
		expectedErr error
	}{
		{
			name:  "success - note created",
			title: strPtr("Shopping"),
			text:  strPtr("milk, bread"),
			setupMocks: func(mockRepo *mockNoteRepository) {
				mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *entities.Note) bool {
					return n.Title == "Shopping" && n.Text == "milk, bread"
				})).Return(&entities.Note{ID: 1, Title: "Shopping", Text: "milk, bread", CreatedAt: createdAt}, nil).Once()
			},
			expected: &entities.Note{ID: 1, Title: "Shopping", Text: "milk, bread", CreatedAt: createdAt},
		},
		{
			name:        "error - title absent",
			title:       nil,
			text:        strPtr("milk, bread"),
			setupMocks:  func(_ *mockNoteRepository) {},
			expectedErr: app.ErrTitleRequired,
		},
		{
			name:        "error - text absent",
			title:       strPtr("Shopping"),
			text:        nil,
			setupMocks:  func(_ *mockNoteRepository) {},
			expectedErr: app.ErrTextRequired,
		},
		{
			name:  "error - uniqueness violation",
			title: strPtr("Shopping"),
			text:  strPtr("milk, bread"),
			setupMocks: func(mockRepo *mockNoteRepository) {
				mockRepo.On("Create", mock.Anything, mock.Anything).
					Return(nil, repositories.ErrNoteAlreadyExists).Once()
			},
			expectedErr: app.ErrNoteAlreadyExists,
		},
		{
			name:  "error - storage fault",
			title: strPtr("Shopping"),
			text:  strPtr("milk, bread"),
			setupMocks: func(mockRepo *mockNoteRepository) {
				mockRepo.On("Create", mock.Anything, mock.Anything).
					Return(nil, errDatabaseOperation).Once()
			},
			expectedErr: errDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mockNoteRepository)
			tt.setupMocks(mockRepo)

			useCase := app.NewNoteUseCase(mockRepo)
			note, err := useCase.CreateNote(ctx, tt.title, tt.text)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, note)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, note)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGetNote(t *testing.T) {
	ctx := context.Background()
	existing := &entities.Note{ID: 7, Title: "T", Text: "X", CreatedAt: time.Now()}

	t.Run("success - note returned", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockRepo.On("GetByID", mock.Anything, int64(7)).Return(existing, nil).Once()

		useCase := app.NewNoteUseCase(mockRepo)
		note, err := useCase.GetNote(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, existing, note)
		mockRepo.AssertExpectations(t)
	})

	t.Run("error - note not found", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockRepo.On("GetByID", mock.Anything, int64(99999)).Return(nil, nil).Once()

		useCase := app.NewNoteUseCase(mockRepo)
		note, err := useCase.GetNote(ctx, 99999)

		require.Error(t, err)
		assert.ErrorIs(t, err, app.ErrNoteNotFound)
		assert.Nil(t, note)
		mockRepo.AssertExpectations(t)
	})

	t.Run("error - storage fault is not conflated with not found", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockRepo.On("GetByID", mock.Anything, int64(7)).Return(nil, errDatabaseOperation).Once()

		useCase := app.NewNoteUseCase(mockRepo)
		note, err := useCase.GetNote(ctx, 7)

		require.Error(t, err)
		assert.NotErrorIs(t, err, app.ErrNoteNotFound)
		assert.ErrorIs(t, err, errDatabaseOperation)
		assert.Nil(t, note)
		mockRepo.AssertExpectations(t)
	})
}

func TestListNotes(t *testing.T) {
	ctx := context.Background()

	t.Run("success - all notes returned", func(t *testing.T) {
		expected := []*entities.Note{
			{ID: 1, Title: "a", Text: "1"},
			{ID: 2, Title: "b", Text: "2"},
		}

		mockRepo := new(mockNoteRepository)
		mockRepo.On("List", mock.Anything).Return(expected, nil).Once()

		useCase := app.NewNoteUseCase(mockRepo)
		notes, err := useCase.ListNotes(ctx)

		require.NoError(t, err)
		assert.Equal(t, expected, notes)
		mockRepo.AssertExpectations(t)
	})

	t.Run("success - empty list", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockRepo.On("List", mock.Anything).Return([]*entities.Note{}, nil).Once()

		useCase := app.NewNoteUseCase(mockRepo)
		notes, err := useCase.ListNotes(ctx)

		require.NoError(t, err)
		assert.Empty(t, notes)
		mockRepo.AssertExpectations(t)
	})

	t.Run("error - storage fault", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockRepo.On("List", mock.Anything).Return(nil, errDatabaseOperation).Once()

		useCase := app.NewNoteUseCase(mockRepo)
		notes, err := useCase.ListNotes(ctx)

		require.Error(t, err)
		assert.Nil(t, notes)
		mockRepo.AssertExpectations(t)
	})
}

func TestReplaceNote(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("success - full replace", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockRepo.On("GetByID", mock.Anything, int64(5)).
			Return(&entities.Note{ID: 5, Title: "old", Text: "old text", CreatedAt: createdAt}, nil).Once()
		mockRepo.On("Replace", mock.Anything, mock.MatchedBy(func(n *entities.Note) bool {
			return n.ID == 5 && n.Title == "new" && n.Text == "new text" && n.CreatedAt.Equal(createdAt)
		})).Return(nil).Once()

		useCase := app.NewNoteUseCase(mockRepo)
		note, err := useCase.ReplaceNote(ctx, 5, strPtr("new"), strPtr("new text"))

		require.NoError(t, err)
		assert.Equal(t, "new", note.Title)
		assert.Equal(t, "new text", note.Text)
		assert.Equal(t, createdAt, note.CreatedAt, "creation timestamp is immutable")
		mockRepo.AssertExpectations(t)
	})

	t.Run("success - omitted title is cleared, not retained", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockRepo.On("GetByID", mock.Anything, int64(5)).
			Return(&entities.Note{ID: 5, Title: "old", Text: "old text", CreatedAt: createdAt}, nil).Once()
		mockRepo.On("Replace", mock.Anything, mock.MatchedBy(func(n *entities.Note) bool {
			return n.Title == "" && n.Text == "only text"
		})).Return(nil).Once()

		useCase := app.NewNoteUseCase(mockRepo)
		note, err := useCase.ReplaceNote(ctx, 5, nil, strPtr("only text"))

		require.NoError(t, err)
		assert.Empty(t, note.Title)
		assert.Equal(t, "only text", note.Text)
		mockRepo.AssertExpectations(t)
	})

	t.Run("error - note not found", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, nil).Once()

		useCase := app.NewNoteUseCase(mockRepo)
		note, err := useCase.ReplaceNote(ctx, 404, strPtr("t"), strPtr("x"))

		require.Error(t, err)
		assert.ErrorIs(t, err, app.ErrNoteNotFound)
		assert.Nil(t, note)
		mockRepo.AssertExpectations(t)
	})

	t.Run("error - note deleted between load and write", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockRepo.On("GetByID", mock.Anything, int64(5)).
			Return(&entities.Note{ID: 5, Title: "old", Text: "old text", CreatedAt: createdAt}, nil).Once()
		mockRepo.On("Replace", mock.Anything, mock.Anything).
			Return(repositories.ErrNoteNotFound).Once()

		useCase := app.NewNoteUseCase(mockRepo)
		note, err := useCase.ReplaceNote(ctx, 5, strPtr("t"), strPtr("x"))

		require.Error(t, err)
		assert.ErrorIs(t, err, app.ErrNoteNotFound)
		assert.Nil(t, note)
		mockRepo.AssertExpectations(t)
	})
}

func TestDeleteNote(t *testing.T) {
	ctx := context.Background()

	t.Run("success - note deleted", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockRepo.On("Delete", mock.Anything, int64(3)).Return(nil).Once()

		useCase := app.NewNoteUseCase(mockRepo)
		err := useCase.DeleteNote(ctx, 3)

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("error - second delete reports not found", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockRepo.On("Delete", mock.Anything, int64(3)).
			Return(repositories.ErrNoteNotFound).Once()

		useCase := app.NewNoteUseCase(mockRepo)
		err := useCase.DeleteNote(ctx, 3)

		require.Error(t, err)
		assert.ErrorIs(t, err, app.ErrNoteNotFound)
		mockRepo.AssertExpectations(t)
	})

	t.Run("error - storage fault", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockRepo.On("Delete", mock.Anything, int64(3)).
			Return(errDatabaseOperation).Once()

		useCase := app.NewNoteUseCase(mockRepo)
		err := useCase.DeleteNote(ctx, 3)

		require.Error(t, err)
		assert.NotErrorIs(t, err, app.ErrNoteNotFound)
		mockRepo.AssertExpectations(t)
	})
}
