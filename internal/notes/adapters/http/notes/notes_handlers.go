// Package notes contains the HTTP handlers for note CRUD operations.
package notes

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notekeep/internal/notes/adapters/http/dto"
	"notekeep/internal/notes/app"
	"notekeep/internal/notes/ports/api"
	"notekeep/pkg/logger"
)

// Log messages.
const (
	LogHandlerListNotes   = "handling list notes request"
	LogHandlerGetNote     = "handling get note request"
	LogHandlerCreateNote  = "handling create note request"
	LogHandlerReplaceNote = "handling replace note request"
	LogHandlerDeleteNote  = "handling delete note request"
)

// Client-facing error messages. The create-validation and conflict strings
// match what existing clients already parse.
const (
	ErrMsgInvalidNoteID      = "invalid note id"
	ErrMsgInvalidRequestBody = "invalid request body"
	ErrMsgMissingFields      = "invalid note ID request"
	ErrMsgNoteNotFound       = "note not found"
	ErrMsgAlreadyExists      = "already exists"
	ErrMsgInternal           = "internal server error"
)

// Handler serves the note CRUD endpoints.
type Handler struct {
	noteService api.NoteService
}

// NewHandler creates a new notes handler.
func NewHandler(noteService api.NoteService) *Handler {
	return &Handler{noteService: noteService}
}

// ListNotes handles GET /notes/.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(reqCtx, LogHandlerListNotes)

	notes, err := h.noteService.ListNotes(reqCtx)
	if err != nil {
		log.Error(reqCtx, "failed to list notes", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(dto.NewNoteListResponse(notes)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// GetNote handles GET /notes/:note_id.
func (h *Handler) GetNote(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "Handler.GetNote"))
	log.Debug(reqCtx, LogHandlerGetNote)

	noteID, err := parseNoteID(ctx)
	if err != nil {
		log.Debug(reqCtx, ErrMsgInvalidNoteID, zap.String("note_id", ctx.Params("note_id")))
		return sendError(ctx, fiber.StatusBadRequest, ErrMsgInvalidNoteID)
	}

	note, err := h.noteService.GetNote(reqCtx, noteID)
	if err != nil {
		log.Error(reqCtx, "failed to get note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(dto.NewNoteResponse(note)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// CreateNote handles POST /notes.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(reqCtx, LogHandlerCreateNote)

	var req dto.CreateNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(reqCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendError(ctx, fiber.StatusBadRequest, ErrMsgMissingFields)
	}

	note, err := h.noteService.CreateNote(reqCtx, req.Title, req.Text)
	if err != nil {
		log.Error(reqCtx, "failed to create note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(dto.NewNoteResponse(note)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// ReplaceNote handles PUT /notes/:note_id. Fields absent from the body clear
// the stored value.
func (h *Handler) ReplaceNote(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "Handler.ReplaceNote"))
	log.Debug(reqCtx, LogHandlerReplaceNote)

	noteID, err := parseNoteID(ctx)
	if err != nil {
		log.Debug(reqCtx, ErrMsgInvalidNoteID, zap.String("note_id", ctx.Params("note_id")))
		return sendError(ctx, fiber.StatusBadRequest, ErrMsgInvalidNoteID)
	}

	var req dto.ReplaceNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(reqCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendError(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	note, err := h.noteService.ReplaceNote(reqCtx, noteID, req.Title, req.Text)
	if err != nil {
		log.Error(reqCtx, "failed to replace note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(dto.NewNoteResponse(note)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// DeleteNote handles DELETE /notes/:note_id.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "Handler.DeleteNote"))
	log.Debug(reqCtx, LogHandlerDeleteNote)

	noteID, err := parseNoteID(ctx)
	if err != nil {
		log.Debug(reqCtx, ErrMsgInvalidNoteID, zap.String("note_id", ctx.Params("note_id")))
		return sendError(ctx, fiber.StatusBadRequest, ErrMsgInvalidNoteID)
	}

	if err := h.noteService.DeleteNote(reqCtx, noteID); err != nil {
		log.Error(reqCtx, "failed to delete note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.SendString(fmt.Sprintf("You have deleted note № %d", noteID)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// requestContext returns the per-request context prepared by the middleware,
// falling back to the fiber context.
func requestContext(ctx fiber.Ctx) context.Context {
	if reqCtx, ok := ctx.Locals("requestContext").(context.Context); ok {
		return reqCtx
	}
	return ctx.Context()
}

// parseNoteID extracts the positive integer note id from the path.
func parseNoteID(ctx fiber.Ctx) (int64, error) {
	noteID, err := strconv.ParseInt(ctx.Params("note_id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse note id: %w", err)
	}
	if noteID <= 0 {
		return 0, fmt.Errorf("note id must be positive: %d", noteID)
	}
	return noteID, nil
}

// handleError maps business error kinds to status codes. Unrecognized errors
// are internal faults and must not masquerade as "not found".
func handleError(ctx fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, app.ErrNoteNotFound):
		return sendError(ctx, fiber.StatusNotFound, ErrMsgNoteNotFound)
	case errors.Is(err, app.ErrTitleRequired), errors.Is(err, app.ErrTextRequired):
		return sendError(ctx, fiber.StatusBadRequest, ErrMsgMissingFields)
	case errors.Is(err, app.ErrNoteAlreadyExists):
		return sendError(ctx, fiber.StatusConflict, ErrMsgAlreadyExists)
	default:
		return sendError(ctx, fiber.StatusInternalServerError, ErrMsgInternal)
	}
}

// sendError writes a JSON error body with the given status.
func sendError(ctx fiber.Ctx, status int, message string) error {
	if err := ctx.Status(status).JSON(fiber.Map{"error": message}); err != nil {
		return fmt.Errorf("error sending %d response: %w", status, err)
	}
	return nil
}
