// Package http wires the fiber application for the notes service.
package http

import (
	"github.com/gofiber/fiber/v3"

	"notekeep/internal/notes/adapters/http/middleware"
	"notekeep/internal/notes/adapters/http/notes"
	"notekeep/internal/notes/ports/api"
)

// SetupRouter registers middleware and the note CRUD routes.
func SetupRouter(app *fiber.App, noteService api.NoteService) {
	notesHandler := notes.NewHandler(noteService)

	// Middleware for all requests.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	notesRoutes := app.Group("/notes")
	notesRoutes.Get("/", notesHandler.ListNotes)
	notesRoutes.Post("/", notesHandler.CreateNote)
	notesRoutes.Get("/:note_id", notesHandler.GetNote)
	notesRoutes.Put("/:note_id", notesHandler.ReplaceNote)
	notesRoutes.Delete("/:note_id", notesHandler.DeleteNote)

	// Fallback for unknown routes.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
