package relnotes

import (
	"github.com/gofiber/fiber/v2"
)

// Handlers exposes release-notes generation over HTTP.
type Handlers struct {
	svc *Service
}

// NewHandlers creates the HTTP handlers for release-notes generation.
func NewHandlers(svc *Service) *Handlers {
	return &Handlers{svc: svc}
}

// RegisterRoutes registers the generation endpoint on the app.
func (h *Handlers) RegisterRoutes(app *fiber.App) {
	app.Post("/api/generate-notes", h.handleGenerate)
}

func (h *Handlers) handleGenerate(c *fiber.Ctx) error {
	var req GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return notesErrors.NewWithCause(ErrInvalidBody, err)
	}

	out, err := h.svc.Generate(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(out)
}
