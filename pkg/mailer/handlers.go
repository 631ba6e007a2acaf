package mailer

import (
	"github.com/gofiber/fiber/v2"
)

// Handlers exposes the send pipeline over HTTP.
type Handlers struct {
	svc *Service
}

// NewHandlers creates the HTTP handlers for the send pipeline.
func NewHandlers(svc *Service) *Handlers {
	return &Handlers{svc: svc}
}

// RegisterRoutes registers the send endpoint on the app.
func (h *Handlers) RegisterRoutes(app *fiber.App) {
	app.Post("/api/send", h.handleSend)
}

func (h *Handlers) handleSend(c *fiber.Ctx) error {
	var req SendRequest
	if err := c.BodyParser(&req); err != nil {
		return mailerErrors.NewWithCause(ErrInvalidBody, err)
	}

	out, err := h.svc.Send(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"ok":             true,
		"messageId":      out.MessageID,
		"response":       out.Response,
		"recipientCount": out.RecipientCount,
	})
}
