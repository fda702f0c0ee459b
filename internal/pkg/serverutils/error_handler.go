package serverutils

import (
	"errors"
	"log"

	"markethub-be/internal/entity"
	"markethub-be/pkg/cart"
	"markethub-be/pkg/chat"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware turns errors returned by handlers into the JSON envelope.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code, message := StatusFor(err)
		if code >= fiber.StatusInternalServerError {
			log.Printf("[ERROR] %s %s: %v", ctx.Method(), ctx.Path(), err)
		}

		resp := ErrorResponse(code, message)
		var verr *ValidationError
		if errors.As(err, &verr) {
			resp.Data = verr.Fields
		}
		return ctx.Status(code).JSON(resp)
	}
}

// StatusFor maps domain errors onto HTTP status codes.
func StatusFor(err error) (int, string) {
	var fe *fiber.Error
	var verr *ValidationError

	switch {
	case errors.As(err, &fe):
		return fe.Code, fe.Message
	case errors.As(err, &verr):
		return fiber.StatusBadRequest, "Invalid request"
	case errors.Is(err, entity.ErrNotFound):
		return fiber.StatusNotFound, err.Error()
	case errors.Is(err, cart.ErrInvalidProductID),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrEmptyCart),
		errors.Is(err, chat.ErrEmptyMessage):
		return fiber.StatusBadRequest, err.Error()
	default:
		return fiber.StatusInternalServerError, "Internal server error"
	}
}
