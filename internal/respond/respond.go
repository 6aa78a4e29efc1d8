// Package respond shapes every JSON reply into the uniform envelope
// {status, error, detail, message} and hosts the central Fiber error
// handler that maps application errors onto it.
package respond

import (
	"errors"

	"hotelapp-backend/internal/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type Envelope struct {
	Status  int    `json:"status"`
	Error   bool   `json:"error"`
	Detail  any    `json:"detail"`
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, detail any, message string) error {
	return c.Status(status).JSON(Envelope{
		Status:  status,
		Error:   false,
		Detail:  detail,
		Message: message,
	})
}

func OK(c *fiber.Ctx, detail any) error {
	return JSON(c, fiber.StatusOK, detail, "")
}

func Created(c *fiber.Ctx, detail any, message string) error {
	return JSON(c, fiber.StatusCreated, detail, message)
}

func Message(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, "", message)
}

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation, apperr.KindConflict:
		return fiber.StatusBadRequest
	case apperr.KindNotFound:
		return fiber.StatusNotFound
	case apperr.KindUnauthorized:
		return fiber.StatusUnauthorized
	case apperr.KindForbidden:
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler is installed as the Fiber app error handler. Nothing
// escapes to the client as a raw stack trace.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		detail := appErr.Detail
		if detail == nil {
			detail = ""
		}
		return c.Status(statusFor(appErr.Kind)).JSON(Envelope{
			Status:  statusFor(appErr.Kind),
			Error:   true,
			Detail:  detail,
			Message: appErr.Message,
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(Envelope{
			Status:  fiberErr.Code,
			Error:   true,
			Detail:  "",
			Message: fiberErr.Message,
		})
	}

	logrus.Errorf("unexpected error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(Envelope{
		Status:  fiber.StatusInternalServerError,
		Error:   true,
		Detail:  "",
		Message: err.Error(),
	})
}
