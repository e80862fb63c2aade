package handlerUtil

import (
	"PaperPath/internal/api/audio"
	"PaperPath/internal/api/navigation"
	"PaperPath/pkg/log"
	"PaperPath/pkg/response"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	fields := log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}

	// Audio domain errors
	if errors.Is(err, audio.ErrNarrationUnavailable) {
		h.logger.WithFields(fields).Warn("Narration provider is not configured")
		return c.Status(fiber.StatusServiceUnavailable).JSON(response.Body{
			Error: "Narration unavailable",
			Code:  "NARRATION_UNAVAILABLE",
		})
	}

	if errors.Is(err, audio.ErrNarrationFailed) {
		h.logger.WithFields(fields).Error("Narration provider failed")
		return c.Status(fiber.StatusBadGateway).JSON(response.Body{
			Error: "Narration could not be generated",
			Code:  "NARRATION_FAILED",
		})
	}

	// Navigation domain errors
	if errors.Is(err, navigation.ErrInvalidSessionID) {
		h.logger.WithFields(fields).Warn("Invalid session id")
		return c.Status(fiber.StatusBadRequest).JSON(response.Body{
			Error: "Invalid session id",
			Code:  "INVALID_SESSION_ID",
		})
	}

	var respErr *response.Error
	if errors.As(err, &respErr) {
		code := response.StatusCode(err)
		fields["code"] = code
		if code >= fiber.StatusInternalServerError {
			h.logger.WithFields(fields).Error("Operation failed with error response")
		} else {
			h.logger.WithFields(fields).Warn("Operation failed with error response")
		}
		return c.Status(code).JSON(response.Body{Error: err.Error()})
	}

	h.logger.WithFields(fields).Error("Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(response.Body{
		Error: "An unexpected error occurred",
	})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(response.Body{
		Error: "Validation failed: " + err.Error(),
		Code:  "VALIDATION_ERROR",
	})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(utils.StatusMessage(fiber.StatusRequestTimeout))
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
