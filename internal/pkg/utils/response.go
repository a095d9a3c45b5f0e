package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tollgate-service/internal/pkg/errors"
)

// SuccessResponse is the envelope for every successful API response.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// ErrorResponse is the envelope for every failed API response.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
}

type Meta struct {
	Total    int     `json:"total,omitempty"`
	TimeMSec float64 `json:"time_ms,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*errors.AppError); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Success: false,
			Error:   appErr.Message,
			Code:    appErr.Code,
		})
	}

	// Unknown error - return 500
	return c.Status(500).JSON(ErrorResponse{
		Success: false,
		Error:   errors.ErrInternalServer.Message,
		Code:    errors.ErrInternalServer.Code,
	})
}
