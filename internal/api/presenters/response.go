package presenters

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type Response struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	ErrorID string      `json:"error_id,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, code int, message string) error {
	return c.Status(code).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	errID := uuid.New().String()
	log.Errorf("request failed [%s] %s %s: %s: %v", errID, c.Method(), c.Path(), message, err)

	res := Response{
		Status:  false,
		Message: message,
		ErrorID: errID,
	}
	if err != nil && code < fiber.StatusInternalServerError {
		res.Error = err.Error()
	}
	return c.Status(code).JSON(res)
}
