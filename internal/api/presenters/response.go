package presenters

import (
	"Recipe-Hub/internal/utils"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, status int, message string) error {
	return c.Status(status).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		res.Errors = utils.FormatValidationError(validationErrs)
	} else if err != nil {
		res.Errors = err.Error()
	}
	return c.Status(status).JSON(res)
}
