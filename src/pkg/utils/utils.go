package utils

import (
	"encoding/json"
	"fmt"

	httpError "umroh-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
)

// Result is the standard usecase return envelope.
type Result struct {
	Data  interface{}
	Error error
}

type responseBody struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func Response(data interface{}, message string, code int, ctx *fiber.Ctx) error {
	return ctx.Status(code).JSON(responseBody{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ResponseError(err error, ctx *fiber.Ctx) error {
	if commonErr, ok := err.(*httpError.CommonError); ok {
		return ctx.Status(commonErr.Code).JSON(errorBody{
			Success: false,
			Error:   commonErr.Message,
		})
	}

	return ctx.Status(fiber.StatusInternalServerError).JSON(errorBody{
		Success: false,
		Error:   err.Error(),
	})
}

func ConvertString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case error:
		return val.Error()
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(data)
}

func ConvertInt(v interface{}) int {
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		return int(val)
	case string:
		var parsed int
		fmt.Sscanf(val, "%d", &parsed)
		return parsed
	}
	return 0
}
