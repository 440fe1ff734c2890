// Package response renders the JSON envelope shared by every endpoint.
// Success bodies are {"success":true, ...}; error bodies are
// {"success":false,"error":<safe message>}.
package response

import (
	"github.com/labstack/echo/v4"
)

// Envelope is the set of top-level fields returned alongside "success".
type Envelope map[string]any

// Success writes a success envelope with the given extra fields.
func Success(c echo.Context, statusCode int, fields Envelope) error {
	body := Envelope{"success": true}
	for key, value := range fields {
		body[key] = value
	}

	return c.JSON(statusCode, body)
}

// Error writes a failure envelope carrying only a safe message.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Envelope{
		"success": false,
		"error":   message,
	})
}
