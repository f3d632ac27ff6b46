// Package response holds the JSON bodies this service puts on the wire.
package response

import (
	"github.com/labstack/echo/v4"
)

// MessageBody is the confirmation shape for signup and error responses.
type MessageBody struct {
	Message string `json:"message"`
	// Error carries the underlying cause for server errors. Client-facing
	// statuses (4xx) leave it empty.
	Error string `json:"error,omitempty"`
}

// TokenBody is the success shape for login.
type TokenBody struct {
	Token string `json:"token"`
}

// Message writes a confirmation or failure message.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageBody{Message: message})
}

// Failure writes an error message alongside its underlying cause.
func Failure(c echo.Context, statusCode int, message, cause string) error {
	return c.JSON(statusCode, MessageBody{Message: message, Error: cause})
}

// Token writes the signed session token.
func Token(c echo.Context, statusCode int, token string) error {
	return c.JSON(statusCode, TokenBody{Token: token})
}
