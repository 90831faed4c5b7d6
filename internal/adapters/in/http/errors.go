// Package http exposes the service over HTTP using echo. Handlers
// translate requests into commands and queries, and domain errors into a
// uniform {code, message} payload.
package http

import (
	"errors"
	"net/http"

	"parcelpilot/internal/core/application/usecases/commands"
	"parcelpilot/internal/core/domain/model/rider"
	"parcelpilot/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the uniform error payload of the API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps a domain error to its HTTP status and writes the
// uniform error payload. Unrecognized errors become 500 with a generic
// message so internals never leak to the caller.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrAmountIsInvalid),
		errors.Is(err, rider.ErrNothingToCashout):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, commands.ErrRoleSyncFailed):
		// The rider write committed; only the account role lagged behind.
		// Callers get a distinct message so they know which entity to check.
		message = err.Error()
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}

func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
