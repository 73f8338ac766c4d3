// Package httperr maps the business error taxonomy onto HTTP responses so
// every handler reports failures the same way.
package httperr

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/barberdesk/core-service/internal/apperrors"
)

type response struct {
	Error string `json:"error"`
}

// Respond writes the JSON error body for err. Unrecognized errors are treated
// as storage/transport failures and reported as 500 without detail leakage.
func Respond(c echo.Context, err error) error {
	switch {
	case apperrors.IsValidation(err):
		return c.JSON(http.StatusBadRequest, response{Error: err.Error()})
	case apperrors.IsNotFound(err):
		return c.JSON(http.StatusNotFound, response{Error: err.Error()})
	case apperrors.IsInvalidTransition(err), apperrors.IsInsufficientStock(err):
		return c.JSON(http.StatusConflict, response{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, response{Error: "internal error"})
	}
}
