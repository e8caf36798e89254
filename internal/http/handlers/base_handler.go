// JSON helpers and error-to-status mapping shared by all handlers.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"netzone/internal/modules/loyalty"
	"netzone/internal/modules/session"
	"netzone/internal/modules/station"
	"netzone/internal/modules/tariff"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, errorResponse{Error: msg})
}

// writeDomainError maps the core error taxonomy onto HTTP statuses:
// validation → 400, unknown id → 404, wrong-state transition → 409.
func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrValidation),
		errors.Is(err, loyalty.ErrValidation),
		errors.Is(err, tariff.ErrInvalidConfig):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, station.ErrNotFound), errors.Is(err, loyalty.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, station.ErrInvalidState):
		writeError(c, http.StatusConflict, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
