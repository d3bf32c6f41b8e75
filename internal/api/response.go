package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reflowhq/reflow/internal/flow"
	"github.com/reflowhq/reflow/internal/store"
)

// APIError is the wire shape of a failed request.
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ErrorEnvelope wraps an APIError.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// RespondOK writes a 200 with the payload.
func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondError writes an error envelope with the given status and code.
func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// respondServiceError maps domain errors to HTTP statuses. Anything
// unrecognized is a 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, store.ErrConflict):
		RespondError(c, http.StatusConflict, "conflict", err)
	case errors.Is(err, flow.ErrPlanNotInitialized):
		RespondError(c, http.StatusBadRequest, "plan_not_initialized", err)
	case errors.Is(err, flow.ErrNotEvaluated):
		RespondError(c, http.StatusBadRequest, "response_not_evaluated", err)
	case errors.Is(err, flow.ErrNoPendingStep):
		RespondError(c, http.StatusBadRequest, "no_pending_step", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal_error", err)
	}
}
