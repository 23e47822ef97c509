package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"mall-bidding/internal/marketerrors"
	"mall-bidding/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrAgentNotFound):
		return http.StatusNotFound, "agent not found"
	case errors.Is(err, marketerrors.ErrSessionNotFound):
		return http.StatusNotFound, "search session not found"
	case errors.Is(err, marketerrors.ErrStoreNotFound):
		return http.StatusNotFound, "store not found"
	case errors.Is(err, marketerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, marketerrors.ErrInsufficientFunds):
		return http.StatusConflict, "insufficient coin balance"
	case errors.Is(err, marketerrors.ErrSessionNotActive):
		return http.StatusConflict, "search session is not active"
	case errors.Is(err, marketerrors.ErrInvalidStateTransition):
		return http.StatusConflict, "invalid session state transition"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
