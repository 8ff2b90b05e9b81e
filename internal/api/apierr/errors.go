package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/headcheck/headcheck/internal/model"
	"github.com/headcheck/headcheck/internal/services/auth"
	"github.com/headcheck/headcheck/internal/services/organization"
	"github.com/headcheck/headcheck/internal/services/player"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeUsernameTaken        = "USERNAME_TAKEN"
	CodeInvalidCredentials   = "INVALID_CREDENTIALS"
	CodePlayerNotFound       = "PLAYER_NOT_FOUND"
	CodeOrganizationNotFound = "ORGANIZATION_NOT_FOUND"
	CodeInvalidStatus        = "INVALID_STATUS"
	CodeInternalError        = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError.
// Not-found statuses cover "owned by another trainer" as well; the
// mapping never distinguishes the two.
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Validation errors
	case errors.Is(err, organization.ErrNameRequired):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Organization name is required"}}
	case errors.Is(err, player.ErrNameRequired):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Player name is required"}}
	case errors.Is(err, player.ErrDOBRequired):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Player date of birth is required"}}
	case errors.Is(err, player.ErrOrganizationRequired):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Organization is required"}}
	case errors.Is(err, model.ErrInvalidStatus):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidStatus, "Status must be one of active, injured, concussion, recovery"}}

	// Resource errors
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrOrganizationNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeOrganizationNotFound, "Organization not found"}}

	// Auth errors
	case errors.Is(err, auth.ErrUsernameTaken):
		return &httpError{http.StatusBadRequest, APIError{CodeUsernameTaken, "Username already taken"}}
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidCredentials, "Invalid credentials"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
