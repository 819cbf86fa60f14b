package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/ritualnet/backend/internal/domain"
)

// responseBufferPool recycles encode buffers across requests. Most response
// bodies fit in the initial capacity.
var responseBufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encode into a pooled buffer first so a marshal failure never produces
	// a half-written body
	buf := responseBufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		responseBufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgInvalidInputError  = "Invalid input"

	ErrMsgUserNotFoundError       = "User not found"
	ErrMsgItemNotFoundError       = "Item not found"
	ErrMsgChromaNotFoundError     = "Chroma not found"
	ErrMsgShaderNotFoundError     = "Shader not found"
	ErrMsgSetNotFoundError        = "Premium store set not found"
	ErrMsgScheduleNotFoundError   = "Premium store schedule not found"
	ErrMsgNotAvailableError       = "Item is not currently available"
	ErrMsgAlreadyOwnedError       = "You already own that item"
	ErrMsgNotEnoughFundsError     = "Not enough funds"
	ErrMsgPurchaseConflictError   = "Purchase could not be completed. Please try again"
	ErrMsgEmailTakenError         = "An account with that email already exists"
	ErrMsgInvalidCredentialsError = "Invalid email or password"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages safe to show to users.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrChromaNotFound):
		return http.StatusNotFound, ErrMsgChromaNotFoundError
	case errors.Is(err, domain.ErrShaderNotFound):
		return http.StatusNotFound, ErrMsgShaderNotFoundError
	case errors.Is(err, domain.ErrSetNotFound):
		return http.StatusNotFound, ErrMsgSetNotFoundError
	case errors.Is(err, domain.ErrScheduleNotFound):
		return http.StatusNotFound, ErrMsgScheduleNotFoundError
	case errors.Is(err, domain.ErrNotAvailable):
		return http.StatusNotFound, ErrMsgNotAvailableError
	case errors.Is(err, domain.ErrAlreadyOwned):
		return http.StatusBadRequest, ErrMsgAlreadyOwnedError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughFundsError
	case errors.Is(err, domain.ErrPurchaseConflict):
		return http.StatusConflict, ErrMsgPurchaseConflictError
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, ErrMsgEmailTakenError
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrMsgInvalidCredentialsError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
