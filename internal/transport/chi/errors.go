package chi

import (
	"errors"
	"net/http"

	"github.com/kailas-cloud/vizdata/internal/domain"
)

// ErrorCode is the machine-readable error kind in an ErrorResponse.
type ErrorCode string

// Error codes returned by the API.
const (
	ErrorCodeStorageUnavailable ErrorCode = "storage_unavailable"
	ErrorCodeInvalidDocument    ErrorCode = "invalid_document"
	ErrorCodeInternal           ErrorCode = "internal_error"
	ErrorCodeNotFound           ErrorCode = "not_found"
	ErrorCodeMethodNotAllowed   ErrorCode = "method_not_allowed"
)

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// errorHandler tries to handle a domain error. Returns the code it wrote, or "" if not handled.
type errorHandler func(w http.ResponseWriter, err error) ErrorCode

// sentinelHandler returns an errorHandler that matches a single sentinel error.
// The sentinel text is the only message exposed to clients.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error) ErrorCode {
		if !errors.Is(err, sentinel) {
			return ""
		}
		writeError(w, status, code, sentinel.Error())
		return code
	}
}

func defaultErrorHandlers() []errorHandler {
	return []errorHandler{
		sentinelHandler(domain.ErrStorageUnavailable, http.StatusServiceUnavailable, ErrorCodeStorageUnavailable),
		sentinelHandler(domain.ErrInvalidDocument, http.StatusInternalServerError, ErrorCodeInvalidDocument),
	}
}
