package checkapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/is/pkg/fn"
	"github.com/dmitrymomot/is/pkg/logger"
	"github.com/dmitrymomot/is/pkg/ratelimiter"
	"github.com/dmitrymomot/is/pkg/validator"
)

const (
	maxBodyBytes = 1 << 20
	// maxCardInput bounds the raw card string, separators included.
	maxCardInput = 64
)

type preparer interface {
	Prepare() error
}

// decode reads a JSON body into T and runs its Prepare step. Malformed bodies
// are wrapped with ErrBadRequest; Prepare errors are returned as is.
func decode[T any, PT interface {
	*T
	preparer
}](w http.ResponseWriter, r *http.Request) (*T, error) {
	var req T
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	if err := PT(&req).Prepare(); err != nil {
		return nil, err
	}
	return &req, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	resp := ErrorResponse{Error: codeOf(status)}

	switch {
	case status == http.StatusUnprocessableEntity:
		resp.Fields = validator.ExtractValidationErrors(err)
	case status >= http.StatusInternalServerError:
		h.log.ErrorContext(r.Context(), "request failed", logger.Error(err))
	default:
		resp.Description = err.Error()
	}

	writeJSON(w, status, resp)
}

func statusOf(err error) int {
	return fn.Match[error, int](err).
		On(validator.IsValidationError, constant(http.StatusUnprocessableEntity)).
		On(errorIs(ErrUnknownPredicate), constant(http.StatusNotFound)).
		On(errorIs(ErrBadRequest), constant(http.StatusBadRequest)).
		On(errorIs(ratelimiter.ErrLimited), constant(http.StatusTooManyRequests)).
		Otherwise(constant(http.StatusInternalServerError))
}

func codeOf(status int) string {
	switch status {
	case http.StatusUnprocessableEntity:
		return "validation_failed"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusTooManyRequests:
		return "rate_limited"
	}
	return "internal_error"
}

func errorIs(target error) func(error) bool {
	return func(err error) bool { return errors.Is(err, target) }
}

func constant(status int) func(error) int {
	return func(error) int { return status }
}
