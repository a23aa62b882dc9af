package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
	"github.com/heartmarshall/worktrack-backend/pkg/ctxutil"
)

// Error codes returned in the "code" field of error responses.
const (
	codeValidation        = "VALIDATION"
	codeNotFound          = "NOT_FOUND"
	codeAlreadyExists     = "ALREADY_EXISTS"
	codeConflict          = "CONFLICT"
	codeConcurrencyHazard = "CONCURRENCY_HAZARD"
	codeUnauthenticated   = "UNAUTHENTICATED"
	codeForbidden         = "FORBIDDEN"
	codeUnavailable       = "STORE_UNAVAILABLE"
	codeInternal          = "INTERNAL"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error  string          `json:"error"`
	Code   string          `json:"code"`
	Fields []FieldErrorDTO `json:"fields,omitempty"`
}

// FieldErrorDTO reports one invalid input field.
type FieldErrorDTO struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// respondError maps a service error onto a status code and error body.
// Unexpected errors are logged and reported without detail.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		resp := ErrorResponse{Error: "validation failed", Code: codeValidation}
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			resp.Error = ve.Error()
			for _, fe := range ve.Errors {
				resp.Fields = append(resp.Fields, FieldErrorDTO{Field: fe.Field, Message: fe.Message})
			}
		}
		writeJSON(w, http.StatusBadRequest, resp)

	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, "not found")

	case errors.Is(err, domain.ErrConcurrencyHazard):
		writeError(w, http.StatusConflict, codeConcurrencyHazard,
			"another request was created at the same time, please try again")

	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, codeAlreadyExists, "already exists")

	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, codeConflict, "the record was changed by someone else, reload and try again")

	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, codeUnauthenticated, "unauthorized")

	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, codeForbidden, "forbidden")

	case errors.Is(err, domain.ErrStoreUnavailable):
		log.WarnContext(r.Context(), "store unavailable",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusServiceUnavailable, codeUnavailable, "service temporarily unavailable")

	default:
		log.ErrorContext(r.Context(), "unexpected error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, codeInternal, "internal error")
	}
}
