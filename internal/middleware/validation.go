package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/ticklist/ticklist/internal/handler/dto"
)

// Field messages reported by the todo validator. The field names match
// the payload's exported names, which is what API clients key on.
const (
	fieldDueDate    = "DueDate"
	fieldIsComplete = "IsComplete"

	msgDueDateInPast   = "Cannot have due date in the past."
	msgAlreadyComplete = "Cannot add completed task."
)

// ValidateTodoPayload checks the business rules for a new todo and
// accumulates every violation rather than stopping at the first.
func ValidateTodoPayload(req dto.CreateTodoRequest, now time.Time) map[string][]string {
	violations := make(map[string][]string)

	if req.DueDate.Before(now) {
		violations[fieldDueDate] = append(violations[fieldDueDate], msgDueDateInPast)
	}
	if req.IsComplete {
		violations[fieldIsComplete] = append(violations[fieldIsComplete], msgAlreadyComplete)
	}

	return violations
}

// TodoValidator is the validation filter bound to the todo-create route.
// It runs after authentication and before the handler: it decodes the
// (already buffered) payload, rejects invalid ones with a 400 carrying
// per-field messages, and restores the body so the handler can decode it
// again. The handler is never invoked for an invalid payload.
func TodoValidator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		r.Body.Close()
		if err != nil {
			writeValidationJSON(w, http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid request body",
				Code:  "INVALID_JSON",
			})
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		var req dto.CreateTodoRequest
		if err := json.Unmarshal(body, &req); err != nil {
			writeValidationJSON(w, http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid request body",
				Code:  "INVALID_JSON",
			})
			return
		}

		if violations := ValidateTodoPayload(req, time.Now()); len(violations) > 0 {
			writeValidationJSON(w, http.StatusBadRequest, dto.ValidationErrorResponse{
				Error:  "Validation failed",
				Code:   "VALIDATION_FAILED",
				Errors: violations,
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeValidationJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
