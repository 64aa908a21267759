package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ticklist/ticklist/internal/handler/dto"
	"github.com/ticklist/ticklist/internal/metrics"
	"github.com/ticklist/ticklist/internal/model"
	"github.com/ticklist/ticklist/internal/repository"
)

// TodoHandler handles HTTP requests for todo operations.
type TodoHandler struct {
	repo    *repository.Repository
	logger  *slog.Logger
	metrics metrics.Recorder
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(repo *repository.Repository, logger *slog.Logger, recorder metrics.Recorder) *TodoHandler {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &TodoHandler{
		repo:    repo,
		logger:  logger,
		metrics: recorder,
	}
}

// List handles GET /todos.
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	todos, err := h.repo.ListTodos(r.Context())
	if err != nil {
		h.handleStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoListResponse(todos))
}

// Get handles GET /todos/{id}.
func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	todo, err := h.repo.GetTodo(r.Context(), id)
	if err != nil {
		h.handleStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(todo))
}

// Create handles POST /todos. The validation filter has already rejected
// payloads violating the business rules.
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Code: "INVALID_JSON"})
		return
	}

	todo := req.ToModel()
	if err := h.repo.CreateTodo(r.Context(), todo); err != nil {
		h.handleStoreError(w, err)
		return
	}

	h.metrics.IncTodoCreated(1)
	h.logger.Info("todo_created", "todo_id", todo.ID)

	w.Header().Set("Location", fmt.Sprintf("/todos/%d", todo.ID))
	writeJSON(w, http.StatusCreated, dto.ToTodoResponse(todo))
}

// CreateBulk handles POST /todos/bulk. The batch is persisted inside one
// transaction: all todos or none.
func (h *TodoHandler) CreateBulk(w http.ResponseWriter, r *http.Request) {
	var reqs []dto.CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Code: "INVALID_JSON"})
		return
	}

	todos := make([]*model.Todo, len(reqs))
	for i, req := range reqs {
		todos[i] = req.ToModel()
	}

	if err := h.repo.CreateTodos(r.Context(), todos); err != nil {
		h.handleStoreError(w, err)
		return
	}

	h.metrics.IncTodoCreated(len(todos))
	h.logger.Info("todos_created", "count", len(todos))

	w.Header().Set("Location", "/todos")
	writeJSON(w, http.StatusCreated, dto.ToTodoListResponse(todos))
}

// Delete handles DELETE /todos/{id}.
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.repo.DeleteTodo(r.Context(), id); err != nil {
		h.handleStoreError(w, err)
		return
	}

	h.metrics.IncTodoDeleted()
	h.logger.Info("todo_deleted", "todo_id", id)

	w.WriteHeader(http.StatusNoContent)
}

// parseID extracts and parses the {id} route parameter, writing a 404
// when it is not a valid integer (an unparseable id can never exist).
func (h *TodoHandler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "Todo not found", Code: "TODO_NOT_FOUND"})
		return 0, false
	}

	return id, true
}

// handleStoreError maps store errors to HTTP responses.
func (h *TodoHandler) handleStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrTodoNotFound):
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "Todo not found", Code: "TODO_NOT_FOUND"})
	default:
		h.logger.Error("internal_error", "error", err)
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "An internal error occurred", Code: "INTERNAL_ERROR"})
	}
}
