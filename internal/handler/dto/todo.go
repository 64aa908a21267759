// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"time"

	"github.com/ticklist/ticklist/internal/model"
)

// CreateTodoRequest represents the request body for creating a todo.
// Bulk creation takes a JSON array of the same shape.
type CreateTodoRequest struct {
	Name       string    `json:"name"`
	DueDate    time.Time `json:"dueDate"`
	IsComplete bool      `json:"isComplete"`
}

// ToModel converts the request into a Todo awaiting a store-assigned id.
func (r CreateTodoRequest) ToModel() *model.Todo {
	return &model.Todo{
		Name:       r.Name,
		DueDate:    r.DueDate,
		IsComplete: r.IsComplete,
	}
}

// TodoResponse represents a todo in API responses.
type TodoResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	DueDate    time.Time `json:"dueDate"`
	IsComplete bool      `json:"isComplete"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToTodoResponse converts a Todo model to its response shape.
func ToTodoResponse(todo *model.Todo) *TodoResponse {
	return &TodoResponse{
		ID:         todo.ID,
		Name:       todo.Name,
		DueDate:    todo.DueDate,
		IsComplete: todo.IsComplete,
		CreatedAt:  todo.CreatedAt,
	}
}

// ToTodoListResponse converts a slice of Todo models.
func ToTodoListResponse(todos []*model.Todo) []TodoResponse {
	responses := make([]TodoResponse, len(todos))
	for i, todo := range todos {
		responses[i] = *ToTodoResponse(todo)
	}
	return responses
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ValidationErrorResponse carries per-field validation messages.
type ValidationErrorResponse struct {
	Error  string              `json:"error"`
	Code   string              `json:"code"`
	Errors map[string][]string `json:"errors"`
}
