package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ticklist/ticklist/internal/model"
)

// ErrTodoNotFound is returned when no todo exists for the given id.
var ErrTodoNotFound = errors.New("todo not found")

// timeFormat is how timestamps are stored in SQLite text columns.
const timeFormat = time.RFC3339Nano

// ListTodos returns all todos ordered by id ascending.
func (r *Repository) ListTodos(ctx context.Context) ([]*model.Todo, error) {
	query := `
		SELECT id, name, due_date, is_complete, created_at
		FROM todos
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	todos := make([]*model.Todo, 0)
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating todos: %w", err)
	}

	return todos, nil
}

// GetTodo retrieves a todo by its id.
func (r *Repository) GetTodo(ctx context.Context, id int64) (*model.Todo, error) {
	query := `
		SELECT id, name, due_date, is_complete, created_at
		FROM todos
		WHERE id = ?
	`

	todo, err := scanTodo(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("failed to get todo: %w", err)
	}

	return todo, nil
}

// CreateTodo inserts a new todo and fills in its store-assigned id.
// AUTOINCREMENT guarantees ids are monotonically increasing and never
// reused within the lifetime of the database file.
func (r *Repository) CreateTodo(ctx context.Context, todo *model.Todo) error {
	if todo.CreatedAt.IsZero() {
		todo.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO todos (name, due_date, is_complete, created_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		todo.Name,
		todo.DueDate.UTC().Format(timeFormat),
		boolToInt(todo.IsComplete),
		todo.CreatedAt.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("failed to create todo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read assigned id: %w", err)
	}
	todo.ID = id

	return nil
}

// CreateTodos inserts a batch of todos inside a single transaction.
// Either every todo is persisted or none is.
func (r *Repository) CreateTodos(ctx context.Context, todos []*model.Todo) error {
	if len(todos) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO todos (name, due_date, is_complete, created_at)
		VALUES (?, ?, ?, ?)
	`

	for _, todo := range todos {
		if todo.CreatedAt.IsZero() {
			todo.CreatedAt = time.Now().UTC()
		}

		result, err := tx.ExecContext(ctx, query,
			todo.Name,
			todo.DueDate.UTC().Format(timeFormat),
			boolToInt(todo.IsComplete),
			todo.CreatedAt.UTC().Format(timeFormat),
		)
		if err != nil {
			return fmt.Errorf("failed to create todo in batch: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read assigned id: %w", err)
		}
		todo.ID = id
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}

	return nil
}

// DeleteTodo removes a todo by id.
func (r *Repository) DeleteTodo(ctx context.Context, id int64) error {
	query := `DELETE FROM todos WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrTodoNotFound
	}

	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanTodo.
type scanner interface {
	Scan(dest ...any) error
}

func scanTodo(row scanner) (*model.Todo, error) {
	var (
		todo       model.Todo
		dueDate    string
		createdAt  string
		isComplete int
	)

	if err := row.Scan(&todo.ID, &todo.Name, &dueDate, &isComplete, &createdAt); err != nil {
		return nil, err
	}

	var err error
	if todo.DueDate, err = time.Parse(timeFormat, dueDate); err != nil {
		return nil, fmt.Errorf("invalid due_date %q: %w", dueDate, err)
	}
	if todo.CreatedAt, err = time.Parse(timeFormat, createdAt); err != nil {
		return nil, fmt.Errorf("invalid created_at %q: %w", createdAt, err)
	}
	todo.IsComplete = isComplete != 0

	return &todo, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
