package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"taskboard/internal/model"
	"taskboard/pkg/metrics"
)

type TaskRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTaskRepository(db *pgxpool.Pool, logger *zap.Logger) *TaskRepository {
	return &TaskRepository{db: db, logger: logger}
}

// EnsureSchema creates the tasks table if it does not exist yet. Safe to run
// on every startup.
func (r *TaskRepository) EnsureSchema(ctx context.Context) error {
	query := `
        CREATE TABLE IF NOT EXISTS tasks (
            id          SERIAL PRIMARY KEY,
            title       TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            completed   BOOLEAN NOT NULL DEFAULT FALSE,
            assignee_id INTEGER,
            priority    VARCHAR(10) NOT NULL DEFAULT 'medium',
            due_date    DATE,
            created_at  TIMESTAMPTZ NOT NULL,
            updated_at  TIMESTAMPTZ NOT NULL
        )
    `
	if _, err := r.db.Exec(ctx, query); err != nil {
		r.logger.Error("Failed to ensure tasks schema", zap.Error(err))
		return err
	}
	r.logger.Info("Tasks schema ensured")
	return nil
}

func (r *TaskRepository) Insert(ctx context.Context, t *model.Task) (int, error) {
	r.logger.Debug("Inserting task",
		zap.String("title", t.Title),
		zap.String("priority", t.Priority),
	)
	query := `
        INSERT INTO tasks (title, description, completed, assignee_id, priority, due_date, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `
	start := time.Now()
	var id int
	err := r.db.QueryRow(ctx, query,
		t.Title,
		t.Description,
		t.Completed,
		t.AssigneeID,
		t.Priority,
		datePtr(t.DueDate),
		t.CreatedAt,
		t.UpdatedAt,
	).Scan(&id)
	metrics.RecordDBQueryDuration("insert", "tasks", time.Since(start))
	if err != nil {
		r.logger.Error("Failed to insert task",
			zap.Error(err),
			zap.String("title", t.Title),
		)
		return 0, err
	}
	r.logger.Info("Task inserted successfully", zap.Int("task_id", id))
	return id, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id int) (*model.Task, error) {
	r.logger.Debug("Fetching task", zap.Int("task_id", id))
	query := "SELECT " + taskColumns + " FROM tasks WHERE id = $1"

	start := time.Now()
	row := r.db.QueryRow(ctx, query, id)
	t, err := scanTask(row)
	metrics.RecordDBQueryDuration("get", "tasks", time.Since(start))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTaskNotFound
		}
		r.logger.Error("Failed to fetch task",
			zap.Error(err),
			zap.Int("task_id", id),
		)
		return nil, err
	}
	return t, nil
}

// List executes the filtered, ordered task query.
func (r *TaskRepository) List(ctx context.Context, f model.TaskFilter) ([]model.Task, error) {
	query, args := buildListQuery(f)
	r.logger.Debug("Listing tasks", zap.Int("filter_args", len(args)))

	start := time.Now()
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query tasks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.logger.Error("Failed to scan task row", zap.Error(err))
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Task row iteration failed", zap.Error(err))
		return nil, err
	}
	metrics.RecordDBQueryDuration("list", "tasks", time.Since(start))

	r.logger.Info("Tasks listed successfully", zap.Int("count", len(tasks)))
	return tasks, nil
}

// Update persists every mutable field of t in one statement.
func (r *TaskRepository) Update(ctx context.Context, t *model.Task) error {
	r.logger.Debug("Updating task", zap.Int("task_id", t.ID))
	query := `
        UPDATE tasks
        SET title = $1, description = $2, completed = $3, assignee_id = $4,
            priority = $5, due_date = $6, updated_at = $7
        WHERE id = $8
    `
	start := time.Now()
	result, err := r.db.Exec(ctx, query,
		t.Title,
		t.Description,
		t.Completed,
		t.AssigneeID,
		t.Priority,
		datePtr(t.DueDate),
		t.UpdatedAt,
		t.ID,
	)
	metrics.RecordDBQueryDuration("update", "tasks", time.Since(start))
	if err != nil {
		r.logger.Error("Failed to update task",
			zap.Error(err),
			zap.Int("task_id", t.ID),
		)
		return err
	}
	if result.RowsAffected() == 0 {
		return model.ErrTaskNotFound
	}
	r.logger.Info("Task updated successfully", zap.Int("task_id", t.ID))
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int) error {
	r.logger.Debug("Deleting task", zap.Int("task_id", id))
	query := `DELETE FROM tasks WHERE id = $1`

	start := time.Now()
	result, err := r.db.Exec(ctx, query, id)
	metrics.RecordDBQueryDuration("delete", "tasks", time.Since(start))
	if err != nil {
		r.logger.Error("Failed to delete task",
			zap.Error(err),
			zap.Int("task_id", id),
		)
		return err
	}
	if result.RowsAffected() == 0 {
		return model.ErrTaskNotFound
	}
	r.logger.Info("Task deleted successfully", zap.Int("task_id", id))
	return nil
}

func scanTask(row pgx.Row) (*model.Task, error) {
	var t model.Task
	var due *time.Time
	if err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.Completed,
		&t.AssigneeID,
		&t.Priority,
		&due,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if due != nil {
		d := model.DateOf(*due)
		t.DueDate = &d
	}
	return &t, nil
}

func datePtr(d *model.Date) *time.Time {
	if d == nil {
		return nil
	}
	return &d.Time
}
