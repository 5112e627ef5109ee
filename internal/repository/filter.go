package repository

import (
	"fmt"
	"strings"

	"taskboard/internal/model"
)

const taskColumns = "id, title, description, completed, assignee_id, priority, due_date, created_at, updated_at"

// buildListQuery folds the optional filter predicates into one SELECT with
// numbered placeholders. Result ordering is a contract: incomplete tasks
// first, newest first within each group.
func buildListQuery(f model.TaskFilter) (string, []any) {
	var conditions []string
	var args []any

	if f.Search != "" {
		args = append(args, f.Search)
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(title LIKE '%%' || $%d || '%%' OR description LIKE '%%' || $%d || '%%')", n, n))
	}

	switch f.Status {
	case "complete":
		conditions = append(conditions, "completed = true")
	case "incomplete":
		conditions = append(conditions, "completed = false")
	}

	if f.AssigneeID != nil {
		args = append(args, *f.AssigneeID)
		conditions = append(conditions, fmt.Sprintf("assignee_id = $%d", len(args)))
	}

	if f.Priority != "" {
		args = append(args, f.Priority)
		conditions = append(conditions, fmt.Sprintf("priority = $%d", len(args)))
	}

	switch f.Due {
	case "overdue":
		args = append(args, f.Today.Time)
		conditions = append(conditions, fmt.Sprintf("due_date IS NOT NULL AND due_date < $%d", len(args)))
	case "today":
		args = append(args, f.Today.Time)
		conditions = append(conditions, fmt.Sprintf("due_date = $%d", len(args)))
	case "upcoming":
		args = append(args, f.Today.Time)
		conditions = append(conditions, fmt.Sprintf("due_date IS NOT NULL AND due_date > $%d", len(args)))
	}

	query := "SELECT " + taskColumns + " FROM tasks"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY completed ASC, created_at DESC"

	return query, args
}
