package model

import (
	"errors"
	"time"
)

// ErrTaskNotFound is returned when an operation targets a task id that does
// not exist in storage.
var ErrTaskNotFound = errors.New("task not found")

// Task is the stored task record.
type Task struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	AssigneeID  *int      `json:"assignee_id"`
	Priority    string    `json:"priority"` // low | medium | high
	DueDate     *Date     `json:"due_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskView is the read-side shape of a task: the stored record plus the
// assignee name resolved against the member directory at read time.
type TaskView struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Completed    bool      `json:"completed"`
	AssigneeID   *int      `json:"assignee_id"`
	AssigneeName string    `json:"assignee_name"`
	Priority     string    `json:"priority"`
	DueDate      *Date     `json:"due_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
