package project

import "time"

type ProjectStatus string

const (
	ProjectOpen       ProjectStatus = "open"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectDone       ProjectStatus = "done"
	ProjectArchived   ProjectStatus = "archived"
)

type Project struct {
	ID        string
	UnitID    *string
	Name      string
	Status    ProjectStatus
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskReview     TaskStatus = "review"
	TaskDone       TaskStatus = "done"
)

type Task struct {
	ID         string
	ProjectID  string
	Title      string
	AssigneeID *string
	Status     TaskStatus
	Position   int
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO / Join
	AssigneeName *string
}
