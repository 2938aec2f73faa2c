package project

import "context"

type Repository interface {
	// Projects
	CreateProject(ctx context.Context, p Project) (Project, error)
	GetProjectByID(ctx context.Context, id string) (Project, error)
	ListProjects(ctx context.Context, unitID *string) ([]Project, error)
	UpdateProjectStatus(ctx context.Context, id string, status ProjectStatus) error

	// Tasks
	CreateTask(ctx context.Context, t Task) (Task, error)
	GetTaskByID(ctx context.Context, id string) (Task, error)
	ListTasksByProject(ctx context.Context, projectID string) ([]Task, error)
	UpdateTaskStatus(ctx context.Context, id string, status TaskStatus, position int) error
}
