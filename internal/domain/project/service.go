package project

import "context"

type ProjectService interface {
	CreateProject(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)
	ListProjects(ctx context.Context, unitID *string) ([]ProjectResponse, error)
	UpdateProjectStatus(ctx context.Context, id string, status string) (ProjectResponse, error)

	CreateTask(ctx context.Context, req CreateTaskRequest) (TaskResponse, error)
	ListTasks(ctx context.Context, projectID string) ([]TaskResponse, error)
	// MoveTask applies a Kanban column move. Only adjacent-column moves are
	// allowed; moving into done additionally requires the caller to be the
	// assignee or hold project management rights.
	MoveTask(ctx context.Context, req MoveTaskRequest) (TaskResponse, error)
}
