package project

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sdm-erp/erp-backend-go/internal/domain/project"
	"github.com/sdm-erp/erp-backend-go/internal/domain/user"
)

type ProjectServiceImpl struct {
	projectRepo project.Repository
}

func NewProjectService(projectRepo project.Repository) project.ProjectService {
	return &ProjectServiceImpl{projectRepo: projectRepo}
}

func getClaimsFromContext(ctx context.Context) (userID string, role user.Role, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id claim is missing or invalid")
	}

	roleStr, _ := claims["role"].(string)

	return userID, user.Role(roleStr), nil
}

// CreateProject implements project.ProjectService.
func (s *ProjectServiceImpl) CreateProject(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	userID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	created, err := s.projectRepo.CreateProject(ctx, project.Project{
		UnitID:  req.UnitID,
		Name:    req.Name,
		Status:  project.ProjectOpen,
		OwnerID: userID,
	})
	if err != nil {
		return project.ProjectResponse{}, err
	}

	return project.ToProjectResponse(created), nil
}

// ListProjects implements project.ProjectService.
func (s *ProjectServiceImpl) ListProjects(ctx context.Context, unitID *string) ([]project.ProjectResponse, error) {
	projects, err := s.projectRepo.ListProjects(ctx, unitID)
	if err != nil {
		return nil, err
	}

	result := make([]project.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		result = append(result, project.ToProjectResponse(p))
	}
	return result, nil
}

// UpdateProjectStatus implements project.ProjectService.
func (s *ProjectServiceImpl) UpdateProjectStatus(ctx context.Context, id string, status string) (project.ProjectResponse, error) {
	newStatus := project.ProjectStatus(status)
	switch newStatus {
	case project.ProjectOpen, project.ProjectInProgress, project.ProjectDone, project.ProjectArchived:
	default:
		return project.ProjectResponse{}, project.ErrInvalidTransition
	}

	p, err := s.projectRepo.GetProjectByID(ctx, id)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	if !project.CanTransitionProject(p.Status, newStatus) {
		return project.ProjectResponse{}, project.ErrInvalidTransition
	}

	if err := s.projectRepo.UpdateProjectStatus(ctx, id, newStatus); err != nil {
		return project.ProjectResponse{}, err
	}

	p.Status = newStatus
	return project.ToProjectResponse(p), nil
}

// CreateTask implements project.ProjectService.
func (s *ProjectServiceImpl) CreateTask(ctx context.Context, req project.CreateTaskRequest) (project.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return project.TaskResponse{}, err
	}

	// New tasks always start on the board's first column
	if _, err := s.projectRepo.GetProjectByID(ctx, req.ProjectID); err != nil {
		return project.TaskResponse{}, err
	}

	created, err := s.projectRepo.CreateTask(ctx, project.Task{
		ProjectID:  req.ProjectID,
		Title:      req.Title,
		AssigneeID: req.AssigneeID,
		Status:     project.TaskTodo,
	})
	if err != nil {
		return project.TaskResponse{}, err
	}

	return project.ToTaskResponse(created), nil
}

// ListTasks implements project.ProjectService.
func (s *ProjectServiceImpl) ListTasks(ctx context.Context, projectID string) ([]project.TaskResponse, error) {
	tasks, err := s.projectRepo.ListTasksByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	result := make([]project.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		result = append(result, project.ToTaskResponse(t))
	}
	return result, nil
}

// MoveTask implements project.ProjectService. Completing a task is reserved
// for its assignee or someone with project management rights; every other
// move only has to respect column adjacency.
func (s *ProjectServiceImpl) MoveTask(ctx context.Context, req project.MoveTaskRequest) (project.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return project.TaskResponse{}, err
	}

	t, err := s.projectRepo.GetTaskByID(ctx, req.ID)
	if err != nil {
		return project.TaskResponse{}, err
	}

	newStatus := project.TaskStatus(req.Status)
	if newStatus != t.Status && !project.CanTransition(t.Status, newStatus) {
		return project.TaskResponse{}, project.ErrInvalidTransition
	}

	if newStatus == project.TaskDone && t.Status != project.TaskDone {
		userID, role, err := getClaimsFromContext(ctx)
		if err != nil {
			return project.TaskResponse{}, err
		}
		isAssignee := t.AssigneeID != nil && *t.AssigneeID == userID
		if !isAssignee && !user.Can(role, user.ActionProjectManage) {
			return project.TaskResponse{}, project.ErrNotAssigneeOrManager
		}
	}

	if err := s.projectRepo.UpdateTaskStatus(ctx, req.ID, newStatus, req.Position); err != nil {
		return project.TaskResponse{}, err
	}

	t.Status = newStatus
	t.Position = req.Position
	return project.ToTaskResponse(t), nil
}
