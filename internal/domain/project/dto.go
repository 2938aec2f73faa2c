package project

import "github.com/sdm-erp/erp-backend-go/internal/pkg/validator"

type CreateProjectRequest struct {
	Name   string  `json:"name"`
	UnitID *string `json:"unit_id,omitempty"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateTaskRequest struct {
	ProjectID  string  `json:"-"`
	Title      string  `json:"title"`
	AssigneeID *string `json:"assignee_id,omitempty"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MoveTaskRequest struct {
	ID       string
	Status   string `json:"status"`
	Position int    `json:"position"`
}

func (r *MoveTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	switch TaskStatus(r.Status) {
	case TaskTodo, TaskInProgress, TaskReview, TaskDone:
	default:
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be todo, in_progress, review or done"})
	}
	if r.Position < 0 {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProjectResponse struct {
	ID     string  `json:"id"`
	UnitID *string `json:"unit_id,omitempty"`
	Name   string  `json:"name"`
	Status string  `json:"status"`
	Owner  string  `json:"owner_id"`
}

func ToProjectResponse(p Project) ProjectResponse {
	return ProjectResponse{
		ID:     p.ID,
		UnitID: p.UnitID,
		Name:   p.Name,
		Status: string(p.Status),
		Owner:  p.OwnerID,
	}
}

type TaskResponse struct {
	ID           string  `json:"id"`
	ProjectID    string  `json:"project_id"`
	Title        string  `json:"title"`
	AssigneeID   *string `json:"assignee_id,omitempty"`
	AssigneeName *string `json:"assignee_name,omitempty"`
	Status       string  `json:"status"`
	Position     int     `json:"position"`
}

func ToTaskResponse(t Task) TaskResponse {
	return TaskResponse{
		ID:           t.ID,
		ProjectID:    t.ProjectID,
		Title:        t.Title,
		AssigneeID:   t.AssigneeID,
		AssigneeName: t.AssigneeName,
		Status:       string(t.Status),
		Position:     t.Position,
	}
}
