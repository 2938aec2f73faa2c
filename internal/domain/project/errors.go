package project

import "errors"

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrInvalidTransition    = errors.New("status transition not allowed")
	ErrNotAssigneeOrManager = errors.New("only the assignee or a project manager can move this task")
)
