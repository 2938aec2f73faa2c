package project

// Kanban column moves. A task only moves between adjacent columns; done can
// be reopened back to review.
var taskTransitions = map[TaskStatus][]TaskStatus{
	TaskTodo:       {TaskInProgress},
	TaskInProgress: {TaskTodo, TaskReview},
	TaskReview:     {TaskInProgress, TaskDone},
	TaskDone:       {TaskReview},
}

// CanTransition reports whether a task may move from one status to another.
func CanTransition(from, to TaskStatus) bool {
	for _, next := range taskTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

var projectTransitions = map[ProjectStatus][]ProjectStatus{
	ProjectOpen:       {ProjectInProgress, ProjectArchived},
	ProjectInProgress: {ProjectOpen, ProjectDone, ProjectArchived},
	ProjectDone:       {ProjectInProgress, ProjectArchived},
	ProjectArchived:   {},
}

// CanTransitionProject reports whether a project may move between statuses.
func CanTransitionProject(from, to ProjectStatus) bool {
	for _, next := range projectTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
