package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sdm-erp/erp-backend-go/internal/domain/project"
	"github.com/sdm-erp/erp-backend-go/internal/pkg/database"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.Repository {
	return &projectRepositoryImpl{db: db}
}

const projectColumns = `id, unit_id, name, status, owner_id, created_at, updated_at`

func scanProject(row pgx.Row) (project.Project, error) {
	var p project.Project
	err := row.Scan(&p.ID, &p.UnitID, &p.Name, &p.Status, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// CreateProject implements project.Repository.
func (r *projectRepositoryImpl) CreateProject(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO projects (unit_id, name, status, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + projectColumns

	created, err := scanProject(q.QueryRow(ctx, query, p.UnitID, p.Name, p.Status, p.OwnerID))
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	return created, nil
}

// GetProjectByID implements project.Repository.
func (r *projectRepositoryImpl) GetProjectByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	p, err := scanProject(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project: %w", err)
	}

	return p, nil
}

// ListProjects implements project.Repository.
func (r *projectRepositoryImpl) ListProjects(ctx context.Context, unitID *string) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + projectColumns + ` FROM projects`
	args := []interface{}{}
	if unitID != nil {
		query += ` WHERE unit_id = $1`
		args = append(args, *unitID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}

// UpdateProjectStatus implements project.Repository.
func (r *projectRepositoryImpl) UpdateProjectStatus(ctx context.Context, id string, status project.ProjectStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE projects SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING id`

	var updatedID string
	if err := q.QueryRow(ctx, query, status, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.ErrProjectNotFound
		}
		return fmt.Errorf("failed to update project status: %w", err)
	}

	return nil
}

// CreateTask implements project.Repository.
func (r *projectRepositoryImpl) CreateTask(ctx context.Context, t project.Task) (project.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks (project_id, title, assignee_id, status, position)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, project_id, title, assignee_id, status, position, created_at, updated_at
	`

	var created project.Task
	err := q.QueryRow(ctx, query, t.ProjectID, t.Title, t.AssigneeID, t.Status, t.Position).Scan(
		&created.ID, &created.ProjectID, &created.Title, &created.AssigneeID,
		&created.Status, &created.Position, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return project.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return created, nil
}

// GetTaskByID implements project.Repository.
func (r *projectRepositoryImpl) GetTaskByID(ctx context.Context, id string) (project.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, project_id, title, assignee_id, status, position, created_at, updated_at
		FROM tasks
		WHERE id = $1
	`

	var t project.Task
	err := q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.ProjectID, &t.Title, &t.AssigneeID,
		&t.Status, &t.Position, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Task{}, project.ErrTaskNotFound
		}
		return project.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	return t, nil
}

// ListTasksByProject implements project.Repository.
func (r *projectRepositoryImpl) ListTasksByProject(ctx context.Context, projectID string) ([]project.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.project_id, t.title, t.assignee_id, t.status, t.position, t.created_at, t.updated_at, u.name
		FROM tasks t
		LEFT JOIN users u ON u.id = t.assignee_id
		WHERE t.project_id = $1
		ORDER BY t.status, t.position
	`

	rows, err := q.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []project.Task
	for rows.Next() {
		var t project.Task
		err := rows.Scan(
			&t.ID, &t.ProjectID, &t.Title, &t.AssigneeID,
			&t.Status, &t.Position, &t.CreatedAt, &t.UpdatedAt, &t.AssigneeName,
		)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// UpdateTaskStatus implements project.Repository.
func (r *projectRepositoryImpl) UpdateTaskStatus(ctx context.Context, id string, status project.TaskStatus, position int) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE tasks SET status = $1, position = $2, updated_at = NOW() WHERE id = $3 RETURNING id`

	var updatedID string
	if err := q.QueryRow(ctx, query, status, position, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.ErrTaskNotFound
		}
		return fmt.Errorf("failed to update task status: %w", err)
	}

	return nil
}
