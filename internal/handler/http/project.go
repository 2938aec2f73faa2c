package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sdm-erp/erp-backend-go/internal/domain/project"
	"github.com/sdm-erp/erp-backend-go/internal/handler/http/response"
)

type ProjectHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	CreateTask(w http.ResponseWriter, r *http.Request)
	ListTasks(w http.ResponseWriter, r *http.Request)
	MoveTask(w http.ResponseWriter, r *http.Request)
}

type ProjectHandlerImpl struct {
	projectService project.ProjectService
}

func NewProjectHandler(projectService project.ProjectService) ProjectHandler {
	return &ProjectHandlerImpl{projectService: projectService}
}

// Create implements ProjectHandler.
func (h *ProjectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq project.CreateProjectRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create project decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.projectService.CreateProject(r.Context(), createReq)
	if err != nil {
		slog.Error("Create project service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Project created", result)
}

// List implements ProjectHandler.
func (h *ProjectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var unitID *string
	if v := r.URL.Query().Get("unit_id"); v != "" {
		unitID = &v
	}

	result, err := h.projectService.ListProjects(r.Context(), unitID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateStatus implements ProjectHandler.
func (h *ProjectHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var statusReq struct {
		Status string `json:"status"`
	}

	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.projectService.UpdateProjectStatus(r.Context(), chi.URLParam(r, "id"), statusReq.Status)
	if err != nil {
		slog.Error("Update project status service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateTask implements ProjectHandler.
func (h *ProjectHandlerImpl) CreateTask(w http.ResponseWriter, r *http.Request) {
	var createReq project.CreateTaskRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create task decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	createReq.ProjectID = chi.URLParam(r, "id")

	result, err := h.projectService.CreateTask(r.Context(), createReq)
	if err != nil {
		slog.Error("Create task service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Task created", result)
}

// ListTasks implements ProjectHandler.
func (h *ProjectHandlerImpl) ListTasks(w http.ResponseWriter, r *http.Request) {
	result, err := h.projectService.ListTasks(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MoveTask implements ProjectHandler.
func (h *ProjectHandlerImpl) MoveTask(w http.ResponseWriter, r *http.Request) {
	var moveReq project.MoveTaskRequest

	if err := json.NewDecoder(r.Body).Decode(&moveReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	moveReq.ID = chi.URLParam(r, "taskID")

	result, err := h.projectService.MoveTask(r.Context(), moveReq)
	if err != nil {
		slog.Error("Move task service error", "error", err, "task_id", moveReq.ID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
