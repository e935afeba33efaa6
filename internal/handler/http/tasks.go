package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/taskflow/internal/logger"
	"github.com/MKhiriev/taskflow/internal/utils"
	"github.com/MKhiriev/taskflow/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := utils.GetOwnerIDFromContext(ctx)
	if !ok {
		respondError(w, r, ErrNoIdentityInContext)
		return
	}

	tasks, err := h.services.TaskService.ListTasks(ctx, ownerID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, tasks, http.StatusOK)
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetOwnerIDFromContext(ctx)
	if !ok {
		respondError(w, r, ErrNoIdentityInContext)
		return
	}

	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.TaskService.CreateTask(ctx, ownerID, req)
	if err != nil {
		log.Err(err).Msg("task creation failed")
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) toggleTaskStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, taskID, ok := h.taskRequestIDs(w, r)
	if !ok {
		return
	}

	var req models.ToggleStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.TaskService.ToggleStatus(ctx, ownerID, taskID, req.IsDone)
	if err != nil {
		log.Err(err).Msg("task status update failed")
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) updateTaskTitle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, taskID, ok := h.taskRequestIDs(w, r)
	if !ok {
		return
	}

	var req models.UpdateTitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.TaskService.UpdateTitle(ctx, ownerID, taskID, req.Title)
	if err != nil {
		log.Err(err).Msg("task title update failed")
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

// updateTaskDueDate sets or clears the deadline of a task. Ownership is
// checked the same way as every other mutation: a miss answers 403 instead
// of surfacing a bare store error.
func (h *Handler) updateTaskDueDate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, taskID, ok := h.taskRequestIDs(w, r)
	if !ok {
		return
	}

	var req models.UpdateDueDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.TaskService.UpdateDueDate(ctx, ownerID, taskID, req.DueDate)
	if err != nil {
		log.Err(err).Msg("task due date update failed")
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, taskID, ok := h.taskRequestIDs(w, r)
	if !ok {
		return
	}

	if err := h.services.TaskService.DeleteTask(ctx, ownerID, taskID); err != nil {
		log.Err(err).Msg("task deletion failed")
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Task deleted"}, http.StatusOK)
}

// taskRequestIDs resolves the owner identity from the request context and
// the task ID from the {id} URL parameter. On failure it writes the error
// response itself and reports ok=false. A malformed task ID is answered the
// same way as a foreign task so that probing with junk IDs reveals nothing.
func (h *Handler) taskRequestIDs(w http.ResponseWriter, r *http.Request) (ownerID, taskID uuid.UUID, ok bool) {
	ownerID, ok = utils.GetOwnerIDFromContext(r.Context())
	if !ok {
		respondError(w, r, ErrNoIdentityInContext)
		return uuid.Nil, uuid.Nil, false
	}

	taskID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid task id in url")
		respondError(w, r, ErrInvalidTaskID)
		return uuid.Nil, uuid.Nil, false
	}

	return ownerID, taskID, true
}
