package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/finxpert/advisor-api/internal/usecases/tasking"
	"github.com/finxpert/advisor-api/pkg/apiErrors"
	"github.com/finxpert/advisor-api/pkg/utils"
)

// ListClientTasks returns the follow-up tasks for one client.
func ListClientTasks(service tasking.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		tasks, err := service.List(r.Context(), clientID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to list tasks", nil)
			return
		}

		utils.WriteJSON(w, http.StatusOK, tasks)
	}
}

// CreateClientTask creates a new OPEN task under the client.
func CreateClientTask(service tasking.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var request tasking.CreateRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		task, err := service.Create(r.Context(), clientID, request)
		if err != nil {
			writeTaskError(w, err)
			return
		}

		utils.WriteJSON(w, http.StatusCreated, task)
	}
}

// UpdateClientTask applies a partial update to one task. The task id comes
// from the taskId query parameter.
func UpdateClientTask(service tasking.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		taskID := r.URL.Query().Get("taskId")
		if taskID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "taskId query parameter is required", nil)
			return
		}

		var request tasking.UpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		task, err := service.Update(r.Context(), clientID, taskID, request)
		if err != nil {
			writeTaskError(w, err)
			return
		}

		utils.WriteJSON(w, http.StatusOK, task)
	}
}

func writeTaskError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tasking.ErrInvalidPayload):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, tasking.ErrTaskNotFound):
		apiErrors.WriteError(w, apiErrors.ErrTaskNotFound, "task not found", nil)
	case errors.Is(err, tasking.ErrDatabaseNotConfigured):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseNotConfigured, "task store is not configured", nil)
	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "task operation failed", nil)
	}
}
