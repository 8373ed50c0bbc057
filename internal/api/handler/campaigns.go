package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/finxpert/advisor-api/internal/usecases/campaigning"
	"github.com/finxpert/advisor-api/internal/usecases/portfolio"
	"github.com/finxpert/advisor-api/pkg/apiErrors"
	"github.com/finxpert/advisor-api/pkg/utils"
)

// ListCampaignTemplates returns the advisor's message templates.
func ListCampaignTemplates(service portfolio.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templates, err := service.CampaignTemplates(r.Context())
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to list campaign templates", nil)
			return
		}

		utils.WriteJSON(w, http.StatusOK, templates)
	}
}

// SendCampaign dispatches one template to a batch of clients.
func SendCampaign(service campaigning.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request campaigning.Request
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		result, err := service.SendCampaign(r.Context(), request)
		if err != nil {
			switch {
			case errors.Is(err, campaigning.ErrInvalidPayload):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			case errors.Is(err, campaigning.ErrTemplateNotFound):
				apiErrors.WriteError(w, apiErrors.ErrTemplateNotFound, "campaign template not found", nil)
			case errors.Is(err, campaigning.ErrChannelNotSupported):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			case errors.Is(err, campaigning.ErrDatabaseNotConfigured):
				apiErrors.WriteError(w, apiErrors.ErrDatabaseNotConfigured, "campaign store is not configured", nil)
			default:
				logrus.Error(err)
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to send campaign", nil)
			}
			return
		}

		utils.WriteJSON(w, http.StatusOK, result)
	}
}
