package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/finxpert/advisor-api/internal/domain"
	"github.com/finxpert/advisor-api/internal/usecases/advising"
	"github.com/finxpert/advisor-api/pkg/apiErrors"
	"github.com/finxpert/advisor-api/pkg/utils"
)

const defaultAgentPrompt = "Surface the most urgent advisor actions for today."

type runAgentRequest struct {
	Prompt string `json:"prompt"`
}

type chatRequest struct {
	Message string               `json:"message"`
	History []domain.ChatMessage `json:"history"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// RunAgent produces an actionable insight over the advisor's book. The
// prompt is optional; an empty body runs the default daily briefing.
func RunAgent(service advising.Advisor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request runAgentRequest
		if r.Body != nil && r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
				return
			}
		}

		if request.Prompt == "" {
			request.Prompt = defaultAgentPrompt
		}

		response, err := service.RunAgent(r.Context(), request.Prompt)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrModelFailure, "agent run failed", nil)
			return
		}

		utils.WriteJSON(w, http.StatusOK, response)
	}
}

// Chat answers one advisor question given the recent conversation turns.
func Chat(service advising.Advisor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request chatRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if request.Message == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "message is required", nil)
			return
		}

		reply, err := service.Chat(r.Context(), request.Message, request.History)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrModelFailure, "chat failed", nil)
			return
		}

		utils.WriteJSON(w, http.StatusOK, chatResponse{Reply: reply})
	}
}
