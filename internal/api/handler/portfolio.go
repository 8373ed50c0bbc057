package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/finxpert/advisor-api/internal/usecases/portfolio"
	"github.com/finxpert/advisor-api/pkg/apiErrors"
	"github.com/finxpert/advisor-api/pkg/utils"
)

// GetClientPortfolio returns the aggregated portfolio for one client.
func GetClientPortfolio(service portfolio.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "client ID is required", nil)
			return
		}

		result, err := service.ClientPortfolio(r.Context(), clientID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to build portfolio", nil)
			return
		}

		if result == nil {
			apiErrors.WriteError(w, apiErrors.ErrPortfolioAbsent, "client not found", nil)
			return
		}

		utils.WriteJSON(w, http.StatusOK, result)
	}
}

// ListComplianceFlags returns open regulatory follow-ups.
func ListComplianceFlags(service portfolio.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flags, err := service.ComplianceFlags(r.Context())
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to list compliance flags", nil)
			return
		}

		utils.WriteJSON(w, http.StatusOK, flags)
	}
}
