package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/finxpert/advisor-api/internal/usecases/portfolio"
	"github.com/finxpert/advisor-api/pkg/apiErrors"
	"github.com/finxpert/advisor-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetDashboard returns the landing-page aggregate.
func GetDashboard(service portfolio.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, err := service.Dashboard(r.Context())
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to build dashboard", nil)
			return
		}

		utils.WriteJSON(w, http.StatusOK, dashboard)
	}
}
