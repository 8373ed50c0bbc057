package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/finxpert/advisor-api/infrastructure/integrator"
	"github.com/finxpert/advisor-api/internal/usecases/transacting"
	"github.com/finxpert/advisor-api/pkg/apiErrors"
	"github.com/finxpert/advisor-api/pkg/utils"
)

// ExecuteMutualFundTransaction places a mutual fund order with BSE Star.
func ExecuteMutualFundTransaction(service transacting.Executor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request transacting.MutualFundRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		result, err := service.ExecuteMutualFund(r.Context(), request)
		if err != nil {
			writeTransactionError(w, err)
			return
		}

		utils.WriteJSON(w, http.StatusOK, result)
	}
}

// ExecuteLoanTransaction executes a loan operation with the lending partner.
func ExecuteLoanTransaction(service transacting.Executor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request transacting.LoanRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		result, err := service.ExecuteLoan(r.Context(), request)
		if err != nil {
			writeTransactionError(w, err)
			return
		}

		utils.WriteJSON(w, http.StatusOK, result)
	}
}

// writeTransactionError maps executor failures onto the error envelope.
// Partner rejections keep the partner's own HTTP status.
func writeTransactionError(w http.ResponseWriter, err error) {
	var partnerErr *integrator.APIError
	if errors.As(err, &partnerErr) {
		apiErrors.WriteErrorWithStatus(w, partnerErr.StatusCode, apiErrors.ErrPartnerRejected, partnerErr.Message, nil)
		return
	}

	switch {
	case errors.Is(err, transacting.ErrInvalidPayload):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, transacting.ErrClientNotFound):
		apiErrors.WriteError(w, apiErrors.ErrClientNotFound, "client not found", nil)
	case errors.Is(err, transacting.ErrPartnerNotConfigured):
		apiErrors.WriteError(w, apiErrors.ErrPartnerNotConfigured, "transaction partner is not configured", nil)
	case errors.Is(err, transacting.ErrDatabaseNotConfigured):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseNotConfigured, "transaction store is not configured", nil)
	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "transaction failed", nil)
	}
}
