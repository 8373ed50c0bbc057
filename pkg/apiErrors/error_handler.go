package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes grouped by the failure taxonomy of the API.
const (
	// Validation errors (VAL)
	ErrInvalidRequest      = "VAL_001" // Malformed request body
	ErrMissingRequiredData = "VAL_002" // Required field absent
	ErrInvalidFormat       = "VAL_003" // Field fails schema validation

	// Not-found / ownership errors (NTF)
	ErrClientNotFound   = "NTF_001" // Client absent or owned by another advisor
	ErrTemplateNotFound = "NTF_002" // Campaign template absent
	ErrTaskNotFound     = "NTF_003" // Client task absent
	ErrPortfolioAbsent  = "NTF_004" // No portfolio resolvable for client

	// Configuration errors (CFG)
	ErrDatabaseNotConfigured = "CFG_001" // Backing store unavailable
	ErrPartnerNotConfigured  = "CFG_002" // Partner API key missing

	// Upstream errors (UPS)
	ErrPartnerRejected = "UPS_001" // Partner API returned non-success
	ErrModelFailure    = "UPS_002" // Hosted model call failed

	// Server errors (SRV)
	ErrInternalServer    = "SRV_001" // Unexpected internal error
	ErrDatabaseOperation = "SRV_002" // Database query failed
)

var httpStatusMap = map[string]int{
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrClientNotFound:        http.StatusNotFound,
	ErrTemplateNotFound:      http.StatusNotFound,
	ErrTaskNotFound:          http.StatusNotFound,
	ErrPortfolioAbsent:       http.StatusNotFound,
	ErrDatabaseNotConfigured: http.StatusInternalServerError,
	ErrPartnerNotConfigured:  http.StatusInternalServerError,
	ErrPartnerRejected:       http.StatusBadGateway,
	ErrModelFailure:          http.StatusBadGateway,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
}

// APIError is the standard error envelope returned to clients.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error envelope to the response.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	WriteErrorWithStatus(w, status, code, message, details)
}

// WriteErrorWithStatus writes the envelope with an explicit HTTP status.
// Used when forwarding a partner API's own status code.
func WriteErrorWithStatus(w http.ResponseWriter, status int, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
