package domain

import "time"

// Transaction types accepted by the mutual fund executor.
const (
	TxPurchase   = "PURCHASE"
	TxRedemption = "REDEMPTION"
	TxSwitch     = "SWITCH"
)

// Transaction types accepted by the loan executor.
const (
	TxDisbursement = "DISBURSEMENT"
	TxRepayment    = "REPAYMENT"
	TxPrepayment   = "PREPAYMENT"
)

const (
	TxStatusCompleted = "COMPLETED"
	TxStatusFailed    = "FAILED"
)

// Transaction is one executed partner transaction. Rows are append-only;
// there is no idempotency key, so a resubmitted request produces a second row.
type Transaction struct {
	ID                    string         `json:"id"`
	ClientID              string         `json:"clientId"`
	AdvisorID             string         `json:"advisorId"`
	ProductCode           string         `json:"productCode"`
	TransactionType       string         `json:"transactionType"`
	Amount                float64        `json:"amount"`
	Status                string         `json:"status"`
	ExternalTransactionID string         `json:"externalTransactionId"`
	Metadata              map[string]any `json:"metadata,omitempty"`
	CreatedAt             time.Time      `json:"createdAt"`
}

// TransactionResult is returned to the caller after a successful execution.
type TransactionResult struct {
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
}
