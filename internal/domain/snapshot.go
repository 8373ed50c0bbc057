package domain

import "time"

// ProductType identifies which product family a holding belongs to.
type ProductType string

const (
	ProductTypeMutualFund ProductType = "MUTUAL_FUND"
	ProductTypeLoan       ProductType = "LOAN"
	ProductTypeInsurance  ProductType = "INSURANCE"
)

// ProductSnapshot is one normalized holding for a client. Snapshots are
// built fresh by an adapter on every request and never mutated afterwards.
// CurrentValue is negative for liabilities such as loans.
type ProductSnapshot struct {
	ClientID       string         `json:"clientId"`
	ProductCode    string         `json:"productCode"`
	ProductName    string         `json:"productName"`
	Type           ProductType    `json:"type"`
	AmountInvested float64        `json:"amountInvested"`
	CurrentValue   float64        `json:"currentValue"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// AdapterResult wraps the output of a single adapter invocation.
type AdapterResult struct {
	Adapter   string            `json:"adapter"`
	Data      []ProductSnapshot `json:"data"`
	FetchedAt time.Time         `json:"fetchedAt"`
}
