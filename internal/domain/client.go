package domain

// ClientProfile identifies one of the advisor's clients.
type ClientProfile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Segment string `json:"segment"`
	Notes   string `json:"notes"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// Exposure holds the portfolio totals for a client.
type Exposure struct {
	Invested float64 `json:"invested"`
	Current  float64 `json:"current"`
}

// ProductMixEntry counts how many positions of a given type a client holds.
type ProductMixEntry struct {
	Type  ProductType `json:"type"`
	Count int         `json:"count"`
}

// ClientPortfolio is the per-client aggregation derived on every request.
// Invariants: Exposure.Invested is the sum of AmountInvested over Positions,
// Exposure.Current the sum of CurrentValue, and ProductMix counts sum to
// len(Positions). ProductMix entries keep first-encounter order.
type ClientPortfolio struct {
	Client     ClientProfile     `json:"client"`
	Positions  []ProductSnapshot `json:"positions"`
	Exposure   Exposure          `json:"exposure"`
	ProductMix []ProductMixEntry `json:"productMix"`
}
