package adapters

import "github.com/finxpert/advisor-api/internal/domain"

var mockMutualFunds = []domain.ProductSnapshot{
	{
		ClientID:       "CLT-001",
		ProductCode:    "MF-BAL-01",
		ProductName:    "Balanced Advantage Fund",
		Type:           domain.ProductTypeMutualFund,
		AmountInvested: 250000,
		CurrentValue:   272500,
		Metadata: map[string]any{
			"expenseRatio":   0.012,
			"recommendation": "Hold",
		},
	},
	{
		ClientID:       "CLT-002",
		ProductCode:    "MF-LS-02",
		ProductName:    "Large & Midcap Fund",
		Type:           domain.ProductTypeMutualFund,
		AmountInvested: 100000,
		CurrentValue:   121000,
		Metadata: map[string]any{
			"expenseRatio":   0.011,
			"recommendation": "Review",
		},
	},
}

// Loans carry their outstanding balance as a negative current value.
var mockLoans = []domain.ProductSnapshot{
	{
		ClientID:       "CLT-003",
		ProductCode:    "LOAN-HL-01",
		ProductName:    "Home Loan",
		Type:           domain.ProductTypeLoan,
		AmountInvested: 0,
		CurrentValue:   -3200000,
		Metadata: map[string]any{
			"interestRate": 0.085,
			"nextDueDate":  "2025-12-15",
			"status":       "ON_TRACK",
		},
	},
	{
		ClientID:       "CLT-001",
		ProductCode:    "LOAN-LAP-07",
		ProductName:    "Loan Against Property",
		Type:           domain.ProductTypeLoan,
		AmountInvested: 0,
		CurrentValue:   -850000,
		Metadata: map[string]any{
			"interestRate": 0.099,
			"nextDueDate":  "2025-12-28",
			"status":       "ATTENTION",
		},
	},
}

var mockInsurance = []domain.ProductSnapshot{
	{
		ClientID:       "CLT-001",
		ProductCode:    "INS-TERM-01",
		ProductName:    "Term Life Insurance",
		Type:           domain.ProductTypeInsurance,
		AmountInvested: 50000,
		CurrentValue:   50000,
		Metadata: map[string]any{
			"sumAssured": 5000000,
			"premium":    50000,
			"term":       20,
			"status":     "ACTIVE",
		},
	},
}

// AIF positions reuse the INSURANCE type until a dedicated one lands.
var mockAIF = []domain.ProductSnapshot{
	{
		ClientID:       "CLT-001",
		ProductCode:    "AIF-CAT1-01",
		ProductName:    "Category I AIF - Infrastructure",
		Type:           domain.ProductTypeInsurance,
		AmountInvested: 5000000,
		CurrentValue:   5750000,
		Metadata: map[string]any{
			"category": "Category I",
			"lockIn":   36,
			"irr":      0.15,
			"status":   "ACTIVE",
		},
	},
}
