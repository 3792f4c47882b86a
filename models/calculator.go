package models

// CultivationCosts lists the per-season expense inputs of the profit
// calculator, all in rupees.
type CultivationCosts struct {
	Seed       float64 `json:"seed"`
	Fertilizer float64 `json:"fertilizer"`
	Pesticide  float64 `json:"pesticide"`
	Labor      float64 `json:"labor"`
	Machinery  float64 `json:"machinery"`
	Other      float64 `json:"other"`
}

// ProfitOutcome classifies a season's financial result.
type ProfitOutcome string

const (
	OutcomeProfit    ProfitOutcome = "profit"
	OutcomeLoss      ProfitOutcome = "loss"
	OutcomeBreakEven ProfitOutcome = "break_even"
)

// ProfitResult is the calculator's answer: revenue from the harvest, the
// total cost it was measured against, and the resulting profit or loss.
type ProfitResult struct {
	TotalCost    float64       `json:"totalCost"`
	TotalRevenue float64       `json:"totalRevenue"`
	ProfitLoss   float64       `json:"profitLoss"`
	Outcome      ProfitOutcome `json:"outcome"`
}
