package service

import (
	"sync"

	"github.com/kisaanlabs/kisaan-setu/models"
)

type calculatorService struct {
	mu sync.Mutex

	totalCost    float64
	costComputed bool
}

func NewCalculatorService() CalculatorService {
	return &calculatorService{}
}

func (c *calculatorService) TotalCost(costs models.CultivationCosts) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.totalCost = costs.Seed + costs.Fertilizer + costs.Pesticide + costs.Labor + costs.Machinery + costs.Other
	c.costComputed = true
	return c.totalCost
}

func (c *calculatorService) Profit(quantityQuintals, pricePerQuintal float64) (models.ProfitResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.costComputed {
		return models.ProfitResult{}, ErrCostNotCalculated
	}

	revenue := quantityQuintals * pricePerQuintal
	profit := revenue - c.totalCost

	result := models.ProfitResult{
		TotalCost:    c.totalCost,
		TotalRevenue: revenue,
		ProfitLoss:   profit,
	}

	switch {
	case profit > 0:
		result.Outcome = models.OutcomeProfit
	case profit < 0:
		result.Outcome = models.OutcomeLoss
	default:
		result.Outcome = models.OutcomeBreakEven
	}

	return result, nil
}

func (c *calculatorService) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.totalCost = 0
	c.costComputed = false
}
