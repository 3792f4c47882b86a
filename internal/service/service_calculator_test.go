package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kisaanlabs/kisaan-setu/models"
)

func TestCalculatorService_TotalCost(t *testing.T) {
	calc := NewCalculatorService()

	total := calc.TotalCost(models.CultivationCosts{
		Seed:       2000,
		Fertilizer: 3500,
		Pesticide:  1200,
		Labor:      8000,
		Machinery:  4500,
		Other:      800,
	})

	assert.Equal(t, 20000.0, total)
}

func TestCalculatorService_ProfitBeforeCost(t *testing.T) {
	calc := NewCalculatorService()

	_, err := calc.Profit(10, 2500)
	assert.ErrorIs(t, err, ErrCostNotCalculated)
}

func TestCalculatorService_Profit(t *testing.T) {
	calc := NewCalculatorService()
	calc.TotalCost(models.CultivationCosts{Seed: 10000})

	t.Run("profit", func(t *testing.T) {
		result, err := calc.Profit(10, 2500)
		require.NoError(t, err)
		assert.Equal(t, 25000.0, result.TotalRevenue)
		assert.Equal(t, 15000.0, result.ProfitLoss)
		assert.Equal(t, models.OutcomeProfit, result.Outcome)
	})

	t.Run("loss", func(t *testing.T) {
		result, err := calc.Profit(2, 2500)
		require.NoError(t, err)
		assert.Equal(t, -5000.0, result.ProfitLoss)
		assert.Equal(t, models.OutcomeLoss, result.Outcome)
	})

	t.Run("break even", func(t *testing.T) {
		result, err := calc.Profit(4, 2500)
		require.NoError(t, err)
		assert.Equal(t, 0.0, result.ProfitLoss)
		assert.Equal(t, models.OutcomeBreakEven, result.Outcome)
	})
}

func TestCalculatorService_Reset(t *testing.T) {
	calc := NewCalculatorService()
	calc.TotalCost(models.CultivationCosts{Seed: 100})
	calc.Reset()

	_, err := calc.Profit(1, 100)
	assert.ErrorIs(t, err, ErrCostNotCalculated)
}
