package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrocredito/agrocredito/internal/domain/model"
	"github.com/agrocredito/agrocredito/internal/domain/valueobject"
)

func TestComputeAmortization(t *testing.T) {
	t.Run("produces one entry per month", func(t *testing.T) {
		result, err := model.ComputeAmortization(
			decimal.NewFromInt(10_000_000),
			decimal.NewFromFloat(1.5),
			24,
		)
		require.NoError(t, err)
		assert.Len(t, result.Schedule, 24)
		for i, entry := range result.Schedule {
			assert.Equal(t, i+1, entry.Month)
		}
	})

	t.Run("balance lands on exactly zero", func(t *testing.T) {
		result, err := model.ComputeAmortization(
			decimal.NewFromInt(10_000_000),
			decimal.NewFromFloat(1.5),
			24,
		)
		require.NoError(t, err)
		last := result.Schedule[len(result.Schedule)-1]
		assert.True(t, last.Balance.IsZero(), "final balance %s", last.Balance)
	})

	t.Run("principal parts sum back to the principal", func(t *testing.T) {
		principal := decimal.NewFromInt(5_000_000)
		result, err := model.ComputeAmortization(principal, decimal.NewFromFloat(1.39), 36)
		require.NoError(t, err)

		sum := decimal.Zero
		for _, entry := range result.Schedule {
			sum = sum.Add(entry.Principal)
		}
		assert.True(t, principal.Equal(sum), "principal %s, sum %s", principal, sum)
	})

	t.Run("totals are consistent with the schedule", func(t *testing.T) {
		principal := decimal.NewFromInt(5_000_000)
		result, err := model.ComputeAmortization(principal, decimal.NewFromFloat(1.39), 36)
		require.NoError(t, err)

		payments := decimal.Zero
		interest := decimal.Zero
		for _, entry := range result.Schedule {
			payments = payments.Add(entry.Payment)
			interest = interest.Add(entry.Interest)
		}
		assert.True(t, result.TotalPayment.Equal(payments))
		assert.True(t, result.TotalInterest.Equal(interest))
		assert.True(t, payments.Sub(interest).Equal(principal))
	})

	t.Run("single month term pays everything at once", func(t *testing.T) {
		result, err := model.ComputeAmortization(
			decimal.NewFromInt(1_000_000),
			decimal.NewFromFloat(2.0),
			1,
		)
		require.NoError(t, err)
		require.Len(t, result.Schedule, 1)
		entry := result.Schedule[0]
		assert.True(t, entry.Principal.Equal(decimal.NewFromInt(1_000_000)))
		assert.True(t, entry.Interest.Equal(decimal.NewFromInt(20_000)))
		assert.True(t, entry.Balance.IsZero())
	})

	t.Run("rejects non-positive inputs", func(t *testing.T) {
		cases := []struct {
			name      string
			principal decimal.Decimal
			rate      decimal.Decimal
			term      int
		}{
			{"zero principal", decimal.Zero, decimal.NewFromFloat(1.5), 12},
			{"negative principal", decimal.NewFromInt(-100), decimal.NewFromFloat(1.5), 12},
			{"zero rate", decimal.NewFromInt(1_000_000), decimal.Zero, 12},
			{"zero term", decimal.NewFromInt(1_000_000), decimal.NewFromFloat(1.5), 0},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := model.ComputeAmortization(tc.principal, tc.rate, tc.term)
				assert.ErrorIs(t, err, valueobject.ErrInvalidSimulationInput)
			})
		}
	})
}
