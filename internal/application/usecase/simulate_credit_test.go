package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrocredito/agrocredito/internal/application/dto"
	"github.com/agrocredito/agrocredito/internal/application/usecase"
	"github.com/agrocredito/agrocredito/internal/domain/port"
	"github.com/agrocredito/agrocredito/internal/domain/service"
	"github.com/agrocredito/agrocredito/internal/domain/valueobject"
)

func newSimulateUseCase(cache port.QuoteCache) *usecase.SimulateCreditUseCase {
	rateModel := service.NewRateModel(service.DefaultRateConfig())
	advisor := service.NewAdvisoryRuleEngine(service.DefaultAdvisoryConfig())
	return usecase.NewSimulateCreditUseCase(rateModel, advisor, cache, usecase.DefaultSimulationPolicy(), 15*time.Minute)
}

func TestSimulateCredit_Execute(t *testing.T) {
	t.Run("computes a full quote", func(t *testing.T) {
		uc := newSimulateUseCase(nil)

		resp, err := uc.Execute(context.Background(), dto.SimulateCreditRequest{
			Crop:         "CAFE",
			Hectares:     decimal.NewFromInt(5),
			MonthlyYield: decimal.NewFromInt(20),
			Amount:       decimal.NewFromInt(10_000_000),
			TermMonths:   24,
		})
		require.NoError(t, err)

		assert.Equal(t, "CAFE", resp.Crop)
		assert.True(t, decimal.NewFromFloat(1.39).Equal(resp.SuggestedRate), "got %s", resp.SuggestedRate)
		assert.True(t, resp.AppliedRate.Equal(resp.SuggestedRate))
		require.Len(t, resp.Schedule, 24)
		assert.True(t, resp.Schedule[23].Balance.IsZero())
		assert.NotEmpty(t, resp.Advisory.Text)
	})

	t.Run("caller-supplied rate overrides the suggestion", func(t *testing.T) {
		uc := newSimulateUseCase(nil)
		rate := decimal.NewFromFloat(2.0)

		resp, err := uc.Execute(context.Background(), dto.SimulateCreditRequest{
			Crop:         "CAFE",
			Hectares:     decimal.NewFromInt(5),
			MonthlyYield: decimal.NewFromInt(20),
			Amount:       decimal.NewFromInt(10_000_000),
			TermMonths:   24,
			InterestRate: &rate,
		})
		require.NoError(t, err)

		assert.True(t, decimal.NewFromFloat(1.39).Equal(resp.SuggestedRate))
		assert.True(t, rate.Equal(resp.AppliedRate))
	})

	t.Run("collects every validation failure at once", func(t *testing.T) {
		uc := newSimulateUseCase(nil)

		_, err := uc.Execute(context.Background(), dto.SimulateCreditRequest{
			Crop:         "CAFE",
			Hectares:     decimal.NewFromInt(5),
			MonthlyYield: decimal.NewFromInt(20),
			Amount:       decimal.NewFromInt(400_000), // below minimum
			TermMonths:   3,                           // below minimum
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, valueobject.ErrInvalidSimulationInput)

		var verrs *valueobject.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Len(t, verrs.Errors, 2)
	})

	t.Run("custom crop requires a name", func(t *testing.T) {
		uc := newSimulateUseCase(nil)

		_, err := uc.Execute(context.Background(), dto.SimulateCreditRequest{
			Crop:         "OTRO",
			Hectares:     decimal.NewFromInt(2),
			MonthlyYield: decimal.NewFromInt(10),
			Amount:       decimal.NewFromInt(1_000_000),
			TermMonths:   12,
		})
		require.Error(t, err)

		var verrs *valueobject.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		require.Len(t, verrs.Errors, 1)
		assert.Equal(t, "crop", verrs.Errors[0].Field)
	})

	t.Run("rejects an out-of-bounds explicit rate", func(t *testing.T) {
		uc := newSimulateUseCase(nil)
		rate := decimal.NewFromInt(60)

		_, err := uc.Execute(context.Background(), dto.SimulateCreditRequest{
			Crop:         "MAIZ",
			Hectares:     decimal.NewFromInt(2),
			MonthlyYield: decimal.NewFromInt(10),
			Amount:       decimal.NewFromInt(1_000_000),
			TermMonths:   12,
			InterestRate: &rate,
		})
		assert.ErrorIs(t, err, valueobject.ErrInvalidSimulationInput)
	})

	t.Run("identical requests hit the cache", func(t *testing.T) {
		cache := newMockQuoteCache()
		uc := newSimulateUseCase(cache)

		req := dto.SimulateCreditRequest{
			Crop:         "CAFE",
			Hectares:     decimal.NewFromInt(5),
			MonthlyYield: decimal.NewFromInt(20),
			Amount:       decimal.NewFromInt(10_000_000),
			TermMonths:   24,
		}

		first, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 1, cache.sets)

		second, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 1, cache.sets, "cached quote must not be recomputed")
		assert.True(t, first.MonthlyPayment.Equal(second.MonthlyPayment))
	})
}
