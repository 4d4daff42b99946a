package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrocredito/agrocredito/internal/domain/service"
	"github.com/agrocredito/agrocredito/internal/domain/valueobject"
	"github.com/agrocredito/agrocredito/pkg/testutil"
)

func TestRateModel_SuggestRate(t *testing.T) {
	model := service.NewRateModel(service.DefaultRateConfig())

	t.Run("applies both discounts to the base rate", func(t *testing.T) {
		crop, err := valueobject.NewCropType("CAFE", "")
		require.NoError(t, err)

		// 1.5 - 5*0.015 - 20*0.002 = 1.385, rounded half away from zero.
		rate := model.SuggestRate(crop, decimal.NewFromInt(5), decimal.NewFromInt(20))
		testutil.AssertDecimalEqual(t, decimal.NewFromFloat(1.39), rate)
	})

	t.Run("zero hectares and yield earn no discount", func(t *testing.T) {
		crop, err := valueobject.NewCropType("CAFE", "")
		require.NoError(t, err)

		rate := model.SuggestRate(crop, decimal.Zero, decimal.Zero)
		testutil.AssertDecimalEqual(t, decimal.NewFromFloat(1.5), rate)
	})

	t.Run("discounts are capped for very large farms", func(t *testing.T) {
		crop, err := valueobject.NewCropType("MAIZ", "")
		require.NoError(t, err)

		// 1.3 - cap(0.25) - cap(0.15) = 0.9
		rate := model.SuggestRate(crop, decimal.NewFromInt(100), decimal.NewFromInt(1000))
		testutil.AssertDecimalEqual(t, decimal.NewFromFloat(0.9), rate)
	})

	t.Run("custom crop takes the fallback rate", func(t *testing.T) {
		crop, err := valueobject.NewCustomCropType("Aguacate")
		require.NoError(t, err)

		rate := model.SuggestRate(crop, decimal.Zero, decimal.Zero)
		testutil.AssertDecimalEqual(t, decimal.NewFromFloat(2.2), rate)
	})

	t.Run("rate never drops below the floor", func(t *testing.T) {
		cfg := service.DefaultRateConfig()
		cfg.BaseRates = map[string]decimal.Decimal{
			valueobject.CropTypeMaiz.String(): decimal.NewFromFloat(1.0),
		}
		lowBase := service.NewRateModel(cfg)

		crop, err := valueobject.NewCropType("MAIZ", "")
		require.NoError(t, err)

		// 1.0 - 0.25 - 0.15 = 0.6, clamped to the 0.8 floor.
		rate := lowBase.SuggestRate(crop, decimal.NewFromInt(100), decimal.NewFromInt(1000))
		testutil.AssertDecimalEqual(t, decimal.NewFromFloat(0.8), rate)
	})
}

func TestRateModel_BaseRate(t *testing.T) {
	model := service.NewRateModel(service.DefaultRateConfig())

	cases := []struct {
		crop string
		want float64
	}{
		{"CAFE", 1.5},
		{"MAIZ", 1.3},
		{"PLATANO", 1.4},
		{"YUCA", 1.6},
		{"CACAO", 1.7},
	}
	for _, tc := range cases {
		crop, err := valueobject.NewCropType(tc.crop, "")
		require.NoError(t, err)
		assert.True(t, decimal.NewFromFloat(tc.want).Equal(model.BaseRate(crop)), "crop %s", tc.crop)
	}
}
