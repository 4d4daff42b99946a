package service

import (
	"github.com/shopspring/decimal"

	"github.com/agrocredito/agrocredito/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// RateModel domain service for risk-adjusted rate suggestion
// ---------------------------------------------------------------------------

// RateConfig carries the tunable parameters of the rate model. All rates are
// monthly percentages.
type RateConfig struct {
	// BaseRates maps canonical crop identifiers to their base monthly rate.
	BaseRates map[string]decimal.Decimal

	// FallbackRate applies to the free-form crop variant and to any crop
	// missing from BaseRates. Uncommon crops carry a higher base rate
	// reflecting unknown risk.
	FallbackRate decimal.Decimal

	// HectareDiscountStep is the per-hectare scale discount.
	HectareDiscountStep decimal.Decimal
	// HectareDiscountCap bounds the total scale discount.
	HectareDiscountCap decimal.Decimal

	// YieldDiscountStep is the per-arroba production discount.
	YieldDiscountStep decimal.Decimal
	// YieldDiscountCap bounds the total production discount.
	YieldDiscountCap decimal.Decimal

	// FloorRate is the minimum rate the model will suggest.
	FloorRate decimal.Decimal
}

// DefaultRateConfig returns the institution's standard rate table.
func DefaultRateConfig() RateConfig {
	return RateConfig{
		BaseRates: map[string]decimal.Decimal{
			valueobject.CropTypeCafe.String():    decimal.NewFromFloat(1.5),
			valueobject.CropTypeMaiz.String():    decimal.NewFromFloat(1.3),
			valueobject.CropTypePlatano.String(): decimal.NewFromFloat(1.4),
			valueobject.CropTypeYuca.String():    decimal.NewFromFloat(1.6),
			valueobject.CropTypeCacao.String():   decimal.NewFromFloat(1.7),
		},
		FallbackRate:        decimal.NewFromFloat(2.2),
		HectareDiscountStep: decimal.NewFromFloat(0.015),
		HectareDiscountCap:  decimal.NewFromFloat(0.25),
		YieldDiscountStep:   decimal.NewFromFloat(0.002),
		YieldDiscountCap:    decimal.NewFromFloat(0.15),
		FloorRate:           decimal.NewFromFloat(0.8),
	}
}

// RateModel suggests a monthly interest rate from crop risk, farm scale, and
// production volume. It is a pure calculation with no failure modes.
type RateModel struct {
	config RateConfig
}

// NewRateModel returns a rate model using the given configuration.
func NewRateModel(config RateConfig) *RateModel {
	return &RateModel{config: config}
}

// SuggestRate derives the monthly rate for a simulation.
//
// The rate starts at the crop's base rate and receives two capped discounts:
//
//	hectareDiscount = min(hectares * step, cap)
//	yieldDiscount   = min(monthlyYield * step, cap)
//
// The result never drops below the configured floor and is rounded to two
// decimal places, half away from zero. Zero hectares or zero yield simply
// earn no discount.
func (m *RateModel) SuggestRate(crop valueobject.CropType, hectares, monthlyYield decimal.Decimal) decimal.Decimal {
	base := m.BaseRate(crop)

	hectareDiscount := decimal.Min(hectares.Mul(m.config.HectareDiscountStep), m.config.HectareDiscountCap)
	yieldDiscount := decimal.Min(monthlyYield.Mul(m.config.YieldDiscountStep), m.config.YieldDiscountCap)

	rate := base.Sub(hectareDiscount).Sub(yieldDiscount)
	if rate.LessThan(m.config.FloorRate) {
		rate = m.config.FloorRate
	}

	return rate.Round(2)
}

// BaseRate returns the undiscounted rate for a crop. Crops outside the base
// table, including the free-form variant, take the fallback rate.
func (m *RateModel) BaseRate(crop valueobject.CropType) decimal.Decimal {
	if base, ok := m.config.BaseRates[crop.String()]; ok {
		return base
	}
	return m.config.FallbackRate
}
