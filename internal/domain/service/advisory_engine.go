package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/agrocredito/agrocredito/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// AdvisoryRuleEngine domain service for post-simulation guidance
// ---------------------------------------------------------------------------

// AdvisoryKind distinguishes warnings from opportunity suggestions.
type AdvisoryKind string

const (
	AdvisoryKindConsejo       AdvisoryKind = "CONSEJO"
	AdvisoryKindRecomendacion AdvisoryKind = "RECOMENDACION"
)

// AdvisoryMessage is the single piece of advice selected for a simulation.
// It is derived on demand and never persisted.
type AdvisoryMessage struct {
	Kind AdvisoryKind
	Text string
	// Plan is set when the advice points the farmer at a commercial plan.
	Plan valueobject.PlanType
}

// AdvisoryInput carries the simulation figures the rule list reads.
type AdvisoryInput struct {
	Amount         decimal.Decimal
	TermMonths     int
	InterestRate   decimal.Decimal
	MonthlyPayment decimal.Decimal
	Hectares       decimal.Decimal
	MonthlyYield   decimal.Decimal
}

// AdvisoryConfig carries the rule thresholds.
type AdvisoryConfig struct {
	HighRateThreshold       decimal.Decimal
	HighPaymentThreshold    decimal.Decimal
	LongTermMonths          int
	MinProductivity         decimal.Decimal
	ProductivityMinHectares decimal.Decimal
	LargeProjectAmount      decimal.Decimal
	MicroCreditMinAmount    decimal.Decimal
	MicroCreditMaxAmount    decimal.Decimal
}

// DefaultAdvisoryConfig returns the institution's standard thresholds.
func DefaultAdvisoryConfig() AdvisoryConfig {
	return AdvisoryConfig{
		HighRateThreshold:       decimal.NewFromFloat(2.5),
		HighPaymentThreshold:    decimal.NewFromInt(2_000_000),
		LongTermMonths:          48,
		MinProductivity:         decimal.NewFromInt(4),
		ProductivityMinHectares: decimal.NewFromInt(1),
		LargeProjectAmount:      decimal.NewFromInt(15_000_000),
		MicroCreditMinAmount:    decimal.NewFromInt(500_000),
		MicroCreditMaxAmount:    decimal.NewFromInt(3_000_000),
	}
}

// AdvisoryRuleEngine selects exactly one advisory message from a strict,
// ordered rule list. The first matching rule wins, so risk warnings outrank
// opportunity suggestions and the last rule is an unconditional catch-all.
type AdvisoryRuleEngine struct {
	config AdvisoryConfig
}

// NewAdvisoryRuleEngine returns an engine using the given thresholds.
func NewAdvisoryRuleEngine(config AdvisoryConfig) *AdvisoryRuleEngine {
	return &AdvisoryRuleEngine{config: config}
}

// SelectAdvice evaluates the rule list against a simulation result. It always
// returns a message and never fails.
func (e *AdvisoryRuleEngine) SelectAdvice(in AdvisoryInput) AdvisoryMessage {
	// 1. High interest rate.
	if in.InterestRate.GreaterThan(e.config.HighRateThreshold) {
		return AdvisoryMessage{
			Kind: AdvisoryKindRecomendacion,
			Text: fmt.Sprintf(
				"Tu tasa de interés es alta (%s%%). Considera mejorar tus datos de producción para acceder a una mejor tasa o busca otras opciones de financiación.",
				in.InterestRate.StringFixed(2)),
		}
	}

	// 2. High monthly payment on a short term.
	if in.MonthlyPayment.GreaterThan(e.config.HighPaymentThreshold) && in.TermMonths < e.config.LongTermMonths {
		return AdvisoryMessage{
			Kind: AdvisoryKindConsejo,
			Text: "Tu cuota mensual es elevada. Te recomendamos un plazo más largo para que la cuota sea más baja y puedas manejarla con mayor comodidad.",
		}
	}

	// 3. Very long term.
	if in.TermMonths >= e.config.LongTermMonths {
		return AdvisoryMessage{
			Kind: AdvisoryKindConsejo,
			Text: fmt.Sprintf(
				"Con un plazo de %d meses, pagarás una cantidad considerable en intereses. Si tus finanzas lo permiten, considera reducir el plazo para ahorrar dinero a largo plazo.",
				in.TermMonths),
		}
	}

	// 4. Low productivity. Skipped entirely when hectares is not positive.
	if in.Hectares.GreaterThan(e.config.ProductivityMinHectares) {
		productivity := in.MonthlyYield.Div(in.Hectares)
		if productivity.LessThan(e.config.MinProductivity) {
			return AdvisoryMessage{
				Kind: AdvisoryKindConsejo,
				Text: fmt.Sprintf(
					"Tu productividad (%s arrobas/hectárea) tiene potencial de mejora. El Plan Cosecha incluye acompañamiento educativo que podría ayudarte a optimizar tu rendimiento.",
					productivity.StringFixed(1)),
				Plan: valueobject.PlanTypeCosecha,
			}
		}
	}

	// 5. Large project.
	if in.Amount.GreaterThan(e.config.LargeProjectAmount) {
		return AdvisoryMessage{
			Kind: AdvisoryKindConsejo,
			Text: "Este monto es ideal para el Plan Raíz, que está diseñado para grandes inversiones y ofrece asesoría personalizada y plazos extendidos.",
			Plan: valueobject.PlanTypeRaiz,
		}
	}

	// 6. Micro-credit range.
	if in.Amount.GreaterThanOrEqual(e.config.MicroCreditMinAmount) && in.Amount.LessThanOrEqual(e.config.MicroCreditMaxAmount) {
		return AdvisoryMessage{
			Kind: AdvisoryKindConsejo,
			Text: "Este monto es ideal para el Plan Semilla, que ofrece microcréditos con tasas preferenciales y procesos ágiles para necesidades puntuales como la compra de insumos.",
			Plan: valueobject.PlanTypeSemilla,
		}
	}

	// 7. Catch-all.
	return AdvisoryMessage{
		Kind: AdvisoryKindConsejo,
		Text: "Tu simulación se ve bien. Recuerda que el Plan Cosecha es ideal para montos intermedios y ofrece acompañamiento para optimizar tu producción.",
		Plan: valueobject.PlanTypeCosecha,
	}
}
