package model

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/agrocredito/agrocredito/internal/domain/valueobject"
)

// AmortizationEntry is an immutable value object representing one monthly
// period in a fixed-payment amortization schedule.
type AmortizationEntry struct {
	Payment   decimal.Decimal
	Principal decimal.Decimal
	Interest  decimal.Decimal
	Balance   decimal.Decimal
	Month     int
}

// AmortizationResult carries the derived figures of a simulated credit.
type AmortizationResult struct {
	MonthlyPayment decimal.Decimal
	TotalInterest  decimal.Decimal
	TotalPayment   decimal.Decimal
	Schedule       []AmortizationEntry
}

// ComputeAmortization builds a standard French amortization schedule.
//
// Parameters:
//   - principal:          the credit amount
//   - monthlyRatePercent: monthly interest rate as a percentage (e.g. 1.39 = 1.39% per month)
//   - termMonths:         number of monthly periods
//
// The calculation uses:
//
//	r       = monthlyRatePercent / 100
//	payment = P * r * (1+r)^n / ((1+r)^n - 1)
//
// Money amounts are rounded to 2 decimal places each period, and the final
// period absorbs the accumulated rounding so the balance lands on exactly
// zero.
func ComputeAmortization(
	principal decimal.Decimal,
	monthlyRatePercent decimal.Decimal,
	termMonths int,
) (AmortizationResult, error) {
	if principal.LessThanOrEqual(decimal.Zero) {
		return AmortizationResult{}, fmt.Errorf("%w: principal must be positive", valueobject.ErrInvalidSimulationInput)
	}
	if monthlyRatePercent.LessThanOrEqual(decimal.Zero) {
		return AmortizationResult{}, fmt.Errorf("%w: monthly rate must be positive", valueobject.ErrInvalidSimulationInput)
	}
	if termMonths <= 0 {
		return AmortizationResult{}, fmt.Errorf("%w: term months must be positive", valueobject.ErrInvalidSimulationInput)
	}

	// The power term is computed in float64, then the result switches back to
	// decimal for all monetary arithmetic.
	monthlyRate := monthlyRatePercent.InexactFloat64() / 100.0
	n := float64(termMonths)

	factor := math.Pow(1+monthlyRate, n)
	paymentFloat := principal.InexactFloat64() * monthlyRate * factor / (factor - 1)
	monthlyPayment := decimal.NewFromFloat(paymentFloat).Round(2)

	monthlyRateDec := monthlyRatePercent.Div(decimal.NewFromInt(100))

	schedule := make([]AmortizationEntry, 0, termMonths)
	remaining := principal
	totalInterest := decimal.Zero
	totalPayment := decimal.Zero

	for month := 1; month <= termMonths; month++ {
		interest := remaining.Mul(monthlyRateDec).Round(2)
		principalPart := monthlyPayment.Sub(interest)
		payment := monthlyPayment

		// Last period: absorb rounding drift so the balance reaches exactly zero.
		if month == termMonths {
			principalPart = remaining
			payment = principalPart.Add(interest)
		}

		remaining = remaining.Sub(principalPart)
		if remaining.LessThan(decimal.Zero) {
			remaining = decimal.Zero
		}

		totalInterest = totalInterest.Add(interest)
		totalPayment = totalPayment.Add(payment)

		schedule = append(schedule, AmortizationEntry{
			Month:     month,
			Payment:   payment,
			Principal: principalPart,
			Interest:  interest,
			Balance:   remaining,
		})
	}

	return AmortizationResult{
		MonthlyPayment: monthlyPayment,
		TotalInterest:  totalInterest,
		TotalPayment:   totalPayment,
		Schedule:       schedule,
	}, nil
}
