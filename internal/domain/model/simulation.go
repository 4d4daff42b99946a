package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agrocredito/agrocredito/internal/domain/event"
	"github.com/agrocredito/agrocredito/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// CreditSimulation aggregate root
// ---------------------------------------------------------------------------

// CreditSimulation is an immutable aggregate. Mutations return a new copy.
//
// A simulation starts life as a quote (SIMULATED). Once an advisor approves
// the matching credit application it becomes a live credit (ACTIVE) and can
// eventually be settled (PAID).
type CreditSimulation struct {
	id             string
	farmerID       string
	crop           valueobject.CropType
	hectares       decimal.Decimal
	expectedYield  decimal.Decimal
	amount         decimal.Decimal
	termMonths     int
	monthlyRate    decimal.Decimal
	monthlyPayment decimal.Decimal
	totalInterest  decimal.Decimal
	totalPayment   decimal.Decimal
	schedule       []AmortizationEntry
	status         valueobject.CreditStatus
	plan           valueobject.PlanType
	version        int
	createdAt      time.Time
	updatedAt      time.Time
	domainEvents   []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewCreditSimulation creates a simulation quote, computing the full
// amortization schedule from the given monthly rate. The simulation starts
// in SIMULATED status and records a SimulationSaved event.
func NewCreditSimulation(
	farmerID string,
	crop valueobject.CropType,
	hectares, expectedYield decimal.Decimal,
	amount decimal.Decimal,
	termMonths int,
	monthlyRate decimal.Decimal,
	now time.Time,
) (CreditSimulation, error) {
	if farmerID == "" {
		return CreditSimulation{}, errors.New("farmer ID is required")
	}
	if crop.IsZero() {
		return CreditSimulation{}, errors.New("crop is required")
	}

	result, err := ComputeAmortization(amount, monthlyRate, termMonths)
	if err != nil {
		return CreditSimulation{}, err
	}

	id := uuid.New().String()
	sim := CreditSimulation{
		id:             id,
		farmerID:       farmerID,
		crop:           crop,
		hectares:       hectares,
		expectedYield:  expectedYield,
		amount:         amount,
		termMonths:     termMonths,
		monthlyRate:    monthlyRate,
		monthlyPayment: result.MonthlyPayment,
		totalInterest:  result.TotalInterest,
		totalPayment:   result.TotalPayment,
		schedule:       result.Schedule,
		status:         valueobject.CreditStatusSimulated,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}

	sim.domainEvents = append(sim.domainEvents, event.NewSimulationSaved(
		id, farmerID, crop.String(), amount, termMonths, monthlyRate, result.MonthlyPayment,
	))

	return sim, nil
}

// ReconstructCreditSimulation rebuilds the aggregate from persistence.
func ReconstructCreditSimulation(
	id, farmerID string,
	crop valueobject.CropType,
	hectares, expectedYield decimal.Decimal,
	amount decimal.Decimal,
	termMonths int,
	monthlyRate, monthlyPayment, totalInterest, totalPayment decimal.Decimal,
	schedule []AmortizationEntry,
	status valueobject.CreditStatus,
	plan valueobject.PlanType,
	version int,
	createdAt, updatedAt time.Time,
) CreditSimulation {
	return CreditSimulation{
		id:             id,
		farmerID:       farmerID,
		crop:           crop,
		hectares:       hectares,
		expectedYield:  expectedYield,
		amount:         amount,
		termMonths:     termMonths,
		monthlyRate:    monthlyRate,
		monthlyPayment: monthlyPayment,
		totalInterest:  totalInterest,
		totalPayment:   totalPayment,
		schedule:       schedule,
		status:         status,
		plan:           plan,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

// Activate transitions SIMULATED -> ACTIVE, assigning the commercial plan
// under which the credit was approved.
func (s CreditSimulation) Activate(plan valueobject.PlanType, now time.Time) (CreditSimulation, error) {
	if !s.status.Equal(valueobject.CreditStatusSimulated) {
		return s, valueobject.ErrInvalidStatusTransition
	}
	next := s
	next.status = valueobject.CreditStatusActive
	next.plan = plan
	next.updatedAt = now
	next.domainEvents = copyEvents(s.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewCreditActivated(
		s.id, s.farmerID, s.amount, plan.String(),
	))
	return next, nil
}

// MarkPaid transitions ACTIVE -> PAID.
func (s CreditSimulation) MarkPaid(now time.Time) (CreditSimulation, error) {
	if !s.status.Equal(valueobject.CreditStatusActive) {
		return s, valueobject.ErrInvalidStatusTransition
	}
	next := s
	next.status = valueobject.CreditStatusPaid
	next.updatedAt = now
	next.domainEvents = copyEvents(s.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewCreditPaid(s.id, s.farmerID))
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (s CreditSimulation) ID() string                        { return s.id }
func (s CreditSimulation) FarmerID() string                  { return s.farmerID }
func (s CreditSimulation) Crop() valueobject.CropType        { return s.crop }
func (s CreditSimulation) Hectares() decimal.Decimal         { return s.hectares }
func (s CreditSimulation) ExpectedYield() decimal.Decimal    { return s.expectedYield }
func (s CreditSimulation) Amount() decimal.Decimal           { return s.amount }
func (s CreditSimulation) TermMonths() int                   { return s.termMonths }
func (s CreditSimulation) MonthlyRate() decimal.Decimal      { return s.monthlyRate }
func (s CreditSimulation) MonthlyPayment() decimal.Decimal   { return s.monthlyPayment }
func (s CreditSimulation) TotalInterest() decimal.Decimal    { return s.totalInterest }
func (s CreditSimulation) TotalPayment() decimal.Decimal     { return s.totalPayment }
func (s CreditSimulation) Status() valueobject.CreditStatus  { return s.status }
func (s CreditSimulation) Plan() valueobject.PlanType        { return s.plan }
func (s CreditSimulation) Version() int                      { return s.version }
func (s CreditSimulation) CreatedAt() time.Time              { return s.createdAt }
func (s CreditSimulation) UpdatedAt() time.Time              { return s.updatedAt }
func (s CreditSimulation) DomainEvents() []event.DomainEvent { return s.domainEvents }

// Schedule returns a defensive copy of the amortization schedule.
func (s CreditSimulation) Schedule() []AmortizationEntry {
	if s.schedule == nil {
		return nil
	}
	out := make([]AmortizationEntry, len(s.schedule))
	copy(out, s.schedule)
	return out
}

// ClearEvents returns a copy with an empty event list.
func (s CreditSimulation) ClearEvents() CreditSimulation {
	next := s
	next.domainEvents = nil
	return next
}

func copyEvents(in []event.DomainEvent) []event.DomainEvent {
	if in == nil {
		return nil
	}
	out := make([]event.DomainEvent, len(in))
	copy(out, in)
	return out
}
