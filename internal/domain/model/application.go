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
// Product detail value objects
// ---------------------------------------------------------------------------

// CreditDetails describes a credit request, optionally linked to a saved
// simulation the farmer quoted beforehand.
type CreditDetails struct {
	SimulationID string
	Amount       decimal.Decimal
	TermMonths   int
	Purpose      string
}

// SavingsDetails describes a savings account request.
type SavingsDetails struct {
	InitialDeposit decimal.Decimal
}

// InsuranceDetails describes an insurance coverage request.
type InsuranceDetails struct {
	PolicyType valueobject.PolicyType
	Coverage   decimal.Decimal
}

// ---------------------------------------------------------------------------
// ProductApplication aggregate root
// ---------------------------------------------------------------------------

// ProductApplication is an immutable aggregate. Exactly one of the detail
// structs is populated, matching the product type.
type ProductApplication struct {
	id             string
	farmerID       string
	product        valueobject.ProductType
	status         valueobject.ApplicationStatus
	credit         *CreditDetails
	savings        *SavingsDetails
	insurance      *InsuranceDetails
	decidedBy      string
	decisionReason string
	decidedAt      time.Time
	version        int
	createdAt      time.Time
	updatedAt      time.Time
	domainEvents   []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewCreditApplication creates a PENDING credit application.
func NewCreditApplication(farmerID string, details CreditDetails, now time.Time) (ProductApplication, error) {
	if details.Amount.LessThanOrEqual(decimal.Zero) {
		return ProductApplication{}, errors.New("credit amount must be positive")
	}
	if details.TermMonths <= 0 {
		return ProductApplication{}, errors.New("credit term must be positive")
	}
	return newApplication(farmerID, valueobject.ProductTypeCredit, &details, nil, nil, now)
}

// NewSavingsApplication creates a PENDING savings account application.
func NewSavingsApplication(farmerID string, details SavingsDetails, now time.Time) (ProductApplication, error) {
	if details.InitialDeposit.LessThan(decimal.Zero) {
		return ProductApplication{}, errors.New("initial deposit cannot be negative")
	}
	return newApplication(farmerID, valueobject.ProductTypeSavingsAccount, nil, &details, nil, now)
}

// NewInsuranceApplication creates a PENDING insurance application.
func NewInsuranceApplication(farmerID string, details InsuranceDetails, now time.Time) (ProductApplication, error) {
	if details.PolicyType.IsZero() {
		return ProductApplication{}, errors.New("policy type is required")
	}
	if details.Coverage.LessThanOrEqual(decimal.Zero) {
		return ProductApplication{}, errors.New("coverage must be positive")
	}
	return newApplication(farmerID, valueobject.ProductTypeInsurance, nil, nil, &details, now)
}

func newApplication(
	farmerID string,
	product valueobject.ProductType,
	credit *CreditDetails,
	savings *SavingsDetails,
	insurance *InsuranceDetails,
	now time.Time,
) (ProductApplication, error) {
	if farmerID == "" {
		return ProductApplication{}, errors.New("farmer ID is required")
	}

	id := uuid.New().String()
	app := ProductApplication{
		id:        id,
		farmerID:  farmerID,
		product:   product,
		status:    valueobject.ApplicationStatusPending,
		credit:    credit,
		savings:   savings,
		insurance: insurance,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}

	app.domainEvents = append(app.domainEvents, event.NewApplicationSubmitted(
		id, farmerID, product.String(),
	))

	return app, nil
}

// ReconstructProductApplication rebuilds the aggregate from persistence.
func ReconstructProductApplication(
	id, farmerID string,
	product valueobject.ProductType,
	status valueobject.ApplicationStatus,
	credit *CreditDetails,
	savings *SavingsDetails,
	insurance *InsuranceDetails,
	decidedBy, decisionReason string,
	decidedAt time.Time,
	version int,
	createdAt, updatedAt time.Time,
) ProductApplication {
	return ProductApplication{
		id:             id,
		farmerID:       farmerID,
		product:        product,
		status:         status,
		credit:         credit,
		savings:        savings,
		insurance:      insurance,
		decidedBy:      decidedBy,
		decisionReason: decisionReason,
		decidedAt:      decidedAt,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

// Approve transitions PENDING -> APPROVED.
func (a ProductApplication) Approve(decidedBy string, now time.Time) (ProductApplication, error) {
	if !a.status.Equal(valueobject.ApplicationStatusPending) {
		return a, valueobject.ErrInvalidStatusTransition
	}
	if decidedBy == "" {
		return a, errors.New("approver identity is required")
	}
	next := a
	next.status = valueobject.ApplicationStatusApproved
	next.decidedBy = decidedBy
	next.decidedAt = now
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationApproved(
		a.id, a.farmerID, a.product.String(), decidedBy,
	))
	return next, nil
}

// Reject transitions PENDING -> REJECTED.
func (a ProductApplication) Reject(decidedBy, reason string, now time.Time) (ProductApplication, error) {
	if !a.status.Equal(valueobject.ApplicationStatusPending) {
		return a, valueobject.ErrInvalidStatusTransition
	}
	if decidedBy == "" {
		return a, errors.New("approver identity is required")
	}
	next := a
	next.status = valueobject.ApplicationStatusRejected
	next.decidedBy = decidedBy
	next.decisionReason = reason
	next.decidedAt = now
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationRejected(
		a.id, a.farmerID, a.product.String(), decidedBy, reason,
	))
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (a ProductApplication) ID() string                             { return a.id }
func (a ProductApplication) FarmerID() string                       { return a.farmerID }
func (a ProductApplication) Product() valueobject.ProductType       { return a.product }
func (a ProductApplication) Status() valueobject.ApplicationStatus  { return a.status }
func (a ProductApplication) DecidedBy() string                      { return a.decidedBy }
func (a ProductApplication) DecisionReason() string                 { return a.decisionReason }
func (a ProductApplication) DecidedAt() time.Time                   { return a.decidedAt }
func (a ProductApplication) Version() int                           { return a.version }
func (a ProductApplication) CreatedAt() time.Time                   { return a.createdAt }
func (a ProductApplication) UpdatedAt() time.Time                   { return a.updatedAt }
func (a ProductApplication) DomainEvents() []event.DomainEvent      { return a.domainEvents }

// CreditDetails returns a copy of the credit request details, if any.
func (a ProductApplication) CreditDetails() (CreditDetails, bool) {
	if a.credit == nil {
		return CreditDetails{}, false
	}
	return *a.credit, true
}

// SavingsDetails returns a copy of the savings request details, if any.
func (a ProductApplication) SavingsDetails() (SavingsDetails, bool) {
	if a.savings == nil {
		return SavingsDetails{}, false
	}
	return *a.savings, true
}

// InsuranceDetails returns a copy of the insurance request details, if any.
func (a ProductApplication) InsuranceDetails() (InsuranceDetails, bool) {
	if a.insurance == nil {
		return InsuranceDetails{}, false
	}
	return *a.insurance, true
}

// ClearEvents returns a copy with an empty event list.
func (a ProductApplication) ClearEvents() ProductApplication {
	next := a
	next.domainEvents = nil
	return next
}
