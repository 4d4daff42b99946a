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
// InsurancePolicy aggregate root
// ---------------------------------------------------------------------------

// InsurancePolicy is an immutable aggregate issued when an insurance
// application is approved.
type InsurancePolicy struct {
	id            string
	farmerID      string
	applicationID string
	policyType    valueobject.PolicyType
	coverage      decimal.Decimal
	premium       decimal.Decimal
	version       int
	createdAt     time.Time
	updatedAt     time.Time
	domainEvents  []event.DomainEvent
}

// NewInsurancePolicy issues a policy for the given coverage. The monthly
// premium is a fixed fraction of the coverage amount, supplied by the caller
// so the rate stays a policy decision of the institution.
func NewInsurancePolicy(
	farmerID, applicationID string,
	policyType valueobject.PolicyType,
	coverage, premium decimal.Decimal,
	now time.Time,
) (InsurancePolicy, error) {
	if farmerID == "" {
		return InsurancePolicy{}, errors.New("farmer ID is required")
	}
	if applicationID == "" {
		return InsurancePolicy{}, errors.New("application ID is required")
	}
	if policyType.IsZero() {
		return InsurancePolicy{}, errors.New("policy type is required")
	}
	if coverage.LessThanOrEqual(decimal.Zero) {
		return InsurancePolicy{}, errors.New("coverage must be positive")
	}
	if premium.LessThanOrEqual(decimal.Zero) {
		return InsurancePolicy{}, errors.New("premium must be positive")
	}

	id := uuid.New().String()
	policy := InsurancePolicy{
		id:            id,
		farmerID:      farmerID,
		applicationID: applicationID,
		policyType:    policyType,
		coverage:      coverage,
		premium:       premium,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}

	policy.domainEvents = append(policy.domainEvents, event.NewInsurancePolicyIssued(
		id, farmerID, policyType.String(), coverage, premium,
	))

	return policy, nil
}

// ReconstructInsurancePolicy rebuilds the aggregate from persistence.
func ReconstructInsurancePolicy(
	id, farmerID, applicationID string,
	policyType valueobject.PolicyType,
	coverage, premium decimal.Decimal,
	version int,
	createdAt, updatedAt time.Time,
) InsurancePolicy {
	return InsurancePolicy{
		id:            id,
		farmerID:      farmerID,
		applicationID: applicationID,
		policyType:    policyType,
		coverage:      coverage,
		premium:       premium,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (p InsurancePolicy) ID() string                        { return p.id }
func (p InsurancePolicy) FarmerID() string                  { return p.farmerID }
func (p InsurancePolicy) ApplicationID() string             { return p.applicationID }
func (p InsurancePolicy) PolicyType() valueobject.PolicyType { return p.policyType }
func (p InsurancePolicy) Coverage() decimal.Decimal         { return p.coverage }
func (p InsurancePolicy) Premium() decimal.Decimal          { return p.premium }
func (p InsurancePolicy) Version() int                      { return p.version }
func (p InsurancePolicy) CreatedAt() time.Time              { return p.createdAt }
func (p InsurancePolicy) UpdatedAt() time.Time              { return p.updatedAt }
func (p InsurancePolicy) DomainEvents() []event.DomainEvent { return p.domainEvents }

// ClearEvents returns a copy with an empty event list.
func (p InsurancePolicy) ClearEvents() InsurancePolicy {
	next := p
	next.domainEvents = nil
	return next
}
