package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agrocredito/agrocredito/internal/domain/event"
)

// ---------------------------------------------------------------------------
// SavingsAccount aggregate root
// ---------------------------------------------------------------------------

// SavingsAccount is an immutable aggregate opened when a savings application
// is approved.
type SavingsAccount struct {
	id            string
	farmerID      string
	applicationID string
	balance       decimal.Decimal
	version       int
	createdAt     time.Time
	updatedAt     time.Time
	domainEvents  []event.DomainEvent
}

// NewSavingsAccount opens an account with the application's initial deposit
// as its starting balance.
func NewSavingsAccount(farmerID, applicationID string, initialDeposit decimal.Decimal, now time.Time) (SavingsAccount, error) {
	if farmerID == "" {
		return SavingsAccount{}, errors.New("farmer ID is required")
	}
	if applicationID == "" {
		return SavingsAccount{}, errors.New("application ID is required")
	}
	if initialDeposit.LessThan(decimal.Zero) {
		return SavingsAccount{}, errors.New("initial deposit cannot be negative")
	}

	id := uuid.New().String()
	account := SavingsAccount{
		id:            id,
		farmerID:      farmerID,
		applicationID: applicationID,
		balance:       initialDeposit,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}

	account.domainEvents = append(account.domainEvents, event.NewSavingsAccountOpened(
		id, farmerID, initialDeposit,
	))

	return account, nil
}

// ReconstructSavingsAccount rebuilds the aggregate from persistence.
func ReconstructSavingsAccount(
	id, farmerID, applicationID string,
	balance decimal.Decimal,
	version int,
	createdAt, updatedAt time.Time,
) SavingsAccount {
	return SavingsAccount{
		id:            id,
		farmerID:      farmerID,
		applicationID: applicationID,
		balance:       balance,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Deposit adds funds to the account balance.
func (s SavingsAccount) Deposit(amount decimal.Decimal, now time.Time) (SavingsAccount, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return s, errors.New("deposit amount must be positive")
	}
	next := s
	next.balance = s.balance.Add(amount)
	next.updatedAt = now
	next.domainEvents = copyEvents(s.domainEvents)
	return next, nil
}

// Withdraw removes funds from the account balance.
func (s SavingsAccount) Withdraw(amount decimal.Decimal, now time.Time) (SavingsAccount, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return s, errors.New("withdrawal amount must be positive")
	}
	if amount.GreaterThan(s.balance) {
		return s, errors.New("withdrawal exceeds balance")
	}
	next := s
	next.balance = s.balance.Sub(amount)
	next.updatedAt = now
	next.domainEvents = copyEvents(s.domainEvents)
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (s SavingsAccount) ID() string                        { return s.id }
func (s SavingsAccount) FarmerID() string                  { return s.farmerID }
func (s SavingsAccount) ApplicationID() string             { return s.applicationID }
func (s SavingsAccount) Balance() decimal.Decimal          { return s.balance }
func (s SavingsAccount) Version() int                      { return s.version }
func (s SavingsAccount) CreatedAt() time.Time              { return s.createdAt }
func (s SavingsAccount) UpdatedAt() time.Time              { return s.updatedAt }
func (s SavingsAccount) DomainEvents() []event.DomainEvent { return s.domainEvents }

// ClearEvents returns a copy with an empty event list.
func (s SavingsAccount) ClearEvents() SavingsAccount {
	next := s
	next.domainEvents = nil
	return next
}
