package event

import (
	"github.com/shopspring/decimal"

	"github.com/agrocredito/agrocredito/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Credit Simulation Events
// ---------------------------------------------------------------------------

// SimulationSaved is raised when a farmer persists a quoted simulation.
type SimulationSaved struct {
	events.BaseEvent
	FarmerID       string          `json:"farmer_id"`
	Crop           string          `json:"crop"`
	Amount         decimal.Decimal `json:"amount"`
	TermMonths     int             `json:"term_months"`
	MonthlyRate    decimal.Decimal `json:"monthly_rate"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
}

func NewSimulationSaved(
	simulationID, farmerID, crop string,
	amount decimal.Decimal, termMonths int,
	monthlyRate, monthlyPayment decimal.Decimal,
) SimulationSaved {
	return SimulationSaved{
		BaseEvent:      events.NewBaseEvent("credit.simulation.saved", simulationID, "CreditSimulation"),
		FarmerID:       farmerID,
		Crop:           crop,
		Amount:         amount,
		TermMonths:     termMonths,
		MonthlyRate:    monthlyRate,
		MonthlyPayment: monthlyPayment,
	}
}

// CreditActivated is raised when a saved simulation becomes a live credit.
type CreditActivated struct {
	events.BaseEvent
	FarmerID string          `json:"farmer_id"`
	Amount   decimal.Decimal `json:"amount"`
	Plan     string          `json:"plan,omitempty"`
}

func NewCreditActivated(simulationID, farmerID string, amount decimal.Decimal, plan string) CreditActivated {
	return CreditActivated{
		BaseEvent: events.NewBaseEvent("credit.simulation.activated", simulationID, "CreditSimulation"),
		FarmerID:  farmerID,
		Amount:    amount,
		Plan:      plan,
	}
}

// CreditPaid is raised when an active credit is fully repaid.
type CreditPaid struct {
	events.BaseEvent
	FarmerID string `json:"farmer_id"`
}

func NewCreditPaid(simulationID, farmerID string) CreditPaid {
	return CreditPaid{
		BaseEvent: events.NewBaseEvent("credit.simulation.paid", simulationID, "CreditSimulation"),
		FarmerID:  farmerID,
	}
}

// ---------------------------------------------------------------------------
// Farmer Events
// ---------------------------------------------------------------------------

// FarmerRegistered is raised when a new farmer profile is created.
type FarmerRegistered struct {
	events.BaseEvent
	FullName string `json:"full_name"`
	Document string `json:"document"`
	Region   string `json:"region"`
}

func NewFarmerRegistered(farmerID, fullName, document, region string) FarmerRegistered {
	return FarmerRegistered{
		BaseEvent: events.NewBaseEvent("credit.farmer.registered", farmerID, "Farmer"),
		FullName:  fullName,
		Document:  document,
		Region:    region,
	}
}

// ---------------------------------------------------------------------------
// Product Application Events
// ---------------------------------------------------------------------------

// ApplicationSubmitted is raised when a farmer requests a financial product.
type ApplicationSubmitted struct {
	events.BaseEvent
	FarmerID string `json:"farmer_id"`
	Product  string `json:"product"`
}

func NewApplicationSubmitted(applicationID, farmerID, product string) ApplicationSubmitted {
	return ApplicationSubmitted{
		BaseEvent: events.NewBaseEvent("credit.application.submitted", applicationID, "ProductApplication"),
		FarmerID:  farmerID,
		Product:   product,
	}
}

// ApplicationApproved is raised when an advisor approves an application.
type ApplicationApproved struct {
	events.BaseEvent
	FarmerID  string `json:"farmer_id"`
	Product   string `json:"product"`
	DecidedBy string `json:"decided_by"`
}

func NewApplicationApproved(applicationID, farmerID, product, decidedBy string) ApplicationApproved {
	return ApplicationApproved{
		BaseEvent: events.NewBaseEvent("credit.application.approved", applicationID, "ProductApplication"),
		FarmerID:  farmerID,
		Product:   product,
		DecidedBy: decidedBy,
	}
}

// ApplicationRejected is raised when an advisor rejects an application.
type ApplicationRejected struct {
	events.BaseEvent
	FarmerID  string `json:"farmer_id"`
	Product   string `json:"product"`
	DecidedBy string `json:"decided_by"`
	Reason    string `json:"reason"`
}

func NewApplicationRejected(applicationID, farmerID, product, decidedBy, reason string) ApplicationRejected {
	return ApplicationRejected{
		BaseEvent: events.NewBaseEvent("credit.application.rejected", applicationID, "ProductApplication"),
		FarmerID:  farmerID,
		Product:   product,
		DecidedBy: decidedBy,
		Reason:    reason,
	}
}

// ---------------------------------------------------------------------------
// Product Materialization Events
// ---------------------------------------------------------------------------

// SavingsAccountOpened is raised when an approved savings application
// materializes into an account.
type SavingsAccountOpened struct {
	events.BaseEvent
	FarmerID       string          `json:"farmer_id"`
	InitialDeposit decimal.Decimal `json:"initial_deposit"`
}

func NewSavingsAccountOpened(accountID, farmerID string, initialDeposit decimal.Decimal) SavingsAccountOpened {
	return SavingsAccountOpened{
		BaseEvent:      events.NewBaseEvent("credit.savings_account.opened", accountID, "SavingsAccount"),
		FarmerID:       farmerID,
		InitialDeposit: initialDeposit,
	}
}

// InsurancePolicyIssued is raised when an approved insurance application
// materializes into a policy.
type InsurancePolicyIssued struct {
	events.BaseEvent
	FarmerID   string          `json:"farmer_id"`
	PolicyType string          `json:"policy_type"`
	Coverage   decimal.Decimal `json:"coverage"`
	Premium    decimal.Decimal `json:"premium"`
}

func NewInsurancePolicyIssued(policyID, farmerID, policyType string, coverage, premium decimal.Decimal) InsurancePolicyIssued {
	return InsurancePolicyIssued{
		BaseEvent:  events.NewBaseEvent("credit.insurance_policy.issued", policyID, "InsurancePolicy"),
		FarmerID:   farmerID,
		PolicyType: policyType,
		Coverage:   coverage,
		Premium:    premium,
	}
}
