package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// SimulateCreditRequest carries the raw form input for a credit quote.
// InterestRate is optional; when nil the rate model suggests one.
type SimulateCreditRequest struct {
	Crop           string           `json:"crop"`
	CustomCropName string           `json:"custom_crop_name,omitempty"`
	Hectares       decimal.Decimal  `json:"hectares"`
	MonthlyYield   decimal.Decimal  `json:"monthly_yield"`
	Amount         decimal.Decimal  `json:"amount"`
	TermMonths     int              `json:"term_months"`
	InterestRate   *decimal.Decimal `json:"interest_rate,omitempty"`
}

// SaveSimulationRequest persists a quote under a farmer's profile.
type SaveSimulationRequest struct {
	FarmerID string `json:"farmer_id"`
	SimulateCreditRequest
}

// GetSimulationRequest identifies a simulation to retrieve.
type GetSimulationRequest struct {
	SimulationID string `json:"simulation_id"`
}

// ListSimulationsRequest optionally narrows the listing to one farmer.
type ListSimulationsRequest struct {
	FarmerID string `json:"farmer_id,omitempty"`
}

// DeleteSimulationRequest identifies a simulation to remove.
type DeleteSimulationRequest struct {
	SimulationID string `json:"simulation_id"`
}

// RegisterFarmerRequest carries a new farmer profile.
type RegisterFarmerRequest struct {
	FullName string `json:"full_name"`
	Document string `json:"document"`
	Phone    string `json:"phone,omitempty"`
	Region   string `json:"region,omitempty"`
}

// SubmitApplicationRequest carries a financial product request. Exactly one
// of the detail blocks must be present, matching Product.
type SubmitApplicationRequest struct {
	FarmerID  string                   `json:"farmer_id"`
	Product   string                   `json:"product"`
	Credit    *CreditDetailsRequest    `json:"credit,omitempty"`
	Savings   *SavingsDetailsRequest   `json:"savings,omitempty"`
	Insurance *InsuranceDetailsRequest `json:"insurance,omitempty"`
}

// CreditDetailsRequest describes a credit product request.
type CreditDetailsRequest struct {
	SimulationID string          `json:"simulation_id,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	TermMonths   int             `json:"term_months"`
	Purpose      string          `json:"purpose,omitempty"`
}

// SavingsDetailsRequest describes a savings account request.
type SavingsDetailsRequest struct {
	InitialDeposit decimal.Decimal `json:"initial_deposit"`
}

// InsuranceDetailsRequest describes an insurance coverage request.
type InsuranceDetailsRequest struct {
	PolicyType string          `json:"policy_type"`
	Coverage   decimal.Decimal `json:"coverage"`
}

// DecideApplicationRequest records an advisor's decision on a pending
// application.
type DecideApplicationRequest struct {
	ApplicationID string `json:"application_id"`
	Approve       bool   `json:"approve"`
	DecidedBy     string `json:"decided_by"`
	Reason        string `json:"reason,omitempty"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// AmortizationEntryResponse represents a single amortization schedule entry.
type AmortizationEntryResponse struct {
	Month     int             `json:"month"`
	Payment   decimal.Decimal `json:"payment"`
	Principal decimal.Decimal `json:"principal"`
	Interest  decimal.Decimal `json:"interest"`
	Balance   decimal.Decimal `json:"balance"`
}

// AdvisoryResponse is the advice selected for a simulation.
type AdvisoryResponse struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
	Plan string `json:"plan,omitempty"`
}

// SimulationQuoteResponse is the external representation of a computed quote.
// It is returned by the simulate operation without being persisted.
type SimulationQuoteResponse struct {
	Crop           string                      `json:"crop"`
	CustomCropName string                      `json:"custom_crop_name,omitempty"`
	Hectares       decimal.Decimal             `json:"hectares"`
	MonthlyYield   decimal.Decimal             `json:"monthly_yield"`
	Amount         decimal.Decimal             `json:"amount"`
	TermMonths     int                         `json:"term_months"`
	SuggestedRate  decimal.Decimal             `json:"suggested_rate"`
	AppliedRate    decimal.Decimal             `json:"applied_rate"`
	MonthlyPayment decimal.Decimal             `json:"monthly_payment"`
	TotalInterest  decimal.Decimal             `json:"total_interest"`
	TotalPayment   decimal.Decimal             `json:"total_payment"`
	Schedule       []AmortizationEntryResponse `json:"schedule"`
	Advisory       AdvisoryResponse            `json:"advisory"`
}

// SimulationResponse is the external representation of a persisted
// simulation.
type SimulationResponse struct {
	ID             string                      `json:"id"`
	FarmerID       string                      `json:"farmer_id"`
	Crop           string                      `json:"crop"`
	CustomCropName string                      `json:"custom_crop_name,omitempty"`
	Hectares       decimal.Decimal             `json:"hectares"`
	MonthlyYield   decimal.Decimal             `json:"monthly_yield"`
	Amount         decimal.Decimal             `json:"amount"`
	TermMonths     int                         `json:"term_months"`
	MonthlyRate    decimal.Decimal             `json:"monthly_rate"`
	MonthlyPayment decimal.Decimal             `json:"monthly_payment"`
	TotalInterest  decimal.Decimal             `json:"total_interest"`
	TotalPayment   decimal.Decimal             `json:"total_payment"`
	Status         string                      `json:"status"`
	Plan           string                      `json:"plan,omitempty"`
	Schedule       []AmortizationEntryResponse `json:"schedule,omitempty"`
	CreatedAt      time.Time                   `json:"created_at"`
	UpdatedAt      time.Time                   `json:"updated_at"`
}

// FarmerResponse is the external representation of a farmer profile.
type FarmerResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Document  string    `json:"document"`
	Phone     string    `json:"phone,omitempty"`
	Region    string    `json:"region,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ApplicationResponse is the external representation of a product
// application.
type ApplicationResponse struct {
	ID             string                   `json:"id"`
	FarmerID       string                   `json:"farmer_id"`
	Product        string                   `json:"product"`
	Status         string                   `json:"status"`
	Credit         *CreditDetailsRequest    `json:"credit,omitempty"`
	Savings        *SavingsDetailsRequest   `json:"savings,omitempty"`
	Insurance      *InsuranceDetailsRequest `json:"insurance,omitempty"`
	DecidedBy      string                   `json:"decided_by,omitempty"`
	DecisionReason string                   `json:"decision_reason,omitempty"`
	DecidedAt      *time.Time               `json:"decided_at,omitempty"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at"`
}

// DecisionResponse reports an application decision and any product the
// approval materialized.
type DecisionResponse struct {
	Application  ApplicationResponse `json:"application"`
	SimulationID string              `json:"simulation_id,omitempty"`
	AccountID    string              `json:"account_id,omitempty"`
	PolicyID     string              `json:"policy_id,omitempty"`
}

// SavingsAccountResponse is the external representation of a savings account.
type SavingsAccountResponse struct {
	ID            string          `json:"id"`
	FarmerID      string          `json:"farmer_id"`
	ApplicationID string          `json:"application_id"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"created_at"`
}

// InsurancePolicyResponse is the external representation of an insurance
// policy.
type InsurancePolicyResponse struct {
	ID            string          `json:"id"`
	FarmerID      string          `json:"farmer_id"`
	ApplicationID string          `json:"application_id"`
	PolicyType    string          `json:"policy_type"`
	Coverage      decimal.Decimal `json:"coverage"`
	Premium       decimal.Decimal `json:"premium"`
	CreatedAt     time.Time       `json:"created_at"`
}

// PortfolioSummaryResponse aggregates portfolio figures for the admin
// dashboard.
type PortfolioSummaryResponse struct {
	TotalSimulations    int             `json:"total_simulations"`
	ActiveCredits       int             `json:"active_credits"`
	PaidCredits         int             `json:"paid_credits"`
	ActivePrincipal     decimal.Decimal `json:"active_principal"`
	PendingApplications int             `json:"pending_applications"`
	RegisteredFarmers   int             `json:"registered_farmers"`
}
