package valueobject

import (
	"errors"
	"fmt"
)

// ErrInvalidStatusTransition is returned when an aggregate is asked to move
// to a status its current status does not allow.
var ErrInvalidStatusTransition = errors.New("invalid status transition")

// ---------------------------------------------------------------------------
// CreditStatus immutable value object
// ---------------------------------------------------------------------------

// CreditStatus represents the lifecycle stage of a credit simulation.
type CreditStatus struct {
	value string
}

const (
	creditStatusSimulated = "SIMULATED"
	creditStatusActive    = "ACTIVE"
	creditStatusPaid      = "PAID"
)

var (
	CreditStatusSimulated = CreditStatus{value: creditStatusSimulated}
	CreditStatusActive    = CreditStatus{value: creditStatusActive}
	CreditStatusPaid      = CreditStatus{value: creditStatusPaid}
)

var validCreditStatuses = map[string]CreditStatus{
	creditStatusSimulated: CreditStatusSimulated,
	creditStatusActive:    CreditStatusActive,
	creditStatusPaid:      CreditStatusPaid,
}

// NewCreditStatus creates a CreditStatus from a raw string.
func NewCreditStatus(s string) (CreditStatus, error) {
	v, ok := validCreditStatuses[s]
	if !ok {
		return CreditStatus{}, fmt.Errorf("invalid credit status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s CreditStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s CreditStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s CreditStatus) Equal(other CreditStatus) bool { return s.value == other.value }

// ---------------------------------------------------------------------------
// ApplicationStatus immutable value object
// ---------------------------------------------------------------------------

// ApplicationStatus represents the decision state of a product application.
type ApplicationStatus struct {
	value string
}

const (
	applicationStatusPending  = "PENDING"
	applicationStatusApproved = "APPROVED"
	applicationStatusRejected = "REJECTED"
)

var (
	ApplicationStatusPending  = ApplicationStatus{value: applicationStatusPending}
	ApplicationStatusApproved = ApplicationStatus{value: applicationStatusApproved}
	ApplicationStatusRejected = ApplicationStatus{value: applicationStatusRejected}
)

var validApplicationStatuses = map[string]ApplicationStatus{
	applicationStatusPending:  ApplicationStatusPending,
	applicationStatusApproved: ApplicationStatusApproved,
	applicationStatusRejected: ApplicationStatusRejected,
}

// NewApplicationStatus creates an ApplicationStatus from a raw string.
func NewApplicationStatus(s string) (ApplicationStatus, error) {
	v, ok := validApplicationStatuses[s]
	if !ok {
		return ApplicationStatus{}, fmt.Errorf("invalid application status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s ApplicationStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s ApplicationStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s ApplicationStatus) Equal(other ApplicationStatus) bool { return s.value == other.value }

// IsDecided reports whether the application has left the PENDING state.
func (s ApplicationStatus) IsDecided() bool { return s.value != applicationStatusPending }

// ---------------------------------------------------------------------------
// ProductType immutable value object
// ---------------------------------------------------------------------------

// ProductType identifies the financial product an application requests.
type ProductType struct {
	value string
}

const (
	productCredit         = "CREDIT"
	productSavingsAccount = "SAVINGS_ACCOUNT"
	productInsurance      = "INSURANCE"
)

var (
	ProductTypeCredit         = ProductType{value: productCredit}
	ProductTypeSavingsAccount = ProductType{value: productSavingsAccount}
	ProductTypeInsurance      = ProductType{value: productInsurance}
)

var validProductTypes = map[string]ProductType{
	productCredit:         ProductTypeCredit,
	productSavingsAccount: ProductTypeSavingsAccount,
	productInsurance:      ProductTypeInsurance,
}

// NewProductType creates a ProductType from a raw string.
func NewProductType(s string) (ProductType, error) {
	v, ok := validProductTypes[s]
	if !ok {
		return ProductType{}, fmt.Errorf("invalid product type: %q", s)
	}
	return v, nil
}

// String returns the string representation of the product type.
func (p ProductType) String() string { return p.value }

// IsZero returns true if the product type has not been initialised.
func (p ProductType) IsZero() bool { return p.value == "" }

// Equal returns true when both product types carry the same value.
func (p ProductType) Equal(other ProductType) bool { return p.value == other.value }

// ---------------------------------------------------------------------------
// PlanType immutable value object
// ---------------------------------------------------------------------------

// PlanType identifies a commercial credit plan.
type PlanType struct {
	value string
}

const (
	planSemilla = "SEMILLA"
	planCosecha = "COSECHA"
	planRaiz    = "RAIZ"
)

var (
	PlanTypeSemilla = PlanType{value: planSemilla}
	PlanTypeCosecha = PlanType{value: planCosecha}
	PlanTypeRaiz    = PlanType{value: planRaiz}
)

var validPlanTypes = map[string]PlanType{
	planSemilla: PlanTypeSemilla,
	planCosecha: PlanTypeCosecha,
	planRaiz:    PlanTypeRaiz,
}

// NewPlanType creates a PlanType from a raw string.
func NewPlanType(s string) (PlanType, error) {
	v, ok := validPlanTypes[s]
	if !ok {
		return PlanType{}, fmt.Errorf("invalid plan type: %q", s)
	}
	return v, nil
}

// String returns the string representation of the plan type.
func (p PlanType) String() string { return p.value }

// IsZero returns true if the plan type has not been initialised.
func (p PlanType) IsZero() bool { return p.value == "" }

// Equal returns true when both plan types carry the same value.
func (p PlanType) Equal(other PlanType) bool { return p.value == other.value }

// DisplayName returns the commercial plan name shown to farmers.
func (p PlanType) DisplayName() string {
	switch p.value {
	case planSemilla:
		return "Plan Semilla"
	case planCosecha:
		return "Plan Cosecha"
	case planRaiz:
		return "Plan Raíz"
	default:
		return p.value
	}
}

// ---------------------------------------------------------------------------
// PolicyType immutable value object
// ---------------------------------------------------------------------------

// PolicyType identifies the kind of insurance coverage.
type PolicyType struct {
	value string
}

const (
	policyVida       = "VIDA"
	policyCultivo    = "CULTIVO"
	policyMaquinaria = "MAQUINARIA"
)

var (
	PolicyTypeVida       = PolicyType{value: policyVida}
	PolicyTypeCultivo    = PolicyType{value: policyCultivo}
	PolicyTypeMaquinaria = PolicyType{value: policyMaquinaria}
)

var validPolicyTypes = map[string]PolicyType{
	policyVida:       PolicyTypeVida,
	policyCultivo:    PolicyTypeCultivo,
	policyMaquinaria: PolicyTypeMaquinaria,
}

// NewPolicyType creates a PolicyType from a raw string.
func NewPolicyType(s string) (PolicyType, error) {
	v, ok := validPolicyTypes[s]
	if !ok {
		return PolicyType{}, fmt.Errorf("invalid policy type: %q", s)
	}
	return v, nil
}

// String returns the string representation of the policy type.
func (p PolicyType) String() string { return p.value }

// IsZero returns true if the policy type has not been initialised.
func (p PolicyType) IsZero() bool { return p.value == "" }

// Equal returns true when both policy types carry the same value.
func (p PolicyType) Equal(other PolicyType) bool { return p.value == other.value }
