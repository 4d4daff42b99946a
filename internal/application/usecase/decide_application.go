package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/agrocredito/agrocredito/internal/application/dto"
	"github.com/agrocredito/agrocredito/internal/domain/event"
	"github.com/agrocredito/agrocredito/internal/domain/model"
	"github.com/agrocredito/agrocredito/internal/domain/port"
	"github.com/agrocredito/agrocredito/internal/domain/valueobject"
)

// DecisionPolicy carries the institutional terms applied when an advisor
// approves a product.
type DecisionPolicy struct {
	// InstitutionalRatePercent is the monthly rate applied to credits
	// approved without a prior simulation.
	InstitutionalRatePercent decimal.Decimal
	// DefaultPlan is assigned to approved credits.
	DefaultPlan valueobject.PlanType
	// InsurancePremiumRate is the monthly premium as a fraction of coverage.
	InsurancePremiumRate decimal.Decimal
}

// DefaultDecisionPolicy returns the institution's standard terms.
func DefaultDecisionPolicy() DecisionPolicy {
	return DecisionPolicy{
		InstitutionalRatePercent: decimal.NewFromFloat(1.8),
		DefaultPlan:              valueobject.PlanTypeSemilla,
		InsurancePremiumRate:     decimal.NewFromFloat(0.05),
	}
}

// DecideApplicationUseCase applies an advisor's decision to a pending
// application. Approval materializes the requested product: credits become
// active simulations, savings requests open accounts, insurance requests
// issue policies.
type DecideApplicationUseCase struct {
	appRepo     port.ApplicationRepository
	simRepo     port.SimulationRepository
	accountRepo port.SavingsAccountRepository
	policyRepo  port.InsurancePolicyRepository
	publisher   port.EventPublisher
	policy      DecisionPolicy
}

// NewDecideApplicationUseCase wires dependencies.
func NewDecideApplicationUseCase(
	appRepo port.ApplicationRepository,
	simRepo port.SimulationRepository,
	accountRepo port.SavingsAccountRepository,
	policyRepo port.InsurancePolicyRepository,
	publisher port.EventPublisher,
	policy DecisionPolicy,
) *DecideApplicationUseCase {
	return &DecideApplicationUseCase{
		appRepo:     appRepo,
		simRepo:     simRepo,
		accountRepo: accountRepo,
		policyRepo:  policyRepo,
		publisher:   publisher,
		policy:      policy,
	}
}

// Execute records the decision and materializes the product on approval.
func (uc *DecideApplicationUseCase) Execute(
	ctx context.Context,
	req dto.DecideApplicationRequest,
) (dto.DecisionResponse, error) {
	now := time.Now().UTC()

	// 1. Load the pending application.
	app, err := uc.appRepo.FindByID(ctx, req.ApplicationID)
	if err != nil {
		return dto.DecisionResponse{}, fmt.Errorf("find application: %w", err)
	}

	// 2. Apply the decision.
	if req.Approve {
		app, err = app.Approve(req.DecidedBy, now)
	} else {
		app, err = app.Reject(req.DecidedBy, req.Reason, now)
	}
	if err != nil {
		return dto.DecisionResponse{}, fmt.Errorf("apply decision: %w", err)
	}

	resp := dto.DecisionResponse{}
	pending := app.DomainEvents()

	// 3. Materialize the approved product.
	if req.Approve {
		var productEvents []event.DomainEvent
		resp, productEvents, err = uc.materialize(ctx, app, now)
		if err != nil {
			return dto.DecisionResponse{}, err
		}
		pending = append(pending, productEvents...)
	}

	// 4. Persist the decided application.
	if err := uc.appRepo.Save(ctx, app); err != nil {
		return dto.DecisionResponse{}, fmt.Errorf("save application: %w", err)
	}

	// 5. Publish the decision and materialization events together.
	if err := uc.publisher.Publish(ctx, pending...); err != nil {
		return dto.DecisionResponse{}, fmt.Errorf("publish events: %w", err)
	}

	resp.Application = toApplicationResponse(app)
	return resp, nil
}

func (uc *DecideApplicationUseCase) materialize(
	ctx context.Context,
	app model.ProductApplication,
	now time.Time,
) (dto.DecisionResponse, []event.DomainEvent, error) {
	resp := dto.DecisionResponse{}

	switch {
	case app.Product().Equal(valueobject.ProductTypeCredit):
		details, ok := app.CreditDetails()
		if !ok {
			return resp, nil, fmt.Errorf("application %s: missing credit details", app.ID())
		}
		sim, err := uc.activateCredit(ctx, app.FarmerID(), details, now)
		if err != nil {
			return resp, nil, err
		}
		resp.SimulationID = sim.ID()
		return resp, sim.DomainEvents(), nil

	case app.Product().Equal(valueobject.ProductTypeSavingsAccount):
		details, ok := app.SavingsDetails()
		if !ok {
			return resp, nil, fmt.Errorf("application %s: missing savings details", app.ID())
		}
		account, err := model.NewSavingsAccount(app.FarmerID(), app.ID(), details.InitialDeposit, now)
		if err != nil {
			return resp, nil, fmt.Errorf("open savings account: %w", err)
		}
		if err := uc.accountRepo.Save(ctx, account); err != nil {
			return resp, nil, fmt.Errorf("save savings account: %w", err)
		}
		resp.AccountID = account.ID()
		return resp, account.DomainEvents(), nil

	case app.Product().Equal(valueobject.ProductTypeInsurance):
		details, ok := app.InsuranceDetails()
		if !ok {
			return resp, nil, fmt.Errorf("application %s: missing insurance details", app.ID())
		}
		premium := details.Coverage.Mul(uc.policy.InsurancePremiumRate).Round(2)
		policy, err := model.NewInsurancePolicy(app.FarmerID(), app.ID(), details.PolicyType, details.Coverage, premium, now)
		if err != nil {
			return resp, nil, fmt.Errorf("issue insurance policy: %w", err)
		}
		if err := uc.policyRepo.Save(ctx, policy); err != nil {
			return resp, nil, fmt.Errorf("save insurance policy: %w", err)
		}
		resp.PolicyID = policy.ID()
		return resp, policy.DomainEvents(), nil
	}

	return resp, nil, fmt.Errorf("unsupported product: %s", app.Product())
}

// activateCredit turns an approved credit request into a live credit. A
// request that references a saved simulation activates that simulation;
// otherwise a fresh one is created at the institutional rate.
func (uc *DecideApplicationUseCase) activateCredit(
	ctx context.Context,
	farmerID string,
	details model.CreditDetails,
	now time.Time,
) (model.CreditSimulation, error) {
	var (
		sim model.CreditSimulation
		err error
	)

	if details.SimulationID != "" {
		sim, err = uc.simRepo.FindByID(ctx, details.SimulationID)
		if err != nil {
			return model.CreditSimulation{}, fmt.Errorf("find simulation: %w", err)
		}
	} else {
		crop, cerr := valueobject.NewCustomCropType("Sin especificar")
		if cerr != nil {
			return model.CreditSimulation{}, cerr
		}
		sim, err = model.NewCreditSimulation(
			farmerID, crop,
			decimal.NewFromInt(1), decimal.Zero,
			details.Amount, details.TermMonths,
			uc.policy.InstitutionalRatePercent, now,
		)
		if err != nil {
			return model.CreditSimulation{}, fmt.Errorf("create credit: %w", err)
		}
	}

	sim, err = sim.Activate(uc.policy.DefaultPlan, now)
	if err != nil {
		return model.CreditSimulation{}, fmt.Errorf("activate credit: %w", err)
	}

	if err := uc.simRepo.Save(ctx, sim); err != nil {
		return model.CreditSimulation{}, fmt.Errorf("save credit: %w", err)
	}
	return sim, nil
}
