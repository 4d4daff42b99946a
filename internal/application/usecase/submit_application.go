package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/agrocredito/agrocredito/internal/application/dto"
	"github.com/agrocredito/agrocredito/internal/domain/model"
	"github.com/agrocredito/agrocredito/internal/domain/port"
	"github.com/agrocredito/agrocredito/internal/domain/valueobject"
)

// SubmitApplicationUseCase records a farmer's request for a financial
// product. The request stays PENDING until an advisor decides it.
type SubmitApplicationUseCase struct {
	appRepo    port.ApplicationRepository
	farmerRepo port.FarmerRepository
	simRepo    port.SimulationRepository
	publisher  port.EventPublisher
}

// NewSubmitApplicationUseCase wires dependencies.
func NewSubmitApplicationUseCase(
	appRepo port.ApplicationRepository,
	farmerRepo port.FarmerRepository,
	simRepo port.SimulationRepository,
	publisher port.EventPublisher,
) *SubmitApplicationUseCase {
	return &SubmitApplicationUseCase{
		appRepo:    appRepo,
		farmerRepo: farmerRepo,
		simRepo:    simRepo,
		publisher:  publisher,
	}
}

// Execute creates and persists the application.
func (uc *SubmitApplicationUseCase) Execute(
	ctx context.Context,
	req dto.SubmitApplicationRequest,
) (dto.ApplicationResponse, error) {
	now := time.Now().UTC()

	// 1. The applicant must be a registered farmer.
	if _, err := uc.farmerRepo.FindByID(ctx, req.FarmerID); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("find farmer: %w", err)
	}

	// 2. Build the aggregate for the requested product.
	product, err := valueobject.NewProductType(req.Product)
	if err != nil {
		return dto.ApplicationResponse{}, err
	}

	var app model.ProductApplication
	switch {
	case product.Equal(valueobject.ProductTypeCredit):
		if req.Credit == nil {
			return dto.ApplicationResponse{}, fmt.Errorf("credit details are required for product %s", product)
		}
		// A referenced simulation must exist and still be a quote.
		if req.Credit.SimulationID != "" {
			sim, err := uc.simRepo.FindByID(ctx, req.Credit.SimulationID)
			if err != nil {
				return dto.ApplicationResponse{}, fmt.Errorf("find simulation: %w", err)
			}
			if !sim.Status().Equal(valueobject.CreditStatusSimulated) {
				return dto.ApplicationResponse{}, fmt.Errorf("simulation %s is already %s", sim.ID(), sim.Status())
			}
		}
		app, err = model.NewCreditApplication(req.FarmerID, model.CreditDetails{
			SimulationID: req.Credit.SimulationID,
			Amount:       req.Credit.Amount,
			TermMonths:   req.Credit.TermMonths,
			Purpose:      req.Credit.Purpose,
		}, now)
		if err != nil {
			return dto.ApplicationResponse{}, fmt.Errorf("create application: %w", err)
		}

	case product.Equal(valueobject.ProductTypeSavingsAccount):
		if req.Savings == nil {
			return dto.ApplicationResponse{}, fmt.Errorf("savings details are required for product %s", product)
		}
		app, err = model.NewSavingsApplication(req.FarmerID, model.SavingsDetails{
			InitialDeposit: req.Savings.InitialDeposit,
		}, now)
		if err != nil {
			return dto.ApplicationResponse{}, fmt.Errorf("create application: %w", err)
		}

	case product.Equal(valueobject.ProductTypeInsurance):
		if req.Insurance == nil {
			return dto.ApplicationResponse{}, fmt.Errorf("insurance details are required for product %s", product)
		}
		policyType, err := valueobject.NewPolicyType(req.Insurance.PolicyType)
		if err != nil {
			return dto.ApplicationResponse{}, err
		}
		app, err = model.NewInsuranceApplication(req.FarmerID, model.InsuranceDetails{
			PolicyType: policyType,
			Coverage:   req.Insurance.Coverage,
		}, now)
		if err != nil {
			return dto.ApplicationResponse{}, fmt.Errorf("create application: %w", err)
		}
	}

	// 3. Persist.
	if err := uc.appRepo.Save(ctx, app); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("save application: %w", err)
	}

	// 4. Publish domain events.
	if err := uc.publisher.Publish(ctx, app.DomainEvents()...); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toApplicationResponse(app), nil
}

func toApplicationResponse(app model.ProductApplication) dto.ApplicationResponse {
	resp := dto.ApplicationResponse{
		ID:             app.ID(),
		FarmerID:       app.FarmerID(),
		Product:        app.Product().String(),
		Status:         app.Status().String(),
		DecidedBy:      app.DecidedBy(),
		DecisionReason: app.DecisionReason(),
		CreatedAt:      app.CreatedAt(),
		UpdatedAt:      app.UpdatedAt(),
	}
	if !app.DecidedAt().IsZero() {
		decidedAt := app.DecidedAt()
		resp.DecidedAt = &decidedAt
	}
	if credit, ok := app.CreditDetails(); ok {
		resp.Credit = &dto.CreditDetailsRequest{
			SimulationID: credit.SimulationID,
			Amount:       credit.Amount,
			TermMonths:   credit.TermMonths,
			Purpose:      credit.Purpose,
		}
	}
	if savings, ok := app.SavingsDetails(); ok {
		resp.Savings = &dto.SavingsDetailsRequest{InitialDeposit: savings.InitialDeposit}
	}
	if insurance, ok := app.InsuranceDetails(); ok {
		resp.Insurance = &dto.InsuranceDetailsRequest{
			PolicyType: insurance.PolicyType.String(),
			Coverage:   insurance.Coverage,
		}
	}
	return resp
}
