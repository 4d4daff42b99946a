package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/agrocredito/agrocredito/internal/application/dto"
	"github.com/agrocredito/agrocredito/internal/domain/port"
	"github.com/agrocredito/agrocredito/internal/domain/valueobject"
)

// PortfolioSummaryUseCase aggregates headline figures for the admin
// dashboard.
type PortfolioSummaryUseCase struct {
	simRepo    port.SimulationRepository
	appRepo    port.ApplicationRepository
	farmerRepo port.FarmerRepository
}

// NewPortfolioSummaryUseCase wires dependencies.
func NewPortfolioSummaryUseCase(
	simRepo port.SimulationRepository,
	appRepo port.ApplicationRepository,
	farmerRepo port.FarmerRepository,
) *PortfolioSummaryUseCase {
	return &PortfolioSummaryUseCase{
		simRepo:    simRepo,
		appRepo:    appRepo,
		farmerRepo: farmerRepo,
	}
}

// Execute computes the summary over the whole portfolio.
func (uc *PortfolioSummaryUseCase) Execute(ctx context.Context) (dto.PortfolioSummaryResponse, error) {
	sims, err := uc.simRepo.List(ctx)
	if err != nil {
		return dto.PortfolioSummaryResponse{}, fmt.Errorf("list simulations: %w", err)
	}

	resp := dto.PortfolioSummaryResponse{
		TotalSimulations: len(sims),
		ActivePrincipal:  decimal.Zero,
	}
	for _, sim := range sims {
		switch {
		case sim.Status().Equal(valueobject.CreditStatusActive):
			resp.ActiveCredits++
			resp.ActivePrincipal = resp.ActivePrincipal.Add(sim.Amount())
		case sim.Status().Equal(valueobject.CreditStatusPaid):
			resp.PaidCredits++
		}
	}

	pending, err := uc.appRepo.FindByStatus(ctx, valueobject.ApplicationStatusPending)
	if err != nil {
		return dto.PortfolioSummaryResponse{}, fmt.Errorf("list pending applications: %w", err)
	}
	resp.PendingApplications = len(pending)

	farmers, err := uc.farmerRepo.List(ctx)
	if err != nil {
		return dto.PortfolioSummaryResponse{}, fmt.Errorf("list farmers: %w", err)
	}
	resp.RegisteredFarmers = len(farmers)

	return resp, nil
}
