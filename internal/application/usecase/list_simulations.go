package usecase

import (
	"context"
	"fmt"

	"github.com/agrocredito/agrocredito/internal/application/dto"
	"github.com/agrocredito/agrocredito/internal/domain/model"
	"github.com/agrocredito/agrocredito/internal/domain/port"
)

// ListSimulationsUseCase lists persisted simulations, optionally narrowed to
// one farmer. Schedules are omitted from listings.
type ListSimulationsUseCase struct {
	simRepo port.SimulationRepository
}

// NewListSimulationsUseCase wires dependencies.
func NewListSimulationsUseCase(simRepo port.SimulationRepository) *ListSimulationsUseCase {
	return &ListSimulationsUseCase{simRepo: simRepo}
}

// Execute returns the matching simulations.
func (uc *ListSimulationsUseCase) Execute(
	ctx context.Context,
	req dto.ListSimulationsRequest,
) ([]dto.SimulationResponse, error) {
	var (
		sims []model.CreditSimulation
		err  error
	)
	if req.FarmerID != "" {
		sims, err = uc.simRepo.FindByFarmerID(ctx, req.FarmerID)
	} else {
		sims, err = uc.simRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list simulations: %w", err)
	}

	out := make([]dto.SimulationResponse, 0, len(sims))
	for _, sim := range sims {
		out = append(out, toSimulationResponse(sim, false))
	}
	return out, nil
}
