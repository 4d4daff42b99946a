package usecase

import (
	"context"
	"fmt"

	"github.com/agrocredito/agrocredito/internal/application/dto"
	"github.com/agrocredito/agrocredito/internal/domain/port"
)

// GetSimulationUseCase retrieves a single persisted simulation with its full
// amortization schedule.
type GetSimulationUseCase struct {
	simRepo port.SimulationRepository
}

// NewGetSimulationUseCase wires dependencies.
func NewGetSimulationUseCase(simRepo port.SimulationRepository) *GetSimulationUseCase {
	return &GetSimulationUseCase{simRepo: simRepo}
}

// Execute fetches the simulation by ID.
func (uc *GetSimulationUseCase) Execute(
	ctx context.Context,
	req dto.GetSimulationRequest,
) (dto.SimulationResponse, error) {
	sim, err := uc.simRepo.FindByID(ctx, req.SimulationID)
	if err != nil {
		return dto.SimulationResponse{}, fmt.Errorf("find simulation: %w", err)
	}
	return toSimulationResponse(sim, true), nil
}
