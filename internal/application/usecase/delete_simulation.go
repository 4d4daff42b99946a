package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/agrocredito/agrocredito/internal/application/dto"
	"github.com/agrocredito/agrocredito/internal/domain/port"
	"github.com/agrocredito/agrocredito/internal/domain/valueobject"
)

// DeleteSimulationUseCase removes a saved simulation. Only quotes that never
// became live credits can be deleted.
type DeleteSimulationUseCase struct {
	simRepo port.SimulationRepository
}

// NewDeleteSimulationUseCase wires dependencies.
func NewDeleteSimulationUseCase(simRepo port.SimulationRepository) *DeleteSimulationUseCase {
	return &DeleteSimulationUseCase{simRepo: simRepo}
}

// Execute deletes the simulation by ID.
func (uc *DeleteSimulationUseCase) Execute(ctx context.Context, req dto.DeleteSimulationRequest) error {
	sim, err := uc.simRepo.FindByID(ctx, req.SimulationID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			// Deleting an absent simulation is a no-op.
			return nil
		}
		return fmt.Errorf("find simulation: %w", err)
	}

	if !sim.Status().Equal(valueobject.CreditStatusSimulated) {
		return fmt.Errorf("simulation %s is %s: %w", sim.ID(), sim.Status(), valueobject.ErrInvalidStatusTransition)
	}

	if err := uc.simRepo.Delete(ctx, req.SimulationID); err != nil {
		return fmt.Errorf("delete simulation: %w", err)
	}
	return nil
}
