package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/agrocredito/agrocredito/internal/application/dto"
	"github.com/agrocredito/agrocredito/internal/domain/port"
)

// SettleCreditUseCase marks an active credit as fully repaid.
type SettleCreditUseCase struct {
	simRepo   port.SimulationRepository
	publisher port.EventPublisher
}

// NewSettleCreditUseCase wires dependencies.
func NewSettleCreditUseCase(simRepo port.SimulationRepository, publisher port.EventPublisher) *SettleCreditUseCase {
	return &SettleCreditUseCase{simRepo: simRepo, publisher: publisher}
}

// Execute transitions the credit to PAID.
func (uc *SettleCreditUseCase) Execute(
	ctx context.Context,
	req dto.GetSimulationRequest,
) (dto.SimulationResponse, error) {
	now := time.Now().UTC()

	sim, err := uc.simRepo.FindByID(ctx, req.SimulationID)
	if err != nil {
		return dto.SimulationResponse{}, fmt.Errorf("find credit: %w", err)
	}

	sim, err = sim.MarkPaid(now)
	if err != nil {
		return dto.SimulationResponse{}, fmt.Errorf("mark paid: %w", err)
	}

	if err := uc.simRepo.Save(ctx, sim); err != nil {
		return dto.SimulationResponse{}, fmt.Errorf("save credit: %w", err)
	}

	if err := uc.publisher.Publish(ctx, sim.DomainEvents()...); err != nil {
		return dto.SimulationResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toSimulationResponse(sim, false), nil
}
