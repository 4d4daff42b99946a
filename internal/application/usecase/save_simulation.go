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

// SaveSimulationUseCase runs a quote and persists it under a farmer's
// profile, so the farmer can later attach it to a credit application.
type SaveSimulationUseCase struct {
	simulate   *SimulateCreditUseCase
	simRepo    port.SimulationRepository
	farmerRepo port.FarmerRepository
	publisher  port.EventPublisher
}

// NewSaveSimulationUseCase wires dependencies.
func NewSaveSimulationUseCase(
	simulate *SimulateCreditUseCase,
	simRepo port.SimulationRepository,
	farmerRepo port.FarmerRepository,
	publisher port.EventPublisher,
) *SaveSimulationUseCase {
	return &SaveSimulationUseCase{
		simulate:   simulate,
		simRepo:    simRepo,
		farmerRepo: farmerRepo,
		publisher:  publisher,
	}
}

// Execute validates, computes, and persists a simulation.
func (uc *SaveSimulationUseCase) Execute(
	ctx context.Context,
	req dto.SaveSimulationRequest,
) (dto.SimulationResponse, error) {
	now := time.Now().UTC()

	// 1. The simulation must belong to a registered farmer.
	if _, err := uc.farmerRepo.FindByID(ctx, req.FarmerID); err != nil {
		return dto.SimulationResponse{}, fmt.Errorf("find farmer: %w", err)
	}

	// 2. Validate and compute the quote.
	quote, err := uc.simulate.Execute(ctx, req.SimulateCreditRequest)
	if err != nil {
		return dto.SimulationResponse{}, err
	}

	// 3. Build the aggregate from the quoted figures.
	crop, err := valueobject.NewCropType(quote.Crop, quote.CustomCropName)
	if err != nil {
		return dto.SimulationResponse{}, fmt.Errorf("parse crop: %w", err)
	}
	sim, err := model.NewCreditSimulation(
		req.FarmerID, crop, req.Hectares, req.MonthlyYield,
		req.Amount, req.TermMonths, quote.AppliedRate, now,
	)
	if err != nil {
		return dto.SimulationResponse{}, fmt.Errorf("create simulation: %w", err)
	}

	// 4. Persist.
	if err := uc.simRepo.Save(ctx, sim); err != nil {
		return dto.SimulationResponse{}, fmt.Errorf("save simulation: %w", err)
	}

	// 5. Publish domain events.
	if err := uc.publisher.Publish(ctx, sim.DomainEvents()...); err != nil {
		return dto.SimulationResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toSimulationResponse(sim, true), nil
}

func toSimulationResponse(sim model.CreditSimulation, withSchedule bool) dto.SimulationResponse {
	resp := dto.SimulationResponse{
		ID:             sim.ID(),
		FarmerID:       sim.FarmerID(),
		Crop:           sim.Crop().String(),
		CustomCropName: sim.Crop().CustomName(),
		Hectares:       sim.Hectares(),
		MonthlyYield:   sim.ExpectedYield(),
		Amount:         sim.Amount(),
		TermMonths:     sim.TermMonths(),
		MonthlyRate:    sim.MonthlyRate(),
		MonthlyPayment: sim.MonthlyPayment(),
		TotalInterest:  sim.TotalInterest(),
		TotalPayment:   sim.TotalPayment(),
		Status:         sim.Status().String(),
		Plan:           sim.Plan().String(),
		CreatedAt:      sim.CreatedAt(),
		UpdatedAt:      sim.UpdatedAt(),
	}
	if withSchedule {
		resp.Schedule = toScheduleResponse(sim.Schedule())
	}
	return resp
}
