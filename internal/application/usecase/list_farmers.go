package usecase

import (
	"context"
	"fmt"

	"github.com/agrocredito/agrocredito/internal/application/dto"
	"github.com/agrocredito/agrocredito/internal/domain/port"
)

// ListFarmersUseCase lists every registered farmer for the admin dashboard.
type ListFarmersUseCase struct {
	farmerRepo port.FarmerRepository
}

// NewListFarmersUseCase wires dependencies.
func NewListFarmersUseCase(farmerRepo port.FarmerRepository) *ListFarmersUseCase {
	return &ListFarmersUseCase{farmerRepo: farmerRepo}
}

// Execute returns all farmer profiles.
func (uc *ListFarmersUseCase) Execute(ctx context.Context) ([]dto.FarmerResponse, error) {
	farmers, err := uc.farmerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list farmers: %w", err)
	}

	out := make([]dto.FarmerResponse, 0, len(farmers))
	for _, f := range farmers {
		out = append(out, toFarmerResponse(f))
	}
	return out, nil
}
