package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agrocredito/agrocredito/internal/application/dto"
	"github.com/agrocredito/agrocredito/internal/domain/model"
	"github.com/agrocredito/agrocredito/internal/domain/port"
)

// ErrDuplicateDocument is returned when a farmer with the same document
// already exists.
var ErrDuplicateDocument = errors.New("a farmer with this document already exists")

// RegisterFarmerUseCase creates a farmer profile.
type RegisterFarmerUseCase struct {
	farmerRepo port.FarmerRepository
	publisher  port.EventPublisher
}

// NewRegisterFarmerUseCase wires dependencies.
func NewRegisterFarmerUseCase(farmerRepo port.FarmerRepository, publisher port.EventPublisher) *RegisterFarmerUseCase {
	return &RegisterFarmerUseCase{farmerRepo: farmerRepo, publisher: publisher}
}

// Execute registers the farmer, rejecting duplicate documents.
func (uc *RegisterFarmerUseCase) Execute(
	ctx context.Context,
	req dto.RegisterFarmerRequest,
) (dto.FarmerResponse, error) {
	now := time.Now().UTC()

	// 1. Documents are unique across the institution.
	_, err := uc.farmerRepo.FindByDocument(ctx, req.Document)
	switch {
	case err == nil:
		return dto.FarmerResponse{}, ErrDuplicateDocument
	case !errors.Is(err, port.ErrNotFound):
		return dto.FarmerResponse{}, fmt.Errorf("check document: %w", err)
	}

	// 2. Create the aggregate.
	farmer, err := model.NewFarmer(req.FullName, req.Document, req.Phone, req.Region, now)
	if err != nil {
		return dto.FarmerResponse{}, fmt.Errorf("create farmer: %w", err)
	}

	// 3. Persist.
	if err := uc.farmerRepo.Save(ctx, farmer); err != nil {
		return dto.FarmerResponse{}, fmt.Errorf("save farmer: %w", err)
	}

	// 4. Publish domain events.
	if err := uc.publisher.Publish(ctx, farmer.DomainEvents()...); err != nil {
		return dto.FarmerResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toFarmerResponse(farmer), nil
}

func toFarmerResponse(farmer model.Farmer) dto.FarmerResponse {
	return dto.FarmerResponse{
		ID:        farmer.ID(),
		FullName:  farmer.FullName(),
		Document:  farmer.Document(),
		Phone:     farmer.Phone(),
		Region:    farmer.Region(),
		CreatedAt: farmer.CreatedAt(),
		UpdatedAt: farmer.UpdatedAt(),
	}
}
