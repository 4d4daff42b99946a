package usecase

import (
	"context"
	"fmt"

	"github.com/agrocredito/agrocredito/internal/application/dto"
	"github.com/agrocredito/agrocredito/internal/domain/model"
	"github.com/agrocredito/agrocredito/internal/domain/port"
	"github.com/agrocredito/agrocredito/internal/domain/valueobject"
)

// ListApplicationsRequest narrows the application listing.
type ListApplicationsRequest struct {
	FarmerID string
	Status   string
}

// ListApplicationsUseCase lists product applications for the advisor
// dashboard.
type ListApplicationsUseCase struct {
	appRepo port.ApplicationRepository
}

// NewListApplicationsUseCase wires dependencies.
func NewListApplicationsUseCase(appRepo port.ApplicationRepository) *ListApplicationsUseCase {
	return &ListApplicationsUseCase{appRepo: appRepo}
}

// Execute returns the matching applications.
func (uc *ListApplicationsUseCase) Execute(
	ctx context.Context,
	req ListApplicationsRequest,
) ([]dto.ApplicationResponse, error) {
	var (
		apps []model.ProductApplication
		err  error
	)
	switch {
	case req.FarmerID != "":
		apps, err = uc.appRepo.FindByFarmerID(ctx, req.FarmerID)
	case req.Status != "":
		var status valueobject.ApplicationStatus
		status, err = valueobject.NewApplicationStatus(req.Status)
		if err != nil {
			return nil, err
		}
		apps, err = uc.appRepo.FindByStatus(ctx, status)
	default:
		apps, err = uc.appRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	out := make([]dto.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, toApplicationResponse(app))
	}
	return out, nil
}
