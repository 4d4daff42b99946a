package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/agrocredito/agrocredito/internal/application/dto"
	"github.com/agrocredito/agrocredito/internal/application/usecase"
	"github.com/agrocredito/agrocredito/internal/domain/port"
	"github.com/agrocredito/agrocredito/internal/domain/valueobject"
	"github.com/agrocredito/agrocredito/pkg/auth"
)

// ---------------------------------------------------------------------------
// CreditHandler exposes the credit operations over gRPC.
// ---------------------------------------------------------------------------

// CreditHandler is the gRPC handler for simulation, farmer and product operations.
type CreditHandler struct {
	UnimplementedCreditServiceServer

	simulate  *usecase.SimulateCreditUseCase
	save      *usecase.SaveSimulationUseCase
	get       *usecase.GetSimulationUseCase
	list      *usecase.ListSimulationsUseCase
	delete    *usecase.DeleteSimulationUseCase
	register  *usecase.RegisterFarmerUseCase
	farmers   *usecase.ListFarmersUseCase
	submit    *usecase.SubmitApplicationUseCase
	apps      *usecase.ListApplicationsUseCase
	decide    *usecase.DecideApplicationUseCase
	settle    *usecase.SettleCreditUseCase
	portfolio *usecase.PortfolioSummaryUseCase
}

// NewCreditHandler creates a new handler with all use-case dependencies.
func NewCreditHandler(
	simulate *usecase.SimulateCreditUseCase,
	save *usecase.SaveSimulationUseCase,
	get *usecase.GetSimulationUseCase,
	list *usecase.ListSimulationsUseCase,
	del *usecase.DeleteSimulationUseCase,
	register *usecase.RegisterFarmerUseCase,
	farmers *usecase.ListFarmersUseCase,
	submit *usecase.SubmitApplicationUseCase,
	apps *usecase.ListApplicationsUseCase,
	decide *usecase.DecideApplicationUseCase,
	settle *usecase.SettleCreditUseCase,
	portfolio *usecase.PortfolioSummaryUseCase,
) *CreditHandler {
	return &CreditHandler{
		simulate:  simulate,
		save:      save,
		get:       get,
		list:      list,
		delete:    del,
		register:  register,
		farmers:   farmers,
		submit:    submit,
		apps:      apps,
		decide:    decide,
		settle:    settle,
		portfolio: portfolio,
	}
}

// SimulateCredit computes a quote without persisting anything.
func (h *CreditHandler) SimulateCredit(
	ctx context.Context,
	req *SimulateCreditRequest,
) (*SimulateCreditResponse, error) {
	quote, err := h.simulate.Execute(ctx, *req)
	if err != nil {
		return nil, mapError(err)
	}
	return &quote, nil
}

// SaveSimulation persists a quote under a farmer's profile.
func (h *CreditHandler) SaveSimulation(
	ctx context.Context,
	req *SaveSimulationRequest,
) (*SaveSimulationResponse, error) {
	sim, err := h.save.Execute(ctx, *req)
	if err != nil {
		return nil, mapError(err)
	}
	return &sim, nil
}

// GetSimulation retrieves a saved simulation with its schedule.
func (h *CreditHandler) GetSimulation(
	ctx context.Context,
	req *GetSimulationRequest,
) (*GetSimulationResponse, error) {
	sim, err := h.get.Execute(ctx, *req)
	if err != nil {
		return nil, mapError(err)
	}
	return &sim, nil
}

// ListSimulations lists saved simulations, optionally filtered by farmer.
func (h *CreditHandler) ListSimulations(
	ctx context.Context,
	req *ListSimulationsRequest,
) (*ListSimulationsResponse, error) {
	sims, err := h.list.Execute(ctx, dto.ListSimulationsRequest{FarmerID: req.FarmerID})
	if err != nil {
		return nil, mapError(err)
	}
	return &ListSimulationsResponse{Simulations: sims}, nil
}

// DeleteSimulation removes a simulation that has not been activated.
func (h *CreditHandler) DeleteSimulation(
	ctx context.Context,
	req *DeleteSimulationRequest,
) (*DeleteSimulationResponse, error) {
	if err := h.delete.Execute(ctx, *req); err != nil {
		return nil, mapError(err)
	}
	return &DeleteSimulationResponse{Deleted: true}, nil
}

// RegisterFarmer creates a farmer profile.
func (h *CreditHandler) RegisterFarmer(
	ctx context.Context,
	req *RegisterFarmerRequest,
) (*RegisterFarmerResponse, error) {
	farmer, err := h.register.Execute(ctx, *req)
	if err != nil {
		return nil, mapError(err)
	}
	return &farmer, nil
}

// ListFarmers lists every registered farmer. Admin only.
func (h *CreditHandler) ListFarmers(
	ctx context.Context,
	_ *ListFarmersRequest,
) (*ListFarmersResponse, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	farmers, err := h.farmers.Execute(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return &ListFarmersResponse{Farmers: farmers}, nil
}

// SubmitApplication files a product application for a farmer.
func (h *CreditHandler) SubmitApplication(
	ctx context.Context,
	req *SubmitApplicationRequest,
) (*SubmitApplicationResponse, error) {
	app, err := h.submit.Execute(ctx, *req)
	if err != nil {
		return nil, mapError(err)
	}
	return &app, nil
}

// ListApplications lists applications by farmer, status, or all.
func (h *CreditHandler) ListApplications(
	ctx context.Context,
	req *ListApplicationsRequest,
) (*ListApplicationsResponse, error) {
	apps, err := h.apps.Execute(ctx, usecase.ListApplicationsRequest{
		FarmerID: req.FarmerID,
		Status:   req.Status,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &ListApplicationsResponse{Applications: apps}, nil
}

// DecideApplication approves or rejects a pending application. Admin only.
func (h *CreditHandler) DecideApplication(
	ctx context.Context,
	req *DecideApplicationRequest,
) (*DecideApplicationResponse, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	decision, err := h.decide.Execute(ctx, *req)
	if err != nil {
		return nil, mapError(err)
	}
	return &decision, nil
}

// SettleCredit marks an active credit as fully paid. Admin only.
func (h *CreditHandler) SettleCredit(
	ctx context.Context,
	req *SettleCreditRequest,
) (*SettleCreditResponse, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	sim, err := h.settle.Execute(ctx, *req)
	if err != nil {
		return nil, mapError(err)
	}
	return &sim, nil
}

// GetPortfolioSummary returns the dashboard headline figures. Admin only.
func (h *CreditHandler) GetPortfolioSummary(
	ctx context.Context,
	_ *PortfolioSummaryRequest,
) (*PortfolioSummaryResponse, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	summary, err := h.portfolio.Execute(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return &summary, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// requireAdmin rejects callers whose token lacks the admin role.
func requireAdmin(ctx context.Context) error {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return status.Error(codes.Unauthenticated, "missing authentication claims")
	}
	if !claims.HasRole(auth.RoleAdmin) {
		return status.Error(codes.PermissionDenied, "admin role required")
	}
	return nil
}

// mapError translates domain errors into gRPC status codes.
func mapError(err error) error {
	var validationErrs *valueobject.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		return status.Error(codes.InvalidArgument, validationErrs.Error())
	case errors.Is(err, valueobject.ErrInvalidSimulationInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, port.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, valueobject.ErrInvalidStatusTransition):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, usecase.ErrDuplicateDocument):
		return status.Error(codes.AlreadyExists, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
