package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrocredito/agrocredito/internal/application/dto"
	"github.com/agrocredito/agrocredito/internal/application/usecase"
	"github.com/agrocredito/agrocredito/internal/domain/model"
	"github.com/agrocredito/agrocredito/internal/domain/port"
	"github.com/agrocredito/agrocredito/internal/domain/valueobject"
)

func quotedSimulation(t *testing.T, farmerID string) model.CreditSimulation {
	t.Helper()
	crop, err := valueobject.NewCropType("CAFE", "")
	require.NoError(t, err)
	sim, err := model.NewCreditSimulation(
		farmerID, crop,
		decimal.NewFromInt(5), decimal.NewFromInt(20),
		decimal.NewFromInt(10_000_000), 24, decimal.NewFromFloat(1.39),
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return sim.ClearEvents()
}

func TestDeleteSimulation_Execute(t *testing.T) {
	t.Run("deletes a quote", func(t *testing.T) {
		sim := quotedSimulation(t, "farmer-1")
		deleted := ""
		simRepo := &mockSimulationRepo{
			findByIDFunc: func(_ context.Context, _ string) (model.CreditSimulation, error) {
				return sim, nil
			},
			deleteFunc: func(_ context.Context, id string) error {
				deleted = id
				return nil
			},
		}

		uc := usecase.NewDeleteSimulationUseCase(simRepo)
		err := uc.Execute(context.Background(), dto.DeleteSimulationRequest{SimulationID: sim.ID()})
		require.NoError(t, err)
		assert.Equal(t, sim.ID(), deleted)
	})

	t.Run("deleting an absent simulation is a no-op", func(t *testing.T) {
		uc := usecase.NewDeleteSimulationUseCase(&mockSimulationRepo{})
		err := uc.Execute(context.Background(), dto.DeleteSimulationRequest{SimulationID: "missing"})
		assert.NoError(t, err)
	})

	t.Run("refuses to delete a live credit", func(t *testing.T) {
		sim := quotedSimulation(t, "farmer-1")
		active, err := sim.Activate(valueobject.PlanTypeSemilla, time.Now().UTC())
		require.NoError(t, err)

		simRepo := &mockSimulationRepo{
			findByIDFunc: func(_ context.Context, _ string) (model.CreditSimulation, error) {
				return active, nil
			},
		}

		uc := usecase.NewDeleteSimulationUseCase(simRepo)
		err = uc.Execute(context.Background(), dto.DeleteSimulationRequest{SimulationID: active.ID()})
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})
}

func TestSettleCredit_Execute(t *testing.T) {
	t.Run("settles an active credit", func(t *testing.T) {
		sim := quotedSimulation(t, "farmer-1")
		active, err := sim.Activate(valueobject.PlanTypeCosecha, time.Now().UTC())
		require.NoError(t, err)
		active = active.ClearEvents()

		var saved model.CreditSimulation
		simRepo := &mockSimulationRepo{
			findByIDFunc: func(_ context.Context, _ string) (model.CreditSimulation, error) {
				return active, nil
			},
			saveFunc: func(_ context.Context, s model.CreditSimulation) error {
				saved = s
				return nil
			},
		}
		publisher := &mockPublisher{}

		uc := usecase.NewSettleCreditUseCase(simRepo, publisher)
		resp, err := uc.Execute(context.Background(), dto.GetSimulationRequest{SimulationID: active.ID()})
		require.NoError(t, err)

		assert.Equal(t, "PAID", resp.Status)
		assert.True(t, valueobject.CreditStatusPaid.Equal(saved.Status()))
		assert.Equal(t, []string{"credit.simulation.paid"}, publisher.eventTypes())
	})

	t.Run("refuses to settle a quote", func(t *testing.T) {
		sim := quotedSimulation(t, "farmer-1")
		simRepo := &mockSimulationRepo{
			findByIDFunc: func(_ context.Context, _ string) (model.CreditSimulation, error) {
				return sim, nil
			},
		}

		uc := usecase.NewSettleCreditUseCase(simRepo, &mockPublisher{})
		_, err := uc.Execute(context.Background(), dto.GetSimulationRequest{SimulationID: sim.ID()})
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})
}

func TestPortfolioSummary_Execute(t *testing.T) {
	simulated := quotedSimulation(t, "farmer-1")

	active1, err := quotedSimulation(t, "farmer-1").Activate(valueobject.PlanTypeSemilla, time.Now().UTC())
	require.NoError(t, err)
	active2, err := quotedSimulation(t, "farmer-2").Activate(valueobject.PlanTypeRaiz, time.Now().UTC())
	require.NoError(t, err)

	paid, err := active2.MarkPaid(time.Now().UTC())
	require.NoError(t, err)

	simRepo := &mockSimulationRepo{
		listFunc: func(_ context.Context) ([]model.CreditSimulation, error) {
			return []model.CreditSimulation{simulated, active1, paid}, nil
		},
	}

	pendingApp, err := model.NewSavingsApplication("farmer-1", model.SavingsDetails{
		InitialDeposit: decimal.NewFromInt(100_000),
	}, time.Now().UTC())
	require.NoError(t, err)
	appRepo := &mockApplicationRepo{
		findByStatusFunc: func(_ context.Context, status valueobject.ApplicationStatus) ([]model.ProductApplication, error) {
			require.True(t, valueobject.ApplicationStatusPending.Equal(status))
			return []model.ProductApplication{pendingApp}, nil
		},
	}

	farmer, err := model.NewFarmer("María Rodríguez", "CC-1", "", "Huila", time.Now().UTC())
	require.NoError(t, err)
	farmerRepo := &mockFarmerRepo{
		listFunc: func(_ context.Context) ([]model.Farmer, error) {
			return []model.Farmer{farmer}, nil
		},
	}

	uc := usecase.NewPortfolioSummaryUseCase(simRepo, appRepo, farmerRepo)
	summary, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalSimulations)
	assert.Equal(t, 1, summary.ActiveCredits)
	assert.Equal(t, 1, summary.PaidCredits)
	assert.True(t, decimal.NewFromInt(10_000_000).Equal(summary.ActivePrincipal))
	assert.Equal(t, 1, summary.PendingApplications)
	assert.Equal(t, 1, summary.RegisteredFarmers)
}

func TestListSimulations_Execute(t *testing.T) {
	mine := quotedSimulation(t, "farmer-1")
	other := quotedSimulation(t, "farmer-2")

	simRepo := &mockSimulationRepo{
		findByFarmerIDFunc: func(_ context.Context, farmerID string) ([]model.CreditSimulation, error) {
			if farmerID == "farmer-1" {
				return []model.CreditSimulation{mine}, nil
			}
			return nil, nil
		},
		listFunc: func(_ context.Context) ([]model.CreditSimulation, error) {
			return []model.CreditSimulation{mine, other}, nil
		},
	}

	uc := usecase.NewListSimulationsUseCase(simRepo)

	t.Run("filters by farmer", func(t *testing.T) {
		sims, err := uc.Execute(context.Background(), dto.ListSimulationsRequest{FarmerID: "farmer-1"})
		require.NoError(t, err)
		require.Len(t, sims, 1)
		assert.Equal(t, mine.ID(), sims[0].ID)
		assert.Empty(t, sims[0].Schedule, "listings omit schedules")
	})

	t.Run("lists everything without a filter", func(t *testing.T) {
		sims, err := uc.Execute(context.Background(), dto.ListSimulationsRequest{})
		require.NoError(t, err)
		assert.Len(t, sims, 2)
	})
}

func TestGetSimulation_Execute(t *testing.T) {
	sim := quotedSimulation(t, "farmer-1")
	simRepo := &mockSimulationRepo{
		findByIDFunc: func(_ context.Context, id string) (model.CreditSimulation, error) {
			if id == sim.ID() {
				return sim, nil
			}
			return model.CreditSimulation{}, port.ErrNotFound
		},
	}

	uc := usecase.NewGetSimulationUseCase(simRepo)

	t.Run("returns the simulation with its schedule", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), dto.GetSimulationRequest{SimulationID: sim.ID()})
		require.NoError(t, err)
		assert.Equal(t, sim.ID(), resp.ID)
		assert.Len(t, resp.Schedule, 24)
	})

	t.Run("unknown simulation", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), dto.GetSimulationRequest{SimulationID: "missing"})
		assert.ErrorIs(t, err, port.ErrNotFound)
	})
}

func TestListApplications_Execute(t *testing.T) {
	app, err := model.NewSavingsApplication("farmer-1", model.SavingsDetails{
		InitialDeposit: decimal.NewFromInt(100_000),
	}, time.Now().UTC())
	require.NoError(t, err)

	appRepo := &mockApplicationRepo{
		findByFarmerIDFunc: func(_ context.Context, farmerID string) ([]model.ProductApplication, error) {
			if farmerID == "farmer-1" {
				return []model.ProductApplication{app}, nil
			}
			return nil, nil
		},
		findByStatusFunc: func(_ context.Context, status valueobject.ApplicationStatus) ([]model.ProductApplication, error) {
			if valueobject.ApplicationStatusPending.Equal(status) {
				return []model.ProductApplication{app}, nil
			}
			return nil, nil
		},
		listFunc: func(_ context.Context) ([]model.ProductApplication, error) {
			return []model.ProductApplication{app}, nil
		},
	}

	uc := usecase.NewListApplicationsUseCase(appRepo)

	t.Run("by farmer", func(t *testing.T) {
		apps, err := uc.Execute(context.Background(), usecase.ListApplicationsRequest{FarmerID: "farmer-1"})
		require.NoError(t, err)
		assert.Len(t, apps, 1)
	})

	t.Run("by status", func(t *testing.T) {
		apps, err := uc.Execute(context.Background(), usecase.ListApplicationsRequest{Status: "PENDING"})
		require.NoError(t, err)
		assert.Len(t, apps, 1)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), usecase.ListApplicationsRequest{Status: "OPEN"})
		assert.Error(t, err)
	})

	t.Run("all", func(t *testing.T) {
		apps, err := uc.Execute(context.Background(), usecase.ListApplicationsRequest{})
		require.NoError(t, err)
		assert.Len(t, apps, 1)
	})
}
