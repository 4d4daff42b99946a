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

func TestSubmitApplication_Execute(t *testing.T) {
	t.Run("submits a credit application linked to a simulation", func(t *testing.T) {
		crop, err := valueobject.NewCropType("CAFE", "")
		require.NoError(t, err)
		sim, err := model.NewCreditSimulation(
			"farmer-1", crop,
			decimal.NewFromInt(5), decimal.NewFromInt(20),
			decimal.NewFromInt(10_000_000), 24, decimal.NewFromFloat(1.39),
			time.Now().UTC(),
		)
		require.NoError(t, err)

		simRepo := &mockSimulationRepo{
			findByIDFunc: func(_ context.Context, id string) (model.CreditSimulation, error) {
				if id == sim.ID() {
					return sim, nil
				}
				return model.CreditSimulation{}, port.ErrNotFound
			},
		}
		publisher := &mockPublisher{}

		uc := usecase.NewSubmitApplicationUseCase(
			&mockApplicationRepo{}, registeredFarmerRepo(t, "farmer-1"), simRepo, publisher,
		)

		resp, err := uc.Execute(context.Background(), dto.SubmitApplicationRequest{
			FarmerID: "farmer-1",
			Product:  "CREDIT",
			Credit: &dto.CreditDetailsRequest{
				SimulationID: sim.ID(),
				Amount:       decimal.NewFromInt(10_000_000),
				TermMonths:   24,
				Purpose:      "Renovación de cafetales",
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "PENDING", resp.Status)
		require.NotNil(t, resp.Credit)
		assert.Equal(t, sim.ID(), resp.Credit.SimulationID)
		assert.Equal(t, []string{"credit.application.submitted"}, publisher.eventTypes())
	})

	t.Run("rejects a credit application referencing an activated simulation", func(t *testing.T) {
		crop, err := valueobject.NewCropType("CAFE", "")
		require.NoError(t, err)
		sim, err := model.NewCreditSimulation(
			"farmer-1", crop,
			decimal.NewFromInt(5), decimal.NewFromInt(20),
			decimal.NewFromInt(10_000_000), 24, decimal.NewFromFloat(1.39),
			time.Now().UTC(),
		)
		require.NoError(t, err)
		active, err := sim.Activate(valueobject.PlanTypeSemilla, time.Now().UTC())
		require.NoError(t, err)

		simRepo := &mockSimulationRepo{
			findByIDFunc: func(_ context.Context, _ string) (model.CreditSimulation, error) {
				return active, nil
			},
		}

		uc := usecase.NewSubmitApplicationUseCase(
			&mockApplicationRepo{}, registeredFarmerRepo(t, "farmer-1"), simRepo, &mockPublisher{},
		)

		_, err = uc.Execute(context.Background(), dto.SubmitApplicationRequest{
			FarmerID: "farmer-1",
			Product:  "CREDIT",
			Credit: &dto.CreditDetailsRequest{
				SimulationID: active.ID(),
				Amount:       decimal.NewFromInt(10_000_000),
				TermMonths:   24,
			},
		})
		assert.Error(t, err)
	})

	t.Run("submits savings and insurance applications", func(t *testing.T) {
		uc := usecase.NewSubmitApplicationUseCase(
			&mockApplicationRepo{}, registeredFarmerRepo(t, "farmer-1"), &mockSimulationRepo{}, &mockPublisher{},
		)

		savings, err := uc.Execute(context.Background(), dto.SubmitApplicationRequest{
			FarmerID: "farmer-1",
			Product:  "SAVINGS_ACCOUNT",
			Savings:  &dto.SavingsDetailsRequest{InitialDeposit: decimal.NewFromInt(200_000)},
		})
		require.NoError(t, err)
		assert.Equal(t, "SAVINGS_ACCOUNT", savings.Product)

		insurance, err := uc.Execute(context.Background(), dto.SubmitApplicationRequest{
			FarmerID: "farmer-1",
			Product:  "INSURANCE",
			Insurance: &dto.InsuranceDetailsRequest{
				PolicyType: "CULTIVO",
				Coverage:   decimal.NewFromInt(10_000_000),
			},
		})
		require.NoError(t, err)
		require.NotNil(t, insurance.Insurance)
		assert.Equal(t, "CULTIVO", insurance.Insurance.PolicyType)
	})

	t.Run("rejects a product without its detail block", func(t *testing.T) {
		uc := usecase.NewSubmitApplicationUseCase(
			&mockApplicationRepo{}, registeredFarmerRepo(t, "farmer-1"), &mockSimulationRepo{}, &mockPublisher{},
		)

		_, err := uc.Execute(context.Background(), dto.SubmitApplicationRequest{
			FarmerID: "farmer-1",
			Product:  "CREDIT",
		})
		assert.Error(t, err)
	})

	t.Run("rejects an unknown product", func(t *testing.T) {
		uc := usecase.NewSubmitApplicationUseCase(
			&mockApplicationRepo{}, registeredFarmerRepo(t, "farmer-1"), &mockSimulationRepo{}, &mockPublisher{},
		)

		_, err := uc.Execute(context.Background(), dto.SubmitApplicationRequest{
			FarmerID: "farmer-1",
			Product:  "MORTGAGE",
		})
		assert.Error(t, err)
	})

	t.Run("rejects an unregistered farmer", func(t *testing.T) {
		uc := usecase.NewSubmitApplicationUseCase(
			&mockApplicationRepo{}, &mockFarmerRepo{}, &mockSimulationRepo{}, &mockPublisher{},
		)

		_, err := uc.Execute(context.Background(), dto.SubmitApplicationRequest{
			FarmerID: "ghost",
			Product:  "CREDIT",
			Credit: &dto.CreditDetailsRequest{
				Amount:     decimal.NewFromInt(1_000_000),
				TermMonths: 12,
			},
		})
		assert.ErrorIs(t, err, port.ErrNotFound)
	})
}
