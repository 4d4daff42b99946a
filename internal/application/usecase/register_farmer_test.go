package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrocredito/agrocredito/internal/application/dto"
	"github.com/agrocredito/agrocredito/internal/application/usecase"
	"github.com/agrocredito/agrocredito/internal/domain/model"
)

func TestRegisterFarmer_Execute(t *testing.T) {
	req := dto.RegisterFarmerRequest{
		FullName: "María Rodríguez",
		Document: "CC-1020304050",
		Phone:    "+57 300 123 4567",
		Region:   "Huila",
	}

	t.Run("registers a new farmer", func(t *testing.T) {
		var saved model.Farmer
		farmerRepo := &mockFarmerRepo{
			saveFunc: func(_ context.Context, farmer model.Farmer) error {
				saved = farmer
				return nil
			},
		}
		publisher := &mockPublisher{}

		uc := usecase.NewRegisterFarmerUseCase(farmerRepo, publisher)

		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, "María Rodríguez", resp.FullName)
		assert.Equal(t, resp.ID, saved.ID())
		assert.Equal(t, []string{"credit.farmer.registered"}, publisher.eventTypes())
	})

	t.Run("rejects a duplicate document", func(t *testing.T) {
		existing, err := model.NewFarmer("Pedro Gómez", "CC-1020304050", "", "Huila", time.Now().UTC())
		require.NoError(t, err)

		farmerRepo := &mockFarmerRepo{
			findByDocumentFunc: func(_ context.Context, _ string) (model.Farmer, error) {
				return existing, nil
			},
		}

		uc := usecase.NewRegisterFarmerUseCase(farmerRepo, &mockPublisher{})

		_, err = uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, usecase.ErrDuplicateDocument)
	})

	t.Run("rejects a missing name", func(t *testing.T) {
		uc := usecase.NewRegisterFarmerUseCase(&mockFarmerRepo{}, &mockPublisher{})

		bad := req
		bad.FullName = ""
		_, err := uc.Execute(context.Background(), bad)
		assert.Error(t, err)
	})
}
