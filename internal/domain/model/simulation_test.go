package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrocredito/agrocredito/internal/domain/model"
	"github.com/agrocredito/agrocredito/internal/domain/valueobject"
)

func newTestSimulation(t *testing.T) model.CreditSimulation {
	t.Helper()
	crop, err := valueobject.NewCropType("CAFE", "")
	require.NoError(t, err)

	sim, err := model.NewCreditSimulation(
		"farmer-1",
		crop,
		decimal.NewFromInt(5),
		decimal.NewFromInt(20),
		decimal.NewFromInt(10_000_000),
		24,
		decimal.NewFromFloat(1.39),
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return sim
}

func TestNewCreditSimulation(t *testing.T) {
	t.Run("starts simulated with a full schedule", func(t *testing.T) {
		sim := newTestSimulation(t)

		assert.NotEmpty(t, sim.ID())
		assert.True(t, valueobject.CreditStatusSimulated.Equal(sim.Status()))
		assert.Equal(t, 1, sim.Version())
		assert.Len(t, sim.Schedule(), 24)
		assert.True(t, sim.Plan().IsZero())

		events := sim.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "credit.simulation.saved", events[0].EventType())
	})

	t.Run("requires a farmer", func(t *testing.T) {
		crop, err := valueobject.NewCropType("CAFE", "")
		require.NoError(t, err)

		_, err = model.NewCreditSimulation(
			"", crop,
			decimal.NewFromInt(5), decimal.NewFromInt(20),
			decimal.NewFromInt(10_000_000), 24, decimal.NewFromFloat(1.39),
			time.Now().UTC(),
		)
		assert.Error(t, err)
	})

	t.Run("rejects invalid amortization inputs", func(t *testing.T) {
		crop, err := valueobject.NewCropType("CAFE", "")
		require.NoError(t, err)

		_, err = model.NewCreditSimulation(
			"farmer-1", crop,
			decimal.NewFromInt(5), decimal.NewFromInt(20),
			decimal.Zero, 24, decimal.NewFromFloat(1.39),
			time.Now().UTC(),
		)
		assert.ErrorIs(t, err, valueobject.ErrInvalidSimulationInput)
	})
}

func TestCreditSimulation_Activate(t *testing.T) {
	t.Run("moves simulated to active and records the plan", func(t *testing.T) {
		sim := newTestSimulation(t).ClearEvents()

		active, err := sim.Activate(valueobject.PlanTypeSemilla, time.Now().UTC())
		require.NoError(t, err)

		assert.True(t, valueobject.CreditStatusActive.Equal(active.Status()))
		assert.True(t, valueobject.PlanTypeSemilla.Equal(active.Plan()))
		// The version only moves on save, where the store bumps it.
		assert.Equal(t, sim.Version(), active.Version())

		// The original value is untouched.
		assert.True(t, valueobject.CreditStatusSimulated.Equal(sim.Status()))

		events := active.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "credit.simulation.activated", events[0].EventType())
	})

	t.Run("rejects activating twice", func(t *testing.T) {
		sim := newTestSimulation(t)
		active, err := sim.Activate(valueobject.PlanTypeSemilla, time.Now().UTC())
		require.NoError(t, err)

		_, err = active.Activate(valueobject.PlanTypeRaiz, time.Now().UTC())
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})
}

func TestCreditSimulation_MarkPaid(t *testing.T) {
	t.Run("moves active to paid", func(t *testing.T) {
		sim := newTestSimulation(t)
		active, err := sim.Activate(valueobject.PlanTypeCosecha, time.Now().UTC())
		require.NoError(t, err)
		active = active.ClearEvents()

		paid, err := active.MarkPaid(time.Now().UTC())
		require.NoError(t, err)

		assert.True(t, valueobject.CreditStatusPaid.Equal(paid.Status()))
		events := paid.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "credit.simulation.paid", events[0].EventType())
	})

	t.Run("rejects settling a simulation that was never activated", func(t *testing.T) {
		sim := newTestSimulation(t)
		_, err := sim.MarkPaid(time.Now().UTC())
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})
}

func TestCreditSimulation_Schedule(t *testing.T) {
	t.Run("returns a defensive copy", func(t *testing.T) {
		sim := newTestSimulation(t)

		schedule := sim.Schedule()
		schedule[0].Payment = decimal.NewFromInt(-1)

		assert.False(t, sim.Schedule()[0].Payment.Equal(decimal.NewFromInt(-1)))
	})
}
