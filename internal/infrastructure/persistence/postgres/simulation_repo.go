package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/agrocredito/agrocredito/internal/domain/model"
	"github.com/agrocredito/agrocredito/internal/domain/valueobject"
	pkgpostgres "github.com/agrocredito/agrocredito/pkg/postgres"
)

// SimulationRepo implements port.SimulationRepository.
type SimulationRepo struct {
	pool *pgxpool.Pool
}

// NewSimulationRepo creates a new PostgreSQL-backed simulation repository.
func NewSimulationRepo(pool *pgxpool.Pool) *SimulationRepo {
	return &SimulationRepo{pool: pool}
}

const simulationColumns = `
	id, farmer_id, crop, custom_crop_name, hectares, expected_yield,
	amount, term_months, monthly_rate, monthly_payment, total_interest, total_payment,
	status, plan, version, created_at, updated_at
`

// Save persists a simulation and its amortization schedule.
func (r *SimulationRepo) Save(ctx context.Context, sim model.CreditSimulation) error {
	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		return r.saveTx(ctx, tx, sim)
	})
}

func (r *SimulationRepo) saveTx(ctx context.Context, tx pkgpostgres.Querier, sim model.CreditSimulation) error {
	simQuery := `
		INSERT INTO credit_simulations (
			id, farmer_id, crop, custom_crop_name, hectares, expected_yield,
			amount, term_months, monthly_rate, monthly_payment, total_interest, total_payment,
			status, plan, version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		ON CONFLICT (id) DO UPDATE SET
			status     = EXCLUDED.status,
			plan       = EXCLUDED.plan,
			version    = credit_simulations.version + 1,
			updated_at = EXCLUDED.updated_at
		WHERE credit_simulations.version = $15
	`
	tag, err := tx.Exec(ctx, simQuery,
		sim.ID(), sim.FarmerID(), sim.Crop().String(), sim.Crop().CustomName(),
		sim.Hectares(), sim.ExpectedYield(),
		sim.Amount(), sim.TermMonths(), sim.MonthlyRate(), sim.MonthlyPayment(),
		sim.TotalInterest(), sim.TotalPayment(),
		sim.Status().String(), sim.Plan().String(), sim.Version(), sim.CreatedAt(), sim.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save simulation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on simulation")
	}

	// The schedule is immutable, so it is written only on first insert.
	if sim.Version() == 1 {
		for _, entry := range sim.Schedule() {
			entryQuery := `
				INSERT INTO amortization_entries (simulation_id, month, payment, principal, interest, balance)
				VALUES ($1, $2, $3, $4, $5, $6)
				ON CONFLICT (simulation_id, month) DO NOTHING
			`
			_, err := tx.Exec(ctx, entryQuery,
				sim.ID(), entry.Month, entry.Payment, entry.Principal, entry.Interest, entry.Balance,
			)
			if err != nil {
				return fmt.Errorf("save amortization entry %d: %w", entry.Month, err)
			}
		}
	}

	return nil
}

// FindByID retrieves a simulation and its amortization schedule by ID.
func (r *SimulationRepo) FindByID(ctx context.Context, id string) (model.CreditSimulation, error) {
	query := `SELECT ` + simulationColumns + ` FROM credit_simulations WHERE id = $1`

	sim, err := scanSimulationRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return model.CreditSimulation{}, mapNotFound(err)
	}

	schedule, err := r.loadSchedule(ctx, id)
	if err != nil {
		return model.CreditSimulation{}, err
	}

	return withSchedule(sim, schedule), nil
}

// FindByFarmerID retrieves every simulation saved by one farmer, newest
// first. Schedules are not loaded for listings.
func (r *SimulationRepo) FindByFarmerID(ctx context.Context, farmerID string) ([]model.CreditSimulation, error) {
	query := `SELECT ` + simulationColumns + ` FROM credit_simulations WHERE farmer_id = $1 ORDER BY created_at DESC`
	return r.queryMany(ctx, query, farmerID)
}

// List retrieves every simulation, newest first.
func (r *SimulationRepo) List(ctx context.Context) ([]model.CreditSimulation, error) {
	query := `SELECT ` + simulationColumns + ` FROM credit_simulations ORDER BY created_at DESC`
	return r.queryMany(ctx, query)
}

// Delete removes a simulation and its schedule.
func (r *SimulationRepo) Delete(ctx context.Context, id string) error {
	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM amortization_entries WHERE simulation_id = $1`, id); err != nil {
			return fmt.Errorf("delete amortization entries: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM credit_simulations WHERE id = $1`, id); err != nil {
			return fmt.Errorf("delete simulation: %w", err)
		}
		return nil
	})
}

// ---------------------------------------------------------------------------
// internal helpers
// ---------------------------------------------------------------------------

func (r *SimulationRepo) queryMany(ctx context.Context, query string, args ...any) ([]model.CreditSimulation, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query simulations: %w", err)
	}
	defer rows.Close()

	var sims []model.CreditSimulation
	for rows.Next() {
		sim, err := scanSimulationRow(rows)
		if err != nil {
			return nil, err
		}
		sims = append(sims, sim)
	}
	return sims, rows.Err()
}

func scanSimulationRow(s scannable) (model.CreditSimulation, error) {
	var (
		id, farmerID, cropStr, customCropName              string
		hectares, expectedYield                            decimal.Decimal
		amount                                             decimal.Decimal
		termMonths                                         int
		monthlyRate, monthlyPayment                        decimal.Decimal
		totalInterest, totalPayment                        decimal.Decimal
		statusStr, planStr                                 string
		version                                            int
		createdAt, updatedAt                               time.Time
	)

	err := s.Scan(
		&id, &farmerID, &cropStr, &customCropName, &hectares, &expectedYield,
		&amount, &termMonths, &monthlyRate, &monthlyPayment, &totalInterest, &totalPayment,
		&statusStr, &planStr, &version, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.CreditSimulation{}, err
	}

	crop, err := valueobject.NewCropType(cropStr, customCropName)
	if err != nil {
		return model.CreditSimulation{}, fmt.Errorf("parse crop: %w", err)
	}
	status, err := valueobject.NewCreditStatus(statusStr)
	if err != nil {
		return model.CreditSimulation{}, fmt.Errorf("parse status: %w", err)
	}
	var plan valueobject.PlanType
	if planStr != "" {
		plan, err = valueobject.NewPlanType(planStr)
		if err != nil {
			return model.CreditSimulation{}, fmt.Errorf("parse plan: %w", err)
		}
	}

	return model.ReconstructCreditSimulation(
		id, farmerID, crop, hectares, expectedYield,
		amount, termMonths, monthlyRate, monthlyPayment, totalInterest, totalPayment,
		nil, status, plan, version, createdAt, updatedAt,
	), nil
}

func withSchedule(sim model.CreditSimulation, schedule []model.AmortizationEntry) model.CreditSimulation {
	return model.ReconstructCreditSimulation(
		sim.ID(), sim.FarmerID(), sim.Crop(), sim.Hectares(), sim.ExpectedYield(),
		sim.Amount(), sim.TermMonths(), sim.MonthlyRate(), sim.MonthlyPayment(),
		sim.TotalInterest(), sim.TotalPayment(),
		schedule, sim.Status(), sim.Plan(), sim.Version(), sim.CreatedAt(), sim.UpdatedAt(),
	)
}

func (r *SimulationRepo) loadSchedule(ctx context.Context, simulationID string) ([]model.AmortizationEntry, error) {
	query := `
		SELECT month, payment, principal, interest, balance
		FROM amortization_entries
		WHERE simulation_id = $1
		ORDER BY month
	`
	rows, err := r.pool.Query(ctx, query, simulationID)
	if err != nil {
		return nil, fmt.Errorf("query amortization: %w", err)
	}
	defer rows.Close()

	var schedule []model.AmortizationEntry
	for rows.Next() {
		var e model.AmortizationEntry
		if err := rows.Scan(&e.Month, &e.Payment, &e.Principal, &e.Interest, &e.Balance); err != nil {
			return nil, fmt.Errorf("scan amortization entry: %w", err)
		}
		schedule = append(schedule, e)
	}
	return schedule, rows.Err()
}
