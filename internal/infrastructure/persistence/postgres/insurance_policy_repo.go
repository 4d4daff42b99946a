package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/agrocredito/agrocredito/internal/domain/model"
	"github.com/agrocredito/agrocredito/internal/domain/valueobject"
)

// InsurancePolicyRepo implements port.InsurancePolicyRepository.
type InsurancePolicyRepo struct {
	pool *pgxpool.Pool
}

// NewInsurancePolicyRepo creates a new PostgreSQL-backed insurance policy
// repository.
func NewInsurancePolicyRepo(pool *pgxpool.Pool) *InsurancePolicyRepo {
	return &InsurancePolicyRepo{pool: pool}
}

// Save persists a policy.
func (r *InsurancePolicyRepo) Save(ctx context.Context, policy model.InsurancePolicy) error {
	query := `
		INSERT INTO insurance_policies (id, farmer_id, application_id, policy_type, coverage, premium, version, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (id) DO UPDATE SET
			version    = insurance_policies.version + 1,
			updated_at = EXCLUDED.updated_at
		WHERE insurance_policies.version = $7
	`
	tag, err := r.pool.Exec(ctx, query,
		policy.ID(), policy.FarmerID(), policy.ApplicationID(), policy.PolicyType().String(),
		policy.Coverage(), policy.Premium(),
		policy.Version(), policy.CreatedAt(), policy.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save insurance policy: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on insurance policy")
	}
	return nil
}

// FindByID retrieves a policy by ID.
func (r *InsurancePolicyRepo) FindByID(ctx context.Context, id string) (model.InsurancePolicy, error) {
	query := `SELECT id, farmer_id, application_id, policy_type, coverage, premium, version, created_at, updated_at FROM insurance_policies WHERE id = $1`
	policy, err := scanInsurancePolicyRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return model.InsurancePolicy{}, mapNotFound(err)
	}
	return policy, nil
}

// FindByFarmerID retrieves every policy held by one farmer.
func (r *InsurancePolicyRepo) FindByFarmerID(ctx context.Context, farmerID string) ([]model.InsurancePolicy, error) {
	query := `SELECT id, farmer_id, application_id, policy_type, coverage, premium, version, created_at, updated_at FROM insurance_policies WHERE farmer_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, farmerID)
	if err != nil {
		return nil, fmt.Errorf("query insurance policies: %w", err)
	}
	defer rows.Close()

	var policies []model.InsurancePolicy
	for rows.Next() {
		policy, err := scanInsurancePolicyRow(rows)
		if err != nil {
			return nil, err
		}
		policies = append(policies, policy)
	}
	return policies, rows.Err()
}

func scanInsurancePolicyRow(s scannable) (model.InsurancePolicy, error) {
	var (
		id, farmerID, applicationID, policyTypeStr string
		coverage, premium                          decimal.Decimal
		version                                    int
		createdAt, updatedAt                       time.Time
	)
	err := s.Scan(&id, &farmerID, &applicationID, &policyTypeStr, &coverage, &premium, &version, &createdAt, &updatedAt)
	if err != nil {
		return model.InsurancePolicy{}, err
	}

	policyType, err := valueobject.NewPolicyType(policyTypeStr)
	if err != nil {
		return model.InsurancePolicy{}, fmt.Errorf("parse policy type: %w", err)
	}

	return model.ReconstructInsurancePolicy(id, farmerID, applicationID, policyType, coverage, premium, version, createdAt, updatedAt), nil
}
