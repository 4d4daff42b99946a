package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/agrocredito/agrocredito/internal/domain/model"
)

// SavingsAccountRepo implements port.SavingsAccountRepository.
type SavingsAccountRepo struct {
	pool *pgxpool.Pool
}

// NewSavingsAccountRepo creates a new PostgreSQL-backed savings account
// repository.
func NewSavingsAccountRepo(pool *pgxpool.Pool) *SavingsAccountRepo {
	return &SavingsAccountRepo{pool: pool}
}

// Save persists a savings account.
func (r *SavingsAccountRepo) Save(ctx context.Context, account model.SavingsAccount) error {
	query := `
		INSERT INTO savings_accounts (id, farmer_id, application_id, balance, version, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (id) DO UPDATE SET
			balance    = EXCLUDED.balance,
			version    = savings_accounts.version + 1,
			updated_at = EXCLUDED.updated_at
		WHERE savings_accounts.version = $5
	`
	tag, err := r.pool.Exec(ctx, query,
		account.ID(), account.FarmerID(), account.ApplicationID(), account.Balance(),
		account.Version(), account.CreatedAt(), account.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save savings account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on savings account")
	}
	return nil
}

// FindByID retrieves an account by ID.
func (r *SavingsAccountRepo) FindByID(ctx context.Context, id string) (model.SavingsAccount, error) {
	query := `SELECT id, farmer_id, application_id, balance, version, created_at, updated_at FROM savings_accounts WHERE id = $1`
	account, err := scanSavingsAccountRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return model.SavingsAccount{}, mapNotFound(err)
	}
	return account, nil
}

// FindByFarmerID retrieves every account held by one farmer.
func (r *SavingsAccountRepo) FindByFarmerID(ctx context.Context, farmerID string) ([]model.SavingsAccount, error) {
	query := `SELECT id, farmer_id, application_id, balance, version, created_at, updated_at FROM savings_accounts WHERE farmer_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, farmerID)
	if err != nil {
		return nil, fmt.Errorf("query savings accounts: %w", err)
	}
	defer rows.Close()

	var accounts []model.SavingsAccount
	for rows.Next() {
		account, err := scanSavingsAccountRow(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

func scanSavingsAccountRow(s scannable) (model.SavingsAccount, error) {
	var (
		id, farmerID, applicationID string
		balance                     decimal.Decimal
		version                     int
		createdAt, updatedAt        time.Time
	)
	err := s.Scan(&id, &farmerID, &applicationID, &balance, &version, &createdAt, &updatedAt)
	if err != nil {
		return model.SavingsAccount{}, err
	}
	return model.ReconstructSavingsAccount(id, farmerID, applicationID, balance, version, createdAt, updatedAt), nil
}
