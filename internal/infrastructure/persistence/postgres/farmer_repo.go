package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agrocredito/agrocredito/internal/domain/model"
)

// FarmerRepo implements port.FarmerRepository.
type FarmerRepo struct {
	pool *pgxpool.Pool
}

// NewFarmerRepo creates a new PostgreSQL-backed farmer repository.
func NewFarmerRepo(pool *pgxpool.Pool) *FarmerRepo {
	return &FarmerRepo{pool: pool}
}

// Save persists a farmer profile.
func (r *FarmerRepo) Save(ctx context.Context, farmer model.Farmer) error {
	query := `
		INSERT INTO farmers (id, full_name, document, phone, region, version, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET
			phone      = EXCLUDED.phone,
			region     = EXCLUDED.region,
			version    = farmers.version + 1,
			updated_at = EXCLUDED.updated_at
		WHERE farmers.version = $6
	`
	tag, err := r.pool.Exec(ctx, query,
		farmer.ID(), farmer.FullName(), farmer.Document(), farmer.Phone(), farmer.Region(),
		farmer.Version(), farmer.CreatedAt(), farmer.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save farmer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on farmer")
	}
	return nil
}

// FindByID retrieves a farmer by ID.
func (r *FarmerRepo) FindByID(ctx context.Context, id string) (model.Farmer, error) {
	query := `SELECT id, full_name, document, phone, region, version, created_at, updated_at FROM farmers WHERE id = $1`
	farmer, err := scanFarmerRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return model.Farmer{}, mapNotFound(err)
	}
	return farmer, nil
}

// FindByDocument retrieves a farmer by national document.
func (r *FarmerRepo) FindByDocument(ctx context.Context, document string) (model.Farmer, error) {
	query := `SELECT id, full_name, document, phone, region, version, created_at, updated_at FROM farmers WHERE document = $1`
	farmer, err := scanFarmerRow(r.pool.QueryRow(ctx, query, document))
	if err != nil {
		return model.Farmer{}, mapNotFound(err)
	}
	return farmer, nil
}

// List retrieves every farmer, newest first.
func (r *FarmerRepo) List(ctx context.Context) ([]model.Farmer, error) {
	query := `SELECT id, full_name, document, phone, region, version, created_at, updated_at FROM farmers ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query farmers: %w", err)
	}
	defer rows.Close()

	var farmers []model.Farmer
	for rows.Next() {
		farmer, err := scanFarmerRow(rows)
		if err != nil {
			return nil, err
		}
		farmers = append(farmers, farmer)
	}
	return farmers, rows.Err()
}

func scanFarmerRow(s scannable) (model.Farmer, error) {
	var (
		id, fullName, document, phone, region string
		version                               int
		createdAt, updatedAt                  time.Time
	)
	err := s.Scan(&id, &fullName, &document, &phone, &region, &version, &createdAt, &updatedAt)
	if err != nil {
		return model.Farmer{}, err
	}
	return model.ReconstructFarmer(id, fullName, document, phone, region, version, createdAt, updatedAt), nil
}
