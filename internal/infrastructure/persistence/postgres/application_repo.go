package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/agrocredito/agrocredito/internal/domain/model"
	"github.com/agrocredito/agrocredito/internal/domain/valueobject"
)

// ApplicationRepo implements port.ApplicationRepository.
type ApplicationRepo struct {
	pool *pgxpool.Pool
}

// NewApplicationRepo creates a new PostgreSQL-backed application repository.
func NewApplicationRepo(pool *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{pool: pool}
}

// applicationDetails is the JSONB payload of the details column. Only the
// block matching the product type is populated.
type applicationDetails struct {
	Credit *struct {
		SimulationID string          `json:"simulation_id,omitempty"`
		Amount       decimal.Decimal `json:"amount"`
		TermMonths   int             `json:"term_months"`
		Purpose      string          `json:"purpose,omitempty"`
	} `json:"credit,omitempty"`
	Savings *struct {
		InitialDeposit decimal.Decimal `json:"initial_deposit"`
	} `json:"savings,omitempty"`
	Insurance *struct {
		PolicyType string          `json:"policy_type"`
		Coverage   decimal.Decimal `json:"coverage"`
	} `json:"insurance,omitempty"`
}

const applicationColumns = `
	id, farmer_id, product, status, details,
	decided_by, decision_reason, decided_at,
	version, created_at, updated_at
`

// Save persists a product application.
func (r *ApplicationRepo) Save(ctx context.Context, app model.ProductApplication) error {
	details, err := marshalDetails(app)
	if err != nil {
		return err
	}

	var decidedAt *time.Time
	if !app.DecidedAt().IsZero() {
		t := app.DecidedAt()
		decidedAt = &t
	}

	query := `
		INSERT INTO product_applications (
			id, farmer_id, product, status, details,
			decided_by, decision_reason, decided_at,
			version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (id) DO UPDATE SET
			status          = EXCLUDED.status,
			decided_by      = EXCLUDED.decided_by,
			decision_reason = EXCLUDED.decision_reason,
			decided_at      = EXCLUDED.decided_at,
			version         = product_applications.version + 1,
			updated_at      = EXCLUDED.updated_at
		WHERE product_applications.version = $9
	`
	tag, err := r.pool.Exec(ctx, query,
		app.ID(), app.FarmerID(), app.Product().String(), app.Status().String(), details,
		app.DecidedBy(), app.DecisionReason(), decidedAt,
		app.Version(), app.CreatedAt(), app.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on application")
	}
	return nil
}

// FindByID retrieves an application by ID.
func (r *ApplicationRepo) FindByID(ctx context.Context, id string) (model.ProductApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM product_applications WHERE id = $1`
	app, err := scanApplicationRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return model.ProductApplication{}, mapNotFound(err)
	}
	return app, nil
}

// FindByFarmerID retrieves every application from one farmer, newest first.
func (r *ApplicationRepo) FindByFarmerID(ctx context.Context, farmerID string) ([]model.ProductApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM product_applications WHERE farmer_id = $1 ORDER BY created_at DESC`
	return r.queryMany(ctx, query, farmerID)
}

// FindByStatus retrieves every application in the given status, oldest first
// so advisors work the queue in arrival order.
func (r *ApplicationRepo) FindByStatus(ctx context.Context, status valueobject.ApplicationStatus) ([]model.ProductApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM product_applications WHERE status = $1 ORDER BY created_at`
	return r.queryMany(ctx, query, status.String())
}

// List retrieves every application, newest first.
func (r *ApplicationRepo) List(ctx context.Context) ([]model.ProductApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM product_applications ORDER BY created_at DESC`
	return r.queryMany(ctx, query)
}

// ---------------------------------------------------------------------------
// internal helpers
// ---------------------------------------------------------------------------

func (r *ApplicationRepo) queryMany(ctx context.Context, query string, args ...any) ([]model.ProductApplication, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query applications: %w", err)
	}
	defer rows.Close()

	var apps []model.ProductApplication
	for rows.Next() {
		app, err := scanApplicationRow(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func marshalDetails(app model.ProductApplication) ([]byte, error) {
	var d applicationDetails
	if credit, ok := app.CreditDetails(); ok {
		d.Credit = &struct {
			SimulationID string          `json:"simulation_id,omitempty"`
			Amount       decimal.Decimal `json:"amount"`
			TermMonths   int             `json:"term_months"`
			Purpose      string          `json:"purpose,omitempty"`
		}{credit.SimulationID, credit.Amount, credit.TermMonths, credit.Purpose}
	}
	if savings, ok := app.SavingsDetails(); ok {
		d.Savings = &struct {
			InitialDeposit decimal.Decimal `json:"initial_deposit"`
		}{savings.InitialDeposit}
	}
	if insurance, ok := app.InsuranceDetails(); ok {
		d.Insurance = &struct {
			PolicyType string          `json:"policy_type"`
			Coverage   decimal.Decimal `json:"coverage"`
		}{insurance.PolicyType.String(), insurance.Coverage}
	}

	raw, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshal application details: %w", err)
	}
	return raw, nil
}

func scanApplicationRow(s scannable) (model.ProductApplication, error) {
	var (
		id, farmerID, productStr, statusStr string
		rawDetails                          []byte
		decidedBy, decisionReason           string
		decidedAt                           *time.Time
		version                             int
		createdAt, updatedAt                time.Time
	)

	err := s.Scan(
		&id, &farmerID, &productStr, &statusStr, &rawDetails,
		&decidedBy, &decisionReason, &decidedAt,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.ProductApplication{}, err
	}

	product, err := valueobject.NewProductType(productStr)
	if err != nil {
		return model.ProductApplication{}, fmt.Errorf("parse product: %w", err)
	}
	status, err := valueobject.NewApplicationStatus(statusStr)
	if err != nil {
		return model.ProductApplication{}, fmt.Errorf("parse status: %w", err)
	}

	var d applicationDetails
	if len(rawDetails) > 0 {
		if err := json.Unmarshal(rawDetails, &d); err != nil {
			return model.ProductApplication{}, fmt.Errorf("unmarshal application details: %w", err)
		}
	}

	var (
		credit    *model.CreditDetails
		savings   *model.SavingsDetails
		insurance *model.InsuranceDetails
	)
	if d.Credit != nil {
		credit = &model.CreditDetails{
			SimulationID: d.Credit.SimulationID,
			Amount:       d.Credit.Amount,
			TermMonths:   d.Credit.TermMonths,
			Purpose:      d.Credit.Purpose,
		}
	}
	if d.Savings != nil {
		savings = &model.SavingsDetails{InitialDeposit: d.Savings.InitialDeposit}
	}
	if d.Insurance != nil {
		policyType, err := valueobject.NewPolicyType(d.Insurance.PolicyType)
		if err != nil {
			return model.ProductApplication{}, fmt.Errorf("parse policy type: %w", err)
		}
		insurance = &model.InsuranceDetails{PolicyType: policyType, Coverage: d.Insurance.Coverage}
	}

	var decided time.Time
	if decidedAt != nil {
		decided = *decidedAt
	}

	return model.ReconstructProductApplication(
		id, farmerID, product, status,
		credit, savings, insurance,
		decidedBy, decisionReason, decided,
		version, createdAt, updatedAt,
	), nil
}
