package port

import (
	"context"
	"errors"
	"time"

	"github.com/agrocredito/agrocredito/internal/domain/event"
	"github.com/agrocredito/agrocredito/internal/domain/model"
	"github.com/agrocredito/agrocredito/internal/domain/valueobject"
)

// ErrNotFound is returned by repositories when no row matches the lookup.
var ErrNotFound = errors.New("not found")

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// SimulationRepository persists and retrieves credit simulations.
type SimulationRepository interface {
	Save(ctx context.Context, sim model.CreditSimulation) error
	FindByID(ctx context.Context, id string) (model.CreditSimulation, error)
	FindByFarmerID(ctx context.Context, farmerID string) ([]model.CreditSimulation, error)
	List(ctx context.Context) ([]model.CreditSimulation, error)
	Delete(ctx context.Context, id string) error
}

// FarmerRepository persists and retrieves farmer profiles.
type FarmerRepository interface {
	Save(ctx context.Context, farmer model.Farmer) error
	FindByID(ctx context.Context, id string) (model.Farmer, error)
	FindByDocument(ctx context.Context, document string) (model.Farmer, error)
	List(ctx context.Context) ([]model.Farmer, error)
}

// ApplicationRepository persists and retrieves product applications.
type ApplicationRepository interface {
	Save(ctx context.Context, app model.ProductApplication) error
	FindByID(ctx context.Context, id string) (model.ProductApplication, error)
	FindByFarmerID(ctx context.Context, farmerID string) ([]model.ProductApplication, error)
	FindByStatus(ctx context.Context, status valueobject.ApplicationStatus) ([]model.ProductApplication, error)
	List(ctx context.Context) ([]model.ProductApplication, error)
}

// SavingsAccountRepository persists and retrieves savings accounts.
type SavingsAccountRepository interface {
	Save(ctx context.Context, account model.SavingsAccount) error
	FindByID(ctx context.Context, id string) (model.SavingsAccount, error)
	FindByFarmerID(ctx context.Context, farmerID string) ([]model.SavingsAccount, error)
}

// InsurancePolicyRepository persists and retrieves insurance policies.
type InsurancePolicyRepository interface {
	Save(ctx context.Context, policy model.InsurancePolicy) error
	FindByID(ctx context.Context, id string) (model.InsurancePolicy, error)
	FindByFarmerID(ctx context.Context, farmerID string) ([]model.InsurancePolicy, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// Cache port
// ---------------------------------------------------------------------------

// QuoteCache stores serialized simulation quotes keyed by their input so
// repeated quotes skip recomputation. Implementations tolerate absence; a
// miss returns (nil, nil).
type QuoteCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
