package usecase_test

import (
	"context"
	"time"

	"github.com/agrocredito/agrocredito/internal/domain/event"
	"github.com/agrocredito/agrocredito/internal/domain/model"
	"github.com/agrocredito/agrocredito/internal/domain/port"
	"github.com/agrocredito/agrocredito/internal/domain/valueobject"
)

// --- Mock implementations ---

type mockSimulationRepo struct {
	saveFunc           func(ctx context.Context, sim model.CreditSimulation) error
	findByIDFunc       func(ctx context.Context, id string) (model.CreditSimulation, error)
	findByFarmerIDFunc func(ctx context.Context, farmerID string) ([]model.CreditSimulation, error)
	listFunc           func(ctx context.Context) ([]model.CreditSimulation, error)
	deleteFunc         func(ctx context.Context, id string) error
}

func (m *mockSimulationRepo) Save(ctx context.Context, sim model.CreditSimulation) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, sim)
	}
	return nil
}

func (m *mockSimulationRepo) FindByID(ctx context.Context, id string) (model.CreditSimulation, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.CreditSimulation{}, port.ErrNotFound
}

func (m *mockSimulationRepo) FindByFarmerID(ctx context.Context, farmerID string) ([]model.CreditSimulation, error) {
	if m.findByFarmerIDFunc != nil {
		return m.findByFarmerIDFunc(ctx, farmerID)
	}
	return nil, nil
}

func (m *mockSimulationRepo) List(ctx context.Context) ([]model.CreditSimulation, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockSimulationRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockFarmerRepo struct {
	saveFunc           func(ctx context.Context, farmer model.Farmer) error
	findByIDFunc       func(ctx context.Context, id string) (model.Farmer, error)
	findByDocumentFunc func(ctx context.Context, document string) (model.Farmer, error)
	listFunc           func(ctx context.Context) ([]model.Farmer, error)
}

func (m *mockFarmerRepo) Save(ctx context.Context, farmer model.Farmer) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, farmer)
	}
	return nil
}

func (m *mockFarmerRepo) FindByID(ctx context.Context, id string) (model.Farmer, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Farmer{}, port.ErrNotFound
}

func (m *mockFarmerRepo) FindByDocument(ctx context.Context, document string) (model.Farmer, error) {
	if m.findByDocumentFunc != nil {
		return m.findByDocumentFunc(ctx, document)
	}
	return model.Farmer{}, port.ErrNotFound
}

func (m *mockFarmerRepo) List(ctx context.Context) ([]model.Farmer, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

type mockApplicationRepo struct {
	saveFunc           func(ctx context.Context, app model.ProductApplication) error
	findByIDFunc       func(ctx context.Context, id string) (model.ProductApplication, error)
	findByFarmerIDFunc func(ctx context.Context, farmerID string) ([]model.ProductApplication, error)
	findByStatusFunc   func(ctx context.Context, status valueobject.ApplicationStatus) ([]model.ProductApplication, error)
	listFunc           func(ctx context.Context) ([]model.ProductApplication, error)
}

func (m *mockApplicationRepo) Save(ctx context.Context, app model.ProductApplication) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, app)
	}
	return nil
}

func (m *mockApplicationRepo) FindByID(ctx context.Context, id string) (model.ProductApplication, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.ProductApplication{}, port.ErrNotFound
}

func (m *mockApplicationRepo) FindByFarmerID(ctx context.Context, farmerID string) ([]model.ProductApplication, error) {
	if m.findByFarmerIDFunc != nil {
		return m.findByFarmerIDFunc(ctx, farmerID)
	}
	return nil, nil
}

func (m *mockApplicationRepo) FindByStatus(ctx context.Context, status valueobject.ApplicationStatus) ([]model.ProductApplication, error) {
	if m.findByStatusFunc != nil {
		return m.findByStatusFunc(ctx, status)
	}
	return nil, nil
}

func (m *mockApplicationRepo) List(ctx context.Context) ([]model.ProductApplication, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

type mockSavingsAccountRepo struct {
	saveFunc func(ctx context.Context, account model.SavingsAccount) error
}

func (m *mockSavingsAccountRepo) Save(ctx context.Context, account model.SavingsAccount) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, account)
	}
	return nil
}

func (m *mockSavingsAccountRepo) FindByID(_ context.Context, _ string) (model.SavingsAccount, error) {
	return model.SavingsAccount{}, port.ErrNotFound
}

func (m *mockSavingsAccountRepo) FindByFarmerID(_ context.Context, _ string) ([]model.SavingsAccount, error) {
	return nil, nil
}

type mockInsurancePolicyRepo struct {
	saveFunc func(ctx context.Context, policy model.InsurancePolicy) error
}

func (m *mockInsurancePolicyRepo) Save(ctx context.Context, policy model.InsurancePolicy) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, policy)
	}
	return nil
}

func (m *mockInsurancePolicyRepo) FindByID(_ context.Context, _ string) (model.InsurancePolicy, error) {
	return model.InsurancePolicy{}, port.ErrNotFound
}

func (m *mockInsurancePolicyRepo) FindByFarmerID(_ context.Context, _ string) ([]model.InsurancePolicy, error) {
	return nil, nil
}

// mockPublisher records every published event.
type mockPublisher struct {
	published []event.DomainEvent
	err       error
}

func (m *mockPublisher) Publish(_ context.Context, events ...event.DomainEvent) error {
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, events...)
	return nil
}

func (m *mockPublisher) eventTypes() []string {
	types := make([]string, 0, len(m.published))
	for _, evt := range m.published {
		types = append(types, evt.EventType())
	}
	return types
}

// mockQuoteCache is an in-memory QuoteCache.
type mockQuoteCache struct {
	entries map[string][]byte
	gets    int
	sets    int
}

func newMockQuoteCache() *mockQuoteCache {
	return &mockQuoteCache{entries: map[string][]byte{}}
}

func (m *mockQuoteCache) Get(_ context.Context, key string) ([]byte, error) {
	m.gets++
	return m.entries[key], nil
}

func (m *mockQuoteCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.sets++
	m.entries[key] = value
	return nil
}
