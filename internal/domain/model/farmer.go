package model

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/agrocredito/agrocredito/internal/domain/event"
)

// ---------------------------------------------------------------------------
// Farmer aggregate root
// ---------------------------------------------------------------------------

// Farmer is an immutable aggregate representing a registered producer.
type Farmer struct {
	id           string
	fullName     string
	document     string
	phone        string
	region       string
	version      int
	createdAt    time.Time
	updatedAt    time.Time
	domainEvents []event.DomainEvent
}

// NewFarmer registers a new farmer profile and records a FarmerRegistered
// event.
func NewFarmer(fullName, document, phone, region string, now time.Time) (Farmer, error) {
	if fullName == "" {
		return Farmer{}, errors.New("full name is required")
	}
	if document == "" {
		return Farmer{}, errors.New("document is required")
	}

	id := uuid.New().String()
	farmer := Farmer{
		id:        id,
		fullName:  fullName,
		document:  document,
		phone:     phone,
		region:    region,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}

	farmer.domainEvents = append(farmer.domainEvents, event.NewFarmerRegistered(
		id, fullName, document, region,
	))

	return farmer, nil
}

// ReconstructFarmer rebuilds the aggregate from persistence.
func ReconstructFarmer(
	id, fullName, document, phone, region string,
	version int,
	createdAt, updatedAt time.Time,
) Farmer {
	return Farmer{
		id:        id,
		fullName:  fullName,
		document:  document,
		phone:     phone,
		region:    region,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// UpdateContact returns a copy with refreshed phone and region.
func (f Farmer) UpdateContact(phone, region string, now time.Time) Farmer {
	next := f
	next.phone = phone
	next.region = region
	next.updatedAt = now
	next.domainEvents = copyEvents(f.domainEvents)
	return next
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (f Farmer) ID() string                        { return f.id }
func (f Farmer) FullName() string                  { return f.fullName }
func (f Farmer) Document() string                  { return f.document }
func (f Farmer) Phone() string                     { return f.phone }
func (f Farmer) Region() string                    { return f.region }
func (f Farmer) Version() int                      { return f.version }
func (f Farmer) CreatedAt() time.Time              { return f.createdAt }
func (f Farmer) UpdatedAt() time.Time              { return f.updatedAt }
func (f Farmer) DomainEvents() []event.DomainEvent { return f.domainEvents }

// ClearEvents returns a copy with an empty event list.
func (f Farmer) ClearEvents() Farmer {
	next := f
	next.domainEvents = nil
	return next
}
