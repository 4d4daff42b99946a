package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/agrocredito/agrocredito/internal/domain/port"
)

// scannable is satisfied by both pgx.Row and pgx.Rows.
type scannable interface {
	Scan(dest ...any) error
}

// mapNotFound converts pgx.ErrNoRows into the domain-level port.ErrNotFound.
func mapNotFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return port.ErrNotFound
	}
	return err
}
