// Package testutil carries assertion helpers and fixed fixtures shared by the
// test suites.
package testutil

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// AssertDecimalEqual compares decimals by value. decimal.Decimal carries an
// exponent, so assert.Equal on two numerically equal values can still fail.
func AssertDecimalEqual(t *testing.T, expected, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, expected.Equal(actual), "expected %s, got %s", expected.String(), actual.String())
}
