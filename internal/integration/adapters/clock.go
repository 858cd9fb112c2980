// Package adapters provides integration-layer implementations of the
// application adapter interfaces.
package adapters

import (
	"time"

	"github.com/batchflow/backend/internal/application/adapter"
)

// systemClock reads the system clock in UTC.
type systemClock struct{}

// NewSystemClock creates a Clock backed by the system time.
func NewSystemClock() adapter.Clock {
	return systemClock{}
}

// Now returns the current UTC time.
func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
