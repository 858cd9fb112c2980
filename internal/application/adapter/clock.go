// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock supplies the current time. Use cases that need "today" take a Clock
// instead of reading the system clock, so tests can pin the reference date.
type Clock interface {
	Now() time.Time
}
