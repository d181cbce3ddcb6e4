package core

import "time"

// TimeProvider abstracts time operations for the domain
type TimeProvider interface {
	Now() time.Time
}
