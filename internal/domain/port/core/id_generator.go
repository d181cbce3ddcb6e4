package core

// IDGenerator produces identifiers that are unique across the process lifetime
type IDGenerator interface {
	NewID() string
}
