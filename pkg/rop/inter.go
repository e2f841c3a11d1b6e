package rop

// Failure is satisfied only by the ErrorN unions of this package, which keeps the
// error algebra closed.
type Failure interface {
	error
	// Index returns the 0-based position of the active variant, -1 when empty
	Index() int
	// IsEmpty reports whether no variant was ever stored
	IsEmpty() bool
	// Variant returns the Go type name of the active payload
	Variant() string

	failure()
}

// Status is implemented by Result and Void
type Status interface {
	// Successful returns true if the operation succeeded
	Successful() bool
	// Failed returns true if the operation failed
	Failed() bool
}

// ValueProvider defines an interface for types that may carry a success value
type ValueProvider[T any] interface {
	Status
	// Value returns the success value and true, or the zero value and false
	Value() (T, bool)
}
