package relaxed

// State identifies which of the four variants a Maybe holds.
type State uint8

const (
	// StateNull means the key was absent or explicitly null.
	StateNull State = iota
	// StateStrict means the stored value's native kind matched exactly.
	StateStrict
	// StateRelaxed means the stored value was coerced from a different kind.
	StateRelaxed
	// StateError means the stored value could not be read at all.
	StateError
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNull:
		return "null"
	case StateStrict:
		return "strict"
	case StateRelaxed:
		return "relaxed"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Maybe is the result of extracting a typed value from a document node. It is
// a closed four-state union: exactly one of null, strict, relaxed or error is
// populated. The zero value is the null state.
//
// A Maybe is produced fresh by every accessor call and meant to be consumed
// immediately through one of its combinators.
type Maybe[T any] struct {
	state State
	value T
	err   error
}

// NullOf returns the null-state carrier: the key was absent or its value was
// explicitly null.
func NullOf[T any]() Maybe[T] { return Maybe[T]{state: StateNull} }

// StrictOf returns a carrier holding v as an exact-type match.
func StrictOf[T any](v T) Maybe[T] { return Maybe[T]{state: StateStrict, value: v} }

// RelaxedOf returns a carrier holding v as a coerced value.
func RelaxedOf[T any](v T) Maybe[T] { return Maybe[T]{state: StateRelaxed, value: v} }

// ErrorOf returns a carrier holding the failure err.
func ErrorOf[T any](err error) Maybe[T] { return Maybe[T]{state: StateError, err: err} }

// State reports which variant the carrier holds.
func (m Maybe[T]) State() State { return m.state }

// Err returns the held failure in the error state and nil otherwise.
func (m Maybe[T]) Err() error {
	if m.state != StateError {
		return nil
	}
	return m.err
}

// Strict returns the held value only for an exact-type match. Every other
// state reports false.
func (m Maybe[T]) Strict() (T, bool) {
	if m.state == StateStrict {
		return m.value, true
	}
	var zero T
	return zero, false
}

// StrictOK returns the held value for an exact-type match and the held
// failure for the error state. Null and relaxed collapse to ErrNoStrictValue:
// a successfully coerced value still fails here, because this combinator
// demands the exact type.
func (m Maybe[T]) StrictOK() (T, error) {
	switch m.state {
	case StateStrict:
		return m.value, nil
	case StateError:
		var zero T
		return zero, m.err
	default:
		var zero T
		return zero, ErrNoStrictValue
	}
}

// Relaxed returns the held value for both the strict and relaxed states, and
// the zero value of T for null and error. It never fails.
func (m Maybe[T]) Relaxed() T {
	switch m.state {
	case StateStrict, StateRelaxed:
		return m.value
	default:
		var zero T
		return zero
	}
}

// Default is Relaxed with a caller-supplied fallback instead of the zero
// value.
func (m Maybe[T]) Default(fallback T) T {
	switch m.state {
	case StateStrict, StateRelaxed:
		return m.value
	default:
		return fallback
	}
}

// DefaultForNull distinguishes genuine absence from unreadable data: it
// returns the held value for an exact-type match and the fallback for null,
// but reports false for relaxed and error. A caller can treat coercion
// failure as "could not determine a value" while still defaulting true
// absence.
func (m Maybe[T]) DefaultForNull(fallback T) (T, bool) {
	switch m.state {
	case StateStrict:
		return m.value, true
	case StateNull:
		return fallback, true
	default:
		var zero T
		return zero, false
	}
}
