package relaxed

// DecodeError is the failure record carried by the error state of a Maybe.
// It holds a human-readable message and nothing else: no wrapped cause, no
// structured fields. It is immutable once constructed.
type DecodeError struct {
	msg string
}

// NewDecodeError returns a DecodeError with the given message.
func NewDecodeError(msg string) *DecodeError { return &DecodeError{msg: msg} }

func (e *DecodeError) Error() string { return e.msg }

// Shared failure records for the fixed conditions the coercion rules produce.
// Accessors hand these out by identity, so errors.Is works without an Is
// method on DecodeError.
var (
	// ErrTypeMismatchArray reports an array where a scalar or object was needed.
	ErrTypeMismatchArray = NewDecodeError("type mismatch: array")
	// ErrTypeMismatchObject reports an object where a scalar was needed.
	ErrTypeMismatchObject = NewDecodeError("type mismatch: object")
	// ErrParseInt reports a string that does not parse as a base-10 integer.
	ErrParseInt = NewDecodeError("parseIntError")
	// ErrNoStrictValue is returned by StrictOK when the carrier holds anything
	// other than a strict value.
	ErrNoStrictValue = NewDecodeError("no strict value")
	// ErrNullValue is returned by converters handed a null node.
	ErrNullValue = NewDecodeError("unexpected null")
	// ErrUnexpected reports an internal-consistency fault, such as a number
	// node matching none of the int/uint/float classifications.
	ErrUnexpected = NewDecodeError("unexpected error")
)

// TypeMismatch returns the failure record for a node of kind k found where a
// different kind was required. Converter implementations use this to reject
// nodes they cannot read; for arrays and objects it returns the shared
// records above.
func TypeMismatch(k Kind) *DecodeError {
	switch k {
	case KindArray:
		return ErrTypeMismatchArray
	case KindObject:
		return ErrTypeMismatchObject
	default:
		return NewDecodeError("type mismatch: " + k.String())
	}
}

var _ error = (*DecodeError)(nil)
