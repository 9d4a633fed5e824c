package relaxed

import (
	"math"
	"strconv"
)

type numberKind uint8

const (
	numInt numberKind = iota
	numUint
	numFloat
)

// Number is the numeric payload of a document node. A number is exactly one
// of: a signed 64-bit integer, an unsigned 64-bit integer that does not fit
// the signed range, or a float64. The parser classifies by attempting those
// three readings of the token text in that order.
type Number struct {
	kind numberKind
	i    int64
	u    uint64
	f    float64
}

// NumberInt returns a signed integer number.
func NumberInt(i int64) Number { return Number{kind: numInt, i: i} }

// NumberUint returns an unsigned integer number. Values within the signed
// range are stored as signed, keeping the classification canonical.
func NumberUint(u uint64) Number {
	if u <= math.MaxInt64 {
		return Number{kind: numInt, i: int64(u)}
	}
	return Number{kind: numUint, u: u}
}

// NumberFloat returns a floating point number.
func NumberFloat(f float64) Number { return Number{kind: numFloat, f: f} }

// IsInt reports whether the number is a signed 64-bit integer.
func (n Number) IsInt() bool { return n.kind == numInt }

// IsUint reports whether the number is an unsigned integer beyond the signed
// range.
func (n Number) IsUint() bool { return n.kind == numUint }

// IsFloat reports whether the number is a float.
func (n Number) IsFloat() bool { return n.kind == numFloat }

// Int64 returns the number as a signed integer when it is one.
func (n Number) Int64() (int64, bool) {
	if n.kind == numInt {
		return n.i, true
	}
	return 0, false
}

// Uint64 returns the number as an unsigned integer when it is representable
// as one: either the unsigned kind, or a non-negative signed integer.
func (n Number) Uint64() (uint64, bool) {
	switch n.kind {
	case numUint:
		return n.u, true
	case numInt:
		if n.i >= 0 {
			return uint64(n.i), true
		}
	}
	return 0, false
}

// Float64 returns the number as a float, converting integers lossily when
// they exceed float precision.
func (n Number) Float64() float64 {
	switch n.kind {
	case numInt:
		return float64(n.i)
	case numUint:
		return float64(n.u)
	default:
		return n.f
	}
}

// String renders the number as decimal text. Floats use the shortest
// representation that round-trips.
func (n Number) String() string {
	switch n.kind {
	case numInt:
		return strconv.FormatInt(n.i, 10)
	case numUint:
		return strconv.FormatUint(n.u, 10)
	default:
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
}
