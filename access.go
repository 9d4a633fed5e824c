package relaxed

import (
	"strconv"
	"strings"
)

// MaybeBool looks up key and reads it as a boolean. Booleans match strictly;
// numbers coerce to nonzero-is-true; strings coerce to true unless empty,
// "0", or case-insensitively "false". Arrays and objects are unreadable.
func (v *Value) MaybeBool(key Key) Maybe[bool] {
	node := seek(v, key)
	if node == nil {
		return NullOf[bool]()
	}
	return CoerceBool(node)
}

// MaybeInt looks up key and reads it as a signed 64-bit integer. Integer
// numbers match strictly; unsigned numbers beyond the signed range match
// strictly with the bit pattern reinterpreted, which wraps very large
// magnitudes negative (kept as-is, not corrected). Booleans coerce to 1/0,
// floats truncate toward zero, strings parse as base-10.
func (v *Value) MaybeInt(key Key) Maybe[int64] {
	node := seek(v, key)
	if node == nil {
		return NullOf[int64]()
	}
	return CoerceInt(node)
}

// MaybeUint looks up key and reads it as an unsigned 64-bit integer. It is
// MaybeInt with the result reinterpreted bit-for-bit, the state unchanged, so
// negative inputs wrap to huge values the same way huge inputs wrap negative
// for MaybeInt.
func (v *Value) MaybeUint(key Key) Maybe[uint64] {
	node := seek(v, key)
	if node == nil {
		return NullOf[uint64]()
	}
	return CoerceUint(node)
}

// MaybeString looks up key and reads it as a string. Strings match strictly;
// booleans and numbers coerce to their decimal/text form. Arrays and objects
// are unreadable.
func (v *Value) MaybeString(key Key) Maybe[string] {
	node := seek(v, key)
	if node == nil {
		return NullOf[string]()
	}
	return CoerceString(node)
}

// seek performs the key lookup; a nil result means absence and is reported
// as the null state regardless of target type.
func seek(v *Value, key Key) *Value {
	if v == nil || key == nil {
		return nil
	}
	return key.lookup(v)
}

// CoerceBool reads the node itself as a boolean, applying the same rules as
// MaybeBool without a key lookup. Nil and null nodes are the null state.
func CoerceBool(v *Value) Maybe[bool] {
	switch v.Kind() {
	case KindNull:
		return NullOf[bool]()
	case KindBool:
		return StrictOf(v.b)
	case KindNumber:
		n := v.num
		switch {
		case n.IsInt():
			i, _ := n.Int64()
			return RelaxedOf(i != 0)
		case n.IsUint():
			u, _ := n.Uint64()
			return RelaxedOf(u > 0)
		case n.IsFloat():
			return RelaxedOf(n.Float64() != 0)
		default:
			return ErrorOf[bool](ErrUnexpected)
		}
	case KindString:
		s := v.str
		return RelaxedOf(s != "" && s != "0" && strings.ToLower(s) != "false")
	case KindArray:
		return ErrorOf[bool](ErrTypeMismatchArray)
	default:
		return ErrorOf[bool](ErrTypeMismatchObject)
	}
}

// CoerceInt reads the node itself as a signed integer, applying the same
// rules as MaybeInt without a key lookup.
func CoerceInt(v *Value) Maybe[int64] {
	switch v.Kind() {
	case KindNull:
		return NullOf[int64]()
	case KindBool:
		if v.b {
			return RelaxedOf[int64](1)
		}
		return RelaxedOf[int64](0)
	case KindNumber:
		n := v.num
		switch {
		case n.IsInt():
			i, _ := n.Int64()
			return StrictOf(i)
		case n.IsUint():
			// Reinterpret the unsigned bit pattern as signed. Wraps negative
			// for magnitudes beyond the signed range.
			u, _ := n.Uint64()
			return StrictOf(int64(u))
		case n.IsFloat():
			return RelaxedOf(int64(n.Float64()))
		default:
			return ErrorOf[int64](ErrUnexpected)
		}
	case KindString:
		i, err := strconv.ParseInt(v.str, 10, 64)
		if err != nil {
			return ErrorOf[int64](ErrParseInt)
		}
		return RelaxedOf(i)
	case KindArray:
		return ErrorOf[int64](ErrTypeMismatchArray)
	default:
		return ErrorOf[int64](ErrTypeMismatchObject)
	}
}

// CoerceUint reads the node itself as an unsigned integer: CoerceInt with the
// bit pattern reinterpreted and the state preserved.
func CoerceUint(v *Value) Maybe[uint64] {
	switch m := CoerceInt(v); m.state {
	case StateStrict:
		return StrictOf(uint64(m.value))
	case StateRelaxed:
		return RelaxedOf(uint64(m.value))
	case StateError:
		return ErrorOf[uint64](m.err)
	default:
		return NullOf[uint64]()
	}
}

// CoerceString reads the node itself as a string, applying the same rules as
// MaybeString without a key lookup.
func CoerceString(v *Value) Maybe[string] {
	switch v.Kind() {
	case KindNull:
		return NullOf[string]()
	case KindBool:
		return RelaxedOf(strconv.FormatBool(v.b))
	case KindNumber:
		return RelaxedOf(v.num.String())
	case KindString:
		return StrictOf(v.str)
	case KindArray:
		return ErrorOf[string](ErrTypeMismatchArray)
	default:
		return ErrorOf[string](ErrTypeMismatchObject)
	}
}
