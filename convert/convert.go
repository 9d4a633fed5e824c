// Package convert provides converter constructors for the conversion
// protocol: one per primitive target kind, Of-variants projecting to named
// domain types, and a bridge for self-unmarshaling types.
//
// The primitive converters apply the same coercion rules as the keyed
// accessors, taken on the node itself: strict and relaxed readings both
// succeed, a null node fails with relaxed.ErrNullValue, and unreadable nodes
// propagate their failure record. Inside relaxed.MaybeArray this makes a
// fully coercible list strict and drops only truly unreadable elements.
package convert

import (
	"time"

	relaxed "github.com/maotv/json-relaxed"
)

// ErrInvalidTime reports text that does not parse as an RFC 3339 timestamp.
var ErrInvalidTime = relaxed.NewDecodeError("invalid RFC3339 time")

// Bool returns the converter reading a node as a bool.
func Bool() relaxed.Converter[bool] {
	return relaxed.ConverterFunc[bool](func(v *relaxed.Value) (bool, error) {
		return relaxed.FromMaybe(relaxed.CoerceBool(v))
	})
}

// BoolOf returns the bool converter projected to a domain type T.
func BoolOf[T ~bool]() relaxed.Converter[T] {
	return relaxed.ConverterFunc[T](func(v *relaxed.Value) (T, error) {
		b, err := relaxed.FromMaybe(relaxed.CoerceBool(v))
		return T(b), err
	})
}

// Int64 returns the converter reading a node as a signed integer.
func Int64() relaxed.Converter[int64] {
	return relaxed.ConverterFunc[int64](func(v *relaxed.Value) (int64, error) {
		return relaxed.FromMaybe(relaxed.CoerceInt(v))
	})
}

// Int64Of returns the signed integer converter projected to a domain type T.
func Int64Of[T ~int64]() relaxed.Converter[T] {
	return relaxed.ConverterFunc[T](func(v *relaxed.Value) (T, error) {
		i, err := relaxed.FromMaybe(relaxed.CoerceInt(v))
		return T(i), err
	})
}

// Uint64 returns the converter reading a node as an unsigned integer.
func Uint64() relaxed.Converter[uint64] {
	return relaxed.ConverterFunc[uint64](func(v *relaxed.Value) (uint64, error) {
		return relaxed.FromMaybe(relaxed.CoerceUint(v))
	})
}

// Uint64Of returns the unsigned integer converter projected to a domain type T.
func Uint64Of[T ~uint64]() relaxed.Converter[T] {
	return relaxed.ConverterFunc[T](func(v *relaxed.Value) (T, error) {
		u, err := relaxed.FromMaybe(relaxed.CoerceUint(v))
		return T(u), err
	})
}

// String returns the converter reading a node as a string.
func String() relaxed.Converter[string] {
	return relaxed.ConverterFunc[string](func(v *relaxed.Value) (string, error) {
		return relaxed.FromMaybe(relaxed.CoerceString(v))
	})
}

// StringOf returns the string converter projected to a domain type T.
func StringOf[T ~string]() relaxed.Converter[T] {
	return relaxed.ConverterFunc[T](func(v *relaxed.Value) (T, error) {
		s, err := relaxed.FromMaybe(relaxed.CoerceString(v))
		return T(s), err
	})
}

// TimeRFC3339 returns a converter reading a node's string form as an
// RFC 3339 timestamp. Fractional seconds are accepted and optional.
func TimeRFC3339() relaxed.Converter[time.Time] {
	return relaxed.ConverterFunc[time.Time](func(v *relaxed.Value) (time.Time, error) {
		s, err := relaxed.FromMaybe(relaxed.CoerceString(v))
		if err != nil {
			return time.Time{}, err
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
				return t2, nil
			}
			return time.Time{}, ErrInvalidTime
		}
		return t, nil
	})
}

// UnmarshalerOf returns a converter for any type whose pointer implements
// relaxed.Unmarshaler. Each conversion populates a fresh zero T.
func UnmarshalerOf[T any, P interface {
	*T
	relaxed.Unmarshaler
}]() relaxed.Converter[T] {
	return relaxed.ConverterFunc[T](func(v *relaxed.Value) (T, error) {
		var t T
		if err := P(&t).UnmarshalValue(v); err != nil {
			var zero T
			return zero, err
		}
		return t, nil
	})
}
