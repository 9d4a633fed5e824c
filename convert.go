package relaxed

// Converter builds values of type T from document nodes. It is the recursive
// conversion protocol: the compound accessors delegate whole nodes to it, and
// implementations typically call the coercion accessors on the node's own
// fields, combining several Maybe results into one value.
type Converter[T any] interface {
	Convert(v *Value) (T, error)
}

// ConverterFunc adapts a plain function to a Converter.
type ConverterFunc[T any] func(v *Value) (T, error)

func (f ConverterFunc[T]) Convert(v *Value) (T, error) { return f(v) }

// Unmarshaler is the self-populating form of the conversion protocol,
// implemented on pointer receivers of user struct types. convert.UnmarshalerOf
// bridges it to a Converter.
type Unmarshaler interface {
	UnmarshalValue(v *Value) error
}

// MaybeArray looks up key and reads it as a homogeneous list of T, converting
// every element independently through conv. When all elements convert the
// list is strict; when some fail the failures are silently dropped and the
// survivors come back relaxed, in original order, with no record of what was
// lost. A present node that is not an array (an explicit null included) is
// converted as a single element and wrapped as a one-element relaxed list; if
// that conversion fails the whole result is the error state. Absent keys are
// null.
func MaybeArray[T any](v *Value, key Key, conv Converter[T]) Maybe[[]T] {
	node := seek(v, key)
	if node == nil {
		return NullOf[[]T]()
	}
	elems, ok := node.AsArray()
	if !ok {
		t, err := conv.Convert(node)
		if err != nil {
			return ErrorOf[[]T](err)
		}
		return RelaxedOf([]T{t})
	}
	collect := make([]T, 0, len(elems))
	clean := true
	for _, el := range elems {
		t, err := conv.Convert(el)
		if err != nil {
			clean = false
			continue
		}
		collect = append(collect, t)
	}
	if clean {
		return StrictOf(collect)
	}
	return RelaxedOf(collect)
}

// MaybeObject looks up key and delegates the whole node to conv. Success is
// strict, failure carries the converter's error through, absence is null.
func MaybeObject[T any](v *Value, key Key, conv Converter[T]) Maybe[T] {
	node := seek(v, key)
	if node == nil {
		return NullOf[T]()
	}
	t, err := conv.Convert(node)
	if err != nil {
		return ErrorOf[T](err)
	}
	return StrictOf(t)
}

// FromMaybe collapses a carrier into the conversion protocol's result shape:
// strict and relaxed values succeed, the error state surfaces its record, and
// null fails with ErrNullValue. Converter implementations built on the
// coercion accessors use this to adapt a Maybe into a (value, error) pair.
func FromMaybe[T any](m Maybe[T]) (T, error) {
	switch m.state {
	case StateStrict, StateRelaxed:
		return m.value, nil
	case StateError:
		var zero T
		return zero, m.err
	default:
		var zero T
		return zero, ErrNullValue
	}
}
