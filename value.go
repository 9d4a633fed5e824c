package relaxed

import "sort"

// Kind represents document node kinds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is one node of a parsed document tree: null, bool, number, string,
// ordered array of nodes, or key-ordered object. Nodes own their children;
// there are no back-references, so cycles cannot be constructed through this
// API. The extraction protocol only ever reads a Value, so sharing a tree
// across goroutines is safe as long as nobody mutates it.
type Value struct {
	kind Kind

	// Scalar slots (only one valid based on kind).
	b   bool
	num Number
	str string

	// Container slots. Object members are kept sorted by key so lookup can
	// binary-search; duplicate keys collapse last-wins.
	arr []*Value
	obj []Member
}

// Member is a single key/value pair of an object node.
type Member struct {
	Key   string
	Value *Value
}

// Entry builds a Member, a convenience for Object construction.
func Entry(key string, v *Value) Member { return Member{Key: key, Value: v} }

// Null creates a null node.
func Null() *Value { return &Value{kind: KindNull} }

// Bool creates a boolean node.
func Bool(b bool) *Value { return &Value{kind: KindBool, b: b} }

// Int creates a signed integer number node.
func Int(i int64) *Value { return &Value{kind: KindNumber, num: NumberInt(i)} }

// Uint creates an unsigned integer number node. Values within the signed
// range classify as signed integers, matching what parsing the same decimal
// text produces.
func Uint(u uint64) *Value { return &Value{kind: KindNumber, num: NumberUint(u)} }

// Float creates a floating point number node.
func Float(f float64) *Value { return &Value{kind: KindNumber, num: NumberFloat(f)} }

// Num creates a number node from an already-classified Number.
func Num(n Number) *Value { return &Value{kind: KindNumber, num: n} }

// Str creates a string node.
func Str(s string) *Value { return &Value{kind: KindString, str: s} }

// Array creates an array node.
func Array(items ...*Value) *Value { return &Value{kind: KindArray, arr: items} }

// Object creates an object node. Members are normalized into key order;
// duplicate keys collapse with the later member winning.
func Object(members ...Member) *Value {
	v := &Value{kind: KindObject, obj: make([]Member, 0, len(members))}
	for _, m := range members {
		v.Set(m.Key, m.Value)
	}
	return v
}

// Kind returns the node kind. A nil node reads as null.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull reports whether the node is null (or nil).
func (v *Value) IsNull() bool { return v == nil || v.kind == KindNull }

// AsBool returns the boolean payload of a bool node.
func (v *Value) AsBool() (bool, bool) {
	if v == nil || v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsNumber returns the numeric payload of a number node.
func (v *Value) AsNumber() (Number, bool) {
	if v == nil || v.kind != KindNumber {
		return Number{}, false
	}
	return v.num, true
}

// AsString returns the string payload of a string node.
func (v *Value) AsString() (string, bool) {
	if v == nil || v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsArray returns the elements of an array node.
func (v *Value) AsArray() ([]*Value, bool) {
	if v == nil || v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// AsObject returns the members of an object node, sorted by key.
func (v *Value) AsObject() ([]Member, bool) {
	if v == nil || v.kind != KindObject {
		return nil, false
	}
	return v.obj, true
}

// Len returns the number of elements of an array or members of an object,
// and 0 for every other kind.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	default:
		return 0
	}
}

// Get returns the member value for key, or nil when the node is not an
// object or has no such member. Absence is not an error in this protocol.
func (v *Value) Get(key string) *Value {
	if v == nil || v.kind != KindObject {
		return nil
	}
	i := sort.Search(len(v.obj), func(i int) bool { return v.obj[i].Key >= key })
	if i < len(v.obj) && v.obj[i].Key == key {
		return v.obj[i].Value
	}
	return nil
}

// Index returns the i-th element of an array node, or nil when the node is
// not an array or i is out of range.
func (v *Value) Index(i int) *Value {
	if v == nil || v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return nil
	}
	return v.arr[i]
}

// Set inserts or replaces the member for key on an object node, preserving
// key order. It is a no-op on any other kind.
func (v *Value) Set(key string, val *Value) {
	if v == nil || v.kind != KindObject {
		return
	}
	i := sort.Search(len(v.obj), func(i int) bool { return v.obj[i].Key >= key })
	if i < len(v.obj) && v.obj[i].Key == key {
		v.obj[i].Value = val
		return
	}
	v.obj = append(v.obj, Member{})
	copy(v.obj[i+1:], v.obj[i:])
	v.obj[i] = Member{Key: key, Value: val}
}

// Append adds an element to an array node. It is a no-op on any other kind.
func (v *Value) Append(val *Value) {
	if v == nil || v.kind != KindArray {
		return
	}
	v.arr = append(v.arr, val)
}
