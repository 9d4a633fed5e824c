package relaxed_test

import (
	"testing"

	relaxed "github.com/maotv/json-relaxed"
)

func TestValueKinds(t *testing.T) {
	cases := []struct {
		v    *relaxed.Value
		kind relaxed.Kind
		name string
	}{
		{relaxed.Null(), relaxed.KindNull, "null"},
		{relaxed.Bool(true), relaxed.KindBool, "bool"},
		{relaxed.Int(1), relaxed.KindNumber, "number"},
		{relaxed.Str("s"), relaxed.KindString, "string"},
		{relaxed.Array(), relaxed.KindArray, "array"},
		{relaxed.Object(), relaxed.KindObject, "object"},
	}
	for _, c := range cases {
		if c.v.Kind() != c.kind {
			t.Fatalf("expected kind %v, got %v", c.kind, c.v.Kind())
		}
		if c.v.Kind().String() != c.name {
			t.Fatalf("expected kind name %q, got %q", c.name, c.v.Kind().String())
		}
	}
	var nilv *relaxed.Value
	if nilv.Kind() != relaxed.KindNull || !nilv.IsNull() {
		t.Fatalf("expected nil value to read as null")
	}
}

func TestValueAccessors(t *testing.T) {
	if b, ok := relaxed.Bool(true).AsBool(); !ok || !b {
		t.Fatalf("expected bool true, got %v ok=%v", b, ok)
	}
	if _, ok := relaxed.Int(1).AsBool(); ok {
		t.Fatalf("expected AsBool to fail on a number")
	}
	if s, ok := relaxed.Str("x").AsString(); !ok || s != "x" {
		t.Fatalf("expected string x, got %q ok=%v", s, ok)
	}
	if n, ok := relaxed.Int(23).AsNumber(); !ok || !n.IsInt() {
		t.Fatalf("expected an int number, got %v ok=%v", n, ok)
	}
	arr := relaxed.Array(relaxed.Int(1), relaxed.Int(2))
	if els, ok := arr.AsArray(); !ok || len(els) != 2 {
		t.Fatalf("expected 2 elements, got %v ok=%v", len(els), ok)
	}
	if arr.Len() != 2 {
		t.Fatalf("expected Len 2, got %d", arr.Len())
	}
}

func TestObjectKeyOrderAndDuplicates(t *testing.T) {
	v := relaxed.Object(
		relaxed.Entry("b", relaxed.Int(1)),
		relaxed.Entry("a", relaxed.Int(2)),
		relaxed.Entry("b", relaxed.Int(3)),
	)

	members, ok := v.AsObject()
	if !ok {
		t.Fatalf("expected an object")
	}
	// Members are key-ordered and the duplicate collapsed last-wins.
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
	if members[0].Key != "a" || members[1].Key != "b" {
		t.Fatalf("expected keys [a b], got [%s %s]", members[0].Key, members[1].Key)
	}
	if got := v.MaybeInt(relaxed.Field("b")).Relaxed(); got != 3 {
		t.Fatalf("expected last duplicate to win with 3, got %v", got)
	}
}

func TestValueGetIndex(t *testing.T) {
	v := relaxed.Object(
		relaxed.Entry("list", relaxed.Array(relaxed.Str("x"))),
	)

	if v.Get("list") == nil {
		t.Fatalf("expected list member")
	}
	if v.Get("nope") != nil {
		t.Fatalf("expected nil for a missing key")
	}
	if relaxed.Str("s").Get("k") != nil {
		t.Fatalf("expected nil Get on a non-object")
	}

	list := v.Get("list")
	if el := list.Index(0); el == nil {
		t.Fatalf("expected element at 0")
	} else if s, _ := el.AsString(); s != "x" {
		t.Fatalf("expected \"x\", got %q", s)
	}
	if list.Index(1) != nil || list.Index(-1) != nil {
		t.Fatalf("expected nil outside the range")
	}
	if v.Index(0) != nil {
		t.Fatalf("expected nil Index on a non-array")
	}
}

func TestValueSetAppend(t *testing.T) {
	v := relaxed.Object()
	v.Set("b", relaxed.Int(2))
	v.Set("a", relaxed.Int(1))
	v.Set("b", relaxed.Int(3)) // replace

	members, _ := v.AsObject()
	if len(members) != 2 || members[0].Key != "a" || members[1].Key != "b" {
		t.Fatalf("expected ordered members [a b], got %v", members)
	}
	if got := v.MaybeInt(relaxed.Field("b")).Relaxed(); got != 3 {
		t.Fatalf("expected replaced value 3, got %v", got)
	}

	arr := relaxed.Array()
	arr.Append(relaxed.Int(1))
	arr.Append(relaxed.Str("two"))
	if arr.Len() != 2 {
		t.Fatalf("expected 2 elements, got %d", arr.Len())
	}

	// Mutators on the wrong kind do nothing rather than panic.
	relaxed.Str("s").Set("k", relaxed.Int(1))
	relaxed.Str("s").Append(relaxed.Int(1))
}

func TestNumberClassification(t *testing.T) {
	n, ok := relaxed.Int(-5).AsNumber()
	if !ok || !n.IsInt() {
		t.Fatalf("expected int classification")
	}
	if i, ok := n.Int64(); !ok || i != -5 {
		t.Fatalf("expected -5, got %v ok=%v", i, ok)
	}
	if _, ok := n.Uint64(); ok {
		t.Fatalf("expected negative int to not read as uint")
	}

	// Small unsigned constructions classify as signed, same as parsing the
	// decimal text would.
	n, _ = relaxed.Uint(5).AsNumber()
	if !n.IsInt() {
		t.Fatalf("expected small uint to classify as int")
	}
	if u, ok := n.Uint64(); !ok || u != 5 {
		t.Fatalf("expected 5, got %v ok=%v", u, ok)
	}

	n, _ = relaxed.Uint(18446744073709551615).AsNumber()
	if !n.IsUint() {
		t.Fatalf("expected uint classification beyond the signed range")
	}
	if _, ok := n.Int64(); ok {
		t.Fatalf("expected out-of-range uint to not read as int64")
	}

	n, _ = relaxed.Float(2.5).AsNumber()
	if !n.IsFloat() || n.Float64() != 2.5 {
		t.Fatalf("expected float 2.5")
	}
}

func TestNumberString(t *testing.T) {
	cases := []struct {
		v    *relaxed.Value
		want string
	}{
		{relaxed.Int(23), "23"},
		{relaxed.Int(-7), "-7"},
		{relaxed.Uint(18446744073709551615), "18446744073709551615"},
		{relaxed.Float(2.5), "2.5"},
		{relaxed.Float(100), "100"},
	}
	for _, c := range cases {
		n, _ := c.v.AsNumber()
		if got := n.String(); got != c.want {
			t.Fatalf("expected %q, got %q", c.want, got)
		}
	}
}
