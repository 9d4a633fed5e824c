package relaxed

// Key selects a child node during extraction. It is a closed two-variant
// union: Field selects an object member by key, Index selects an array
// element by position. A selector of the wrong variant for the node's kind
// selects nothing, which every accessor reports as the null state.
type Key interface {
	lookup(v *Value) *Value
}

// Field selects an object member by key.
type Field string

// Index selects an array element by position. Negative positions select
// nothing.
type Index int

func (f Field) lookup(v *Value) *Value { return v.Get(string(f)) }

func (i Index) lookup(v *Value) *Value { return v.Index(int(i)) }

var (
	_ Key = Field("")
	_ Key = Index(0)
)
