package relaxed

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	eng "github.com/maotv/json-relaxed/internal/engine"
	sj "github.com/maotv/json-relaxed/source/json"
)

// DefaultMaxDepth bounds container nesting when ParseOpt leaves MaxDepth
// unset. Without a bound, adversarial nesting would exhaust the builder's
// stack instead of failing as an error.
const DefaultMaxDepth = 10000

// ParseOpt bundles parsing options. The zero value means defaults.
type ParseOpt struct {
	MaxDepth int   // container nesting cap; DefaultMaxDepth when zero
	MaxBytes int64 // input size cap; unlimited when zero
}

var (
	errTrailingData = errors.New("relaxed: unexpected trailing data")
	errMaxDepth     = errors.New("relaxed: max depth exceeded")
	errMaxBytes     = errors.New("relaxed: max bytes exceeded")
)

// ParseBytes parses a single JSON document into a document tree. Object
// members come back key-ordered with duplicate keys collapsed last-wins;
// numbers classify as int64, unsigned-only, or float. Anything but one
// complete document is an error.
func ParseBytes(data []byte, opts ...ParseOpt) (*Value, error) {
	opt := parseOpt(opts)
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return nil, errMaxBytes
	}
	return parseSource(sj.NewBytes(data), opt)
}

// ParseString parses a single JSON document from a string.
func ParseString(s string, opts ...ParseOpt) (*Value, error) {
	return ParseBytes([]byte(s), opts...)
}

// ParseReader parses a single JSON document from r. When MaxBytes is set the
// input is size-checked up front through a limited read, otherwise tokens
// stream straight from the reader.
func ParseReader(r io.Reader, opts ...ParseOpt) (*Value, error) {
	opt := parseOpt(opts)
	if opt.MaxBytes > 0 {
		lr := io.LimitReader(r, opt.MaxBytes+1)
		data, err := io.ReadAll(lr)
		if err != nil {
			return nil, fmt.Errorf("relaxed: %w", err)
		}
		if int64(len(data)) > opt.MaxBytes {
			return nil, errMaxBytes
		}
		return parseSource(sj.NewBytes(data), opt)
	}
	return parseSource(sj.NewReader(r), opt)
}

// UnmarshalJSON parses data into v, replacing its previous content. This lets
// a Value sit inside struct fields decoded by encoding/json or goccy.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := ParseBytes(data)
	if err != nil {
		return err
	}
	*v = *parsed
	return nil
}

func parseOpt(opts []ParseOpt) ParseOpt {
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.MaxDepth <= 0 {
		opt.MaxDepth = DefaultMaxDepth
	}
	return opt
}

func parseSource(src eng.TokenSource, opt ParseOpt) (*Value, error) {
	b := &builder{src: src, maxDepth: opt.MaxDepth}
	tok, err := src.NextToken()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("relaxed: %w", io.ErrUnexpectedEOF)
		}
		return nil, fmt.Errorf("relaxed: %w", err)
	}
	v, err := b.value(tok)
	if err != nil {
		if errors.Is(err, errMaxDepth) {
			return nil, err
		}
		return nil, wrapParseErr(err)
	}
	// A single document: the source must be exhausted now.
	if _, err := src.NextToken(); err != io.EOF {
		if err == nil {
			return nil, errTrailingData
		}
		return nil, wrapParseErr(err)
	}
	return v, nil
}

func wrapParseErr(err error) error {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("relaxed: %w", err)
}

// builder turns the token stream into a document tree.
type builder struct {
	src      eng.TokenSource
	depth    int
	maxDepth int
}

func (b *builder) value(tok eng.Token) (*Value, error) {
	switch tok.Kind {
	case eng.KindBeginObject:
		return b.object()
	case eng.KindBeginArray:
		return b.array()
	case eng.KindString:
		return Str(tok.String), nil
	case eng.KindNumber:
		return numberValue(tok.Number), nil
	case eng.KindBool:
		return Bool(tok.Bool), nil
	case eng.KindNull:
		return Null(), nil
	default:
		return nil, io.ErrUnexpectedEOF
	}
}

func (b *builder) object() (*Value, error) {
	if err := b.push(); err != nil {
		return nil, err
	}
	defer b.pop()
	obj := &Value{kind: KindObject}
	for {
		tok, err := b.src.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == eng.KindEndObject {
			return obj, nil
		}
		if tok.Kind != eng.KindKey {
			return nil, io.ErrUnexpectedEOF
		}
		key := tok.String
		vt, err := b.src.NextToken()
		if err != nil {
			return nil, err
		}
		val, err := b.value(vt)
		if err != nil {
			return nil, err
		}
		// Last-wins for duplicate keys, insertion keeps members key-ordered.
		obj.Set(key, val)
	}
}

func (b *builder) array() (*Value, error) {
	if err := b.push(); err != nil {
		return nil, err
	}
	defer b.pop()
	arr := &Value{kind: KindArray}
	for {
		tok, err := b.src.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == eng.KindEndArray {
			return arr, nil
		}
		el, err := b.value(tok)
		if err != nil {
			return nil, err
		}
		arr.arr = append(arr.arr, el)
	}
}

func (b *builder) push() error {
	b.depth++
	if b.depth > b.maxDepth {
		return errMaxDepth
	}
	return nil
}

func (b *builder) pop() { b.depth-- }

// numberValue classifies raw number text: int64 first, then the unsigned
// range beyond it, then float. Out-of-range floats saturate to ±Inf the way
// strconv reports them.
func numberValue(text string) *Value {
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return Int(i)
	}
	if u, err := strconv.ParseUint(text, 10, 64); err == nil {
		return Uint(u)
	}
	f, _ := strconv.ParseFloat(text, 64)
	return Float(f)
}
