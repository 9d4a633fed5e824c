package relaxed

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	j "github.com/goccy/go-json"
)

// MarshalJSON renders the tree as compact JSON. Object members are emitted
// in key order (the order they are stored in); non-finite floats cannot be
// represented and fail.
func (v *Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String returns the compact JSON encoding, or the empty string when the
// value cannot be encoded.
func (v *Value) String() string {
	b, err := v.MarshalJSON()
	if err != nil {
		return ""
	}
	return string(b)
}

func encodeValue(buf *bytes.Buffer, v *Value) error {
	switch v.Kind() {
	case KindNull:
		buf.WriteString("null")
		return nil
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
		return nil
	case KindNumber:
		if v.num.IsFloat() {
			if f := v.num.Float64(); math.IsInf(f, 0) || math.IsNaN(f) {
				return fmt.Errorf("relaxed: unsupported float value: %s", strconv.FormatFloat(f, 'g', -1, 64))
			}
		}
		buf.WriteString(v.num.String())
		return nil
	case KindString:
		return encodeString(buf, v.str)
	case KindArray:
		buf.WriteByte('[')
		for i, el := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeValue(buf, el); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	default:
		buf.WriteByte('{')
		for i, m := range v.obj {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeString(buf, m.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := encodeValue(buf, m.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	}
}

// encodeString delegates escaping to go-json.
func encodeString(buf *bytes.Buffer, s string) error {
	b, err := j.Marshal(s)
	if err != nil {
		return fmt.Errorf("relaxed: %w", err)
	}
	buf.Write(b)
	return nil
}
