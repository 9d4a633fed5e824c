// Package yaml ingests YAML documents into the relaxed document tree, so the
// same extraction protocol works over configuration files and API payloads
// regardless of wire format.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	relaxed "github.com/maotv/json-relaxed"
)

// Parse decodes the first document of data into a document tree. An empty
// stream decodes as null.
func Parse(data []byte) (*relaxed.Value, error) {
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	return fromAny(node)
}

// ParseReader decodes the first document from r.
func ParseReader(r io.Reader) (*relaxed.Value, error) {
	var node any
	if err := yaml.NewDecoder(r).Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return relaxed.Null(), nil
		}
		return nil, err
	}
	return fromAny(node)
}

// ParseAll decodes every document of a multi-document stream (for example a
// bundle of manifests separated by "---").
func ParseAll(data []byte) ([]*relaxed.Value, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var docs []*relaxed.Value
	for {
		var node any
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		v, err := fromAny(node)
		if err != nil {
			return nil, err
		}
		docs = append(docs, v)
	}
	return docs, nil
}

// fromAny converts YAML-decoded values (which may contain map[any]any) into
// document nodes. Mapping keys are sorted by the tree itself; non-string keys
// are skipped. Timestamps render as RFC 3339 strings and !!binary payloads as
// raw strings, keeping the node kinds closed.
func fromAny(v any) (*relaxed.Value, error) {
	switch t := v.(type) {
	case nil:
		return relaxed.Null(), nil
	case bool:
		return relaxed.Bool(t), nil
	case string:
		return relaxed.Str(t), nil
	case int:
		return relaxed.Int(int64(t)), nil
	case int64:
		return relaxed.Int(t), nil
	case uint:
		return relaxed.Uint(uint64(t)), nil
	case uint64:
		return relaxed.Uint(t), nil
	case float64:
		return relaxed.Float(t), nil
	case []byte:
		return relaxed.Str(string(t)), nil
	case time.Time:
		return relaxed.Str(t.Format(time.RFC3339Nano)), nil
	case []any:
		arr := relaxed.Array()
		for _, el := range t {
			ev, err := fromAny(el)
			if err != nil {
				return nil, err
			}
			arr.Append(ev)
		}
		return arr, nil
	case map[string]any:
		obj := relaxed.Object()
		for k, mv := range t {
			ev, err := fromAny(mv)
			if err != nil {
				return nil, err
			}
			obj.Set(k, ev)
		}
		return obj, nil
	case map[any]any:
		obj := relaxed.Object()
		for k, mv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			ev, err := fromAny(mv)
			if err != nil {
				return nil, err
			}
			obj.Set(ks, ev)
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("yaml: unsupported value of type %T", v)
	}
}
