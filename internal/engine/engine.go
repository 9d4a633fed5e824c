// Package engine holds the token vocabulary shared between the document
// builder and the per-format sources under source/.
package engine

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token represents a streaming token with approximate input offset. Number
// payloads stay as raw text so the builder can classify them without
// precision loss.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
	Offset int64
}

// TokenSource is the minimal interface a format driver provides.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}
