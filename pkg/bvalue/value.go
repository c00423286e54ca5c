// Package bvalue is the untyped bencode value tree consumed by the metainfo
// decoder. A Value is exactly one of ByteString, Integer, List or Dict; the
// set is closed by an unexported method so consumers can switch over it
// exhaustively.
package bvalue

import "fmt"

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindByteString Kind = iota + 1 // raw bytes, not necessarily UTF-8
	KindInteger                    // signed 64-bit integer
	KindList                       // ordered sequence of values
	KindDict                       // values keyed by byte-string keys
)

func (k Kind) String() string {
	switch k {
	case KindByteString:
		return "byte string"
	case KindInteger:
		return "integer"
	case KindList:
		return "list"
	case KindDict:
		return "dictionary"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is a node of the tree.
type Value interface {
	Kind() Kind
	isValue()
}

// ByteString holds raw bytes. It is not necessarily valid UTF-8.
type ByteString []byte

// Integer holds a bencoded integer.
type Integer int64

// List holds an ordered sequence of values.
type List []Value

// Dict maps byte-string keys to values. Key order carries no meaning here.
type Dict map[string]Value

func (ByteString) Kind() Kind { return KindByteString }
func (Integer) Kind() Kind    { return KindInteger }
func (List) Kind() Kind       { return KindList }
func (Dict) Kind() Kind       { return KindDict }

func (ByteString) isValue() {}
func (Integer) isValue()    {}
func (List) isValue()       {}
func (Dict) isValue()       {}

// Get returns the child stored under key, if any.
func (d Dict) Get(key string) (Value, bool) {
	v, ok := d[key]
	return v, ok
}
