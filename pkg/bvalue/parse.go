package bvalue

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/zeebo/bencode"
)

// ErrEmpty is returned when there is no input to parse.
var ErrEmpty = errors.New("bvalue: empty input")

// SyntaxError reports input that is not well-formed bencode.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("bvalue: malformed bencode: %v", e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Parse decodes a complete bencoded document held in memory.
func Parse(data []byte) (Value, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}

	var raw interface{}
	if err := bencode.NewDecoder(bytes.NewReader(data)).Decode(&raw); err != nil {
		return nil, &SyntaxError{Err: err}
	}
	return FromNative(raw)
}

// ParseReader decodes the first bencoded value read from r. Bytes past the
// end of that value may still be consumed from r.
func ParseReader(r io.Reader) (Value, error) {
	br := bufio.NewReader(r)
	if _, err := br.Peek(1); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, err
	}

	var raw interface{}
	if err := bencode.NewDecoder(br).Decode(&raw); err != nil {
		return nil, &SyntaxError{Err: err}
	}
	return FromNative(raw)
}

// FromNative converts the generic Go representation produced by bencode
// libraries (string, int64, []interface{}, map[string]interface{}) into a
// Value tree.
func FromNative(raw interface{}) (Value, error) {
	switch v := raw.(type) {
	case string:
		return ByteString(v), nil
	case []byte:
		return ByteString(append([]byte(nil), v...)), nil
	case int64:
		return Integer(v), nil
	case int:
		return Integer(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return nil, fmt.Errorf("bvalue: integer %d overflows int64", v)
		}
		return Integer(v), nil
	case []interface{}:
		list := make(List, 0, len(v))
		for i, item := range v {
			child, err := FromNative(item)
			if err != nil {
				return nil, fmt.Errorf("list element %d: %w", i, err)
			}
			list = append(list, child)
		}
		return list, nil
	case map[string]interface{}:
		dict := make(Dict, len(v))
		for key, item := range v {
			child, err := FromNative(item)
			if err != nil {
				return nil, fmt.Errorf("dictionary key %q: %w", key, err)
			}
			dict[key] = child
		}
		return dict, nil
	default:
		return nil, fmt.Errorf("bvalue: unsupported native type %T", raw)
	}
}
