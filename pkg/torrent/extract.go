package torrent

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/reinaldorauch/rusty-tracker/pkg/bvalue"
)

// coercion turns one tree node into a typed value. On failure it returns a
// *DecodeError carrying its type-mismatch kind; the caller fills in Field.
type coercion[T any] func(bvalue.Value) (T, error)

// required looks up key in d and coerces it. A missing key is reported as
// missing; a coercion failure is propagated.
func required[T any](d bvalue.Dict, key string, missing ErrorKind, coerce coercion[T]) (T, error) {
	var zero T
	v, ok := d.Get(key)
	if !ok {
		return zero, &DecodeError{Kind: missing, Field: key}
	}
	out, err := coerce(v)
	if err != nil {
		return zero, within(key, err)
	}
	return out, nil
}

// optional looks up key in d and coerces it. Both an absent key and a value
// that fails coercion resolve to nil: optional fields never fail a decode.
func optional[T any](d bvalue.Dict, key string, coerce coercion[T]) *T {
	v, ok := d.Get(key)
	if !ok {
		return nil
	}
	out, err := coerce(v)
	if err != nil {
		return nil
	}
	return &out
}

func mismatch(kind ErrorKind, cause error) error {
	return &DecodeError{Kind: kind, Err: cause}
}

func describe(v bvalue.Value) string {
	if v == nil {
		return "nothing"
	}
	return v.Kind().String()
}

func toUint64(v bvalue.Value) (uint64, error) {
	switch n := v.(type) {
	case bvalue.Integer:
		if n < 0 {
			return 0, mismatch(NotANumber, fmt.Errorf("%w: %d is negative", ErrIntegerRange, int64(n)))
		}
		return uint64(n), nil
	default:
		return 0, mismatch(NotANumber, fmt.Errorf("%w: found %s", ErrNotInteger, describe(v)))
	}
}

func toUint8(v bvalue.Value) (uint8, error) {
	n, err := toUint64(v)
	if err != nil {
		return 0, err
	}
	if n > math.MaxUint8 {
		return 0, mismatch(NotANumber, fmt.Errorf("%w: %d does not fit in 8 bits", ErrIntegerRange, n))
	}
	return uint8(n), nil
}

func toString(v bvalue.Value) (string, error) {
	switch s := v.(type) {
	case bvalue.ByteString:
		if !utf8.Valid(s) {
			return "", mismatch(NotAString, ErrInvalidUTF8)
		}
		return string(s), nil
	default:
		return "", mismatch(NotAString, fmt.Errorf("%w: found %s", ErrNotByteString, describe(v)))
	}
}

func toBytes(v bvalue.Value) ([]byte, error) {
	s, ok := v.(bvalue.ByteString)
	if !ok {
		return nil, mismatch(NotAString, fmt.Errorf("%w: found %s", ErrNotByteString, describe(v)))
	}
	return s, nil
}

func toList(v bvalue.Value) (bvalue.List, error) {
	l, ok := v.(bvalue.List)
	if !ok {
		return nil, mismatch(NotAList, fmt.Errorf("%w: found %s", ErrNotList, describe(v)))
	}
	return l, nil
}

func toDict(v bvalue.Value) (bvalue.Dict, error) {
	d, ok := v.(bvalue.Dict)
	if !ok {
		return nil, mismatch(NotADict, fmt.Errorf("%w: found %s", ErrNotDict, describe(v)))
	}
	return d, nil
}

// listOf coerces every element of a list, reporting the first bad element
// under kind.
func listOf[T any](kind ErrorKind, elem coercion[T]) coercion[[]T] {
	return func(v bvalue.Value) ([]T, error) {
		l, ok := v.(bvalue.List)
		if !ok {
			return nil, mismatch(kind, fmt.Errorf("%w: found %s", ErrNotList, describe(v)))
		}
		out := make([]T, 0, len(l))
		for i, item := range l {
			t, err := elem(item)
			if err != nil {
				return nil, mismatch(kind, fmt.Errorf("element %d: %w", i, err))
			}
			out = append(out, t)
		}
		return out, nil
	}
}

var (
	toStringList = listOf(NotAStringList, toString)
	toTierList   = listOf(NotAList, toStringList)
)
