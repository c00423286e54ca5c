package torrent

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a metainfo document was rejected.
type ErrorKind int

const (
	NotADict ErrorKind = iota + 1
	NotAList
	MissingAnnounce
	MissingCreationDate
	MissingInfo
	MissingPrivate
	MissingName
	MissingPieceLength
	MissingPieces
	MissingFiles
	MissingFileLength
	MissingFilePath
	MissingLength
	NotANumber
	NotAString
	NotAStringList
	NotANumList // reserved: no field is a list of numbers
	MalformedPieces
)

var kindText = map[ErrorKind]string{
	NotADict:            "expected a dictionary",
	NotAList:            "expected a list",
	MissingAnnounce:     "missing announce",
	MissingCreationDate: "missing creation date",
	MissingInfo:         "missing info dictionary",
	MissingPrivate:      "missing private flag",
	MissingName:         "missing info name",
	MissingPieceLength:  "missing piece length",
	MissingPieces:       "missing pieces",
	MissingFiles:        "missing files list",
	MissingFileLength:   "missing file length",
	MissingFilePath:     "missing file path",
	MissingLength:       "missing length",
	NotANumber:          "not a number",
	NotAString:          "not a string",
	NotAStringList:      "not a list of strings",
	NotANumList:         "not a list of numbers",
	MalformedPieces:     "pieces length is not a multiple of 20",
}

func (k ErrorKind) String() string {
	if s, ok := kindText[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Coercion failures wrapped by type-mismatch errors.
var (
	ErrNotInteger    = errors.New("value is not an integer")
	ErrIntegerRange  = errors.New("integer out of range")
	ErrNotByteString = errors.New("value is not a byte string")
	ErrInvalidUTF8   = errors.New("byte string is not valid UTF-8")
	ErrNotList       = errors.New("value is not a list")
	ErrNotDict       = errors.New("value is not a dictionary")
)

// DecodeError is the single error type produced by the metainfo builders.
// Field is the dotted path of the offending key, empty for the document root.
type DecodeError struct {
	Kind  ErrorKind
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	msg := "torrent: " + e.Kind.String()
	if e.Field != "" {
		msg += fmt.Sprintf(" at %q", e.Field)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is matches any *DecodeError of the same Kind, so the exported sentinels
// below work with errors.Is regardless of Field.
func (e *DecodeError) Is(target error) bool {
	t, ok := target.(*DecodeError)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrNotADict            = &DecodeError{Kind: NotADict}
	ErrNotAList            = &DecodeError{Kind: NotAList}
	ErrMissingAnnounce     = &DecodeError{Kind: MissingAnnounce}
	ErrMissingCreationDate = &DecodeError{Kind: MissingCreationDate}
	ErrMissingInfo         = &DecodeError{Kind: MissingInfo}
	ErrMissingPrivate      = &DecodeError{Kind: MissingPrivate}
	ErrMissingName         = &DecodeError{Kind: MissingName}
	ErrMissingPieceLength  = &DecodeError{Kind: MissingPieceLength}
	ErrMissingPieces       = &DecodeError{Kind: MissingPieces}
	ErrMissingFiles        = &DecodeError{Kind: MissingFiles}
	ErrMissingFileLength   = &DecodeError{Kind: MissingFileLength}
	ErrMissingFilePath     = &DecodeError{Kind: MissingFilePath}
	ErrMissingLength       = &DecodeError{Kind: MissingLength}
	ErrNotANumber          = &DecodeError{Kind: NotANumber}
	ErrNotAString          = &DecodeError{Kind: NotAString}
	ErrNotAStringList      = &DecodeError{Kind: NotAStringList}
	ErrNotANumList         = &DecodeError{Kind: NotANumList}
	ErrMalformedPieces     = &DecodeError{Kind: MalformedPieces}
)

// within prefixes the field path of a nested builder's error with the key
// of the container it was decoded from.
func within(prefix string, err error) error {
	var de *DecodeError
	if !errors.As(err, &de) {
		return err
	}
	nested := *de
	switch {
	case nested.Field == "":
		nested.Field = prefix
	case nested.Field[0] == '[':
		nested.Field = prefix + nested.Field
	default:
		nested.Field = prefix + "." + nested.Field
	}
	return &nested
}

// ResolveError is returned when a document decodes as neither variant. It
// unwraps to the single-file error only; the multi-file attempt is kept for
// diagnostics.
type ResolveError struct {
	SingleFile error
	MultiFile  error
}

func (e *ResolveError) Error() string {
	return e.SingleFile.Error()
}

func (e *ResolveError) Unwrap() error { return e.SingleFile }
