package torrent

import (
	"fmt"

	"github.com/reinaldorauch/rusty-tracker/pkg/bvalue"
)

// Decode resolves a value tree into a metainfo document. The multi-file
// layout is tried first; if it fails the single-file layout is tried, and
// if that fails too the single-file error is returned inside a
// *ResolveError.
func Decode(root bvalue.Value) (*Metainfo, error) {
	multi, multiErr := buildMetainfo(root, buildMultiFileInfo)
	if multiErr == nil {
		return multi, nil
	}

	single, singleErr := buildMetainfo(root, buildSingleFileInfo)
	if singleErr == nil {
		return single, nil
	}

	return nil, &ResolveError{SingleFile: singleErr, MultiFile: multiErr}
}

// DecodeBytes parses bencoded data and decodes it.
func DecodeBytes(data []byte) (*Metainfo, error) {
	root, err := bvalue.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode torrent file: %w", err)
	}
	return Decode(root)
}
