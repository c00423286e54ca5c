package torrent

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/reinaldorauch/rusty-tracker/pkg/bvalue"
)

// PieceHashSize is the width of one packed piece hash.
const PieceHashSize = sha1.Size

// SplitPieces cuts the packed pieces string into PieceHashSize chunks and
// renders each as 40 uppercase hex digits, in input order. A length that is
// not a multiple of PieceHashSize yields a MalformedPieces error and no
// output.
func SplitPieces(packed []byte) ([]string, error) {
	if rem := len(packed) % PieceHashSize; rem != 0 {
		return nil, &DecodeError{
			Kind: MalformedPieces,
			Err:  fmt.Errorf("%d bytes leaves %d trailing", len(packed), rem),
		}
	}

	hashes := make([]string, 0, len(packed)/PieceHashSize)
	for off := 0; off < len(packed); off += PieceHashSize {
		hashes = append(hashes, strings.ToUpper(hex.EncodeToString(packed[off:off+PieceHashSize])))
	}
	return hashes, nil
}

func toPieces(v bvalue.Value) ([]string, error) {
	packed, err := toBytes(v)
	if err != nil {
		return nil, err
	}
	return SplitPieces(packed)
}
