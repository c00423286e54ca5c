package torrent

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
)

func TestSplitPieces(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  []string
	}{
		{
			name:  "empty",
			input: []byte{},
			want:  []string{},
		},
		{
			name:  "one zero hash",
			input: make([]byte, 20),
			want:  []string{"0000000000000000000000000000000000000000"},
		},
		{
			name: "two hashes keep order",
			input: append(
				bytes.Repeat([]byte{0xab}, 20),
				bytes.Repeat([]byte{0x01}, 20)...,
			),
			want: []string{
				strings.Repeat("AB", 20),
				strings.Repeat("01", 20),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitPieces(tt.input)
			if err != nil {
				t.Fatalf("SplitPieces: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("SplitPieces returned %d hashes, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("hash %d = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSplitPiecesRoundTrip(t *testing.T) {
	packed := make([]byte, 20*5)
	for i := range packed {
		packed[i] = byte(i * 7)
	}

	hashes, err := SplitPieces(packed)
	if err != nil {
		t.Fatalf("SplitPieces: %v", err)
	}
	if len(hashes) != 5 {
		t.Fatalf("SplitPieces returned %d hashes, want 5", len(hashes))
	}
	for i, h := range hashes {
		if len(h) != 40 {
			t.Errorf("hash %d has length %d, want 40", i, len(h))
		}
		if h != strings.ToUpper(h) {
			t.Errorf("hash %d = %s is not uppercase", i, h)
		}
		raw, err := hex.DecodeString(h)
		if err != nil {
			t.Fatalf("hash %d: %v", i, err)
		}
		if !bytes.Equal(raw, packed[i*20:(i+1)*20]) {
			t.Errorf("hash %d decodes to %x, want %x", i, raw, packed[i*20:(i+1)*20])
		}
	}
}

func TestSplitPiecesMalformed(t *testing.T) {
	for _, n := range []int{1, 19, 21, 39, 41} {
		got, err := SplitPieces(make([]byte, n))
		if !errors.Is(err, ErrMalformedPieces) {
			t.Errorf("SplitPieces(%d bytes) error = %v, want ErrMalformedPieces", n, err)
		}
		if got != nil {
			t.Errorf("SplitPieces(%d bytes) returned partial output %v", n, got)
		}
	}
}
