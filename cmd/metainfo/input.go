package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/reinaldorauch/rusty-tracker/pkg/bvalue"
)

// torrentInput is a parsed tree together with the bytes it was parsed from,
// which the info hash needs.
type torrentInput struct {
	root bvalue.Value
	raw  []byte
}

func readTorrent(path string, stdin io.Reader) (*torrentInput, error) {
	var r io.Reader = stdin
	name := "standard input"
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
		name = path
	}

	var raw bytes.Buffer
	root, err := bvalue.ParseReader(io.TeeReader(r, &raw))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return &torrentInput{root: root, raw: raw.Bytes()}, nil
}
