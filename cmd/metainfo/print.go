package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/reinaldorauch/rusty-tracker/pkg/torrent"
)

func printMetainfo(w io.Writer, mi *torrent.Metainfo, infoHash string, showPieces bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	row := func(label string, value interface{}) {
		fmt.Fprintf(tw, "%s:\t%v\n", label, value)
	}

	row("mode", mi.Info.Mode())
	row("name", mi.Name())
	row("announce", mi.Announce)
	for i, tier := range mi.AnnounceList {
		row(fmt.Sprintf("tier %d", i), strings.Join(tier, ", "))
	}
	if mi.CreatedBy != nil {
		row("created by", *mi.CreatedBy)
	}
	created := time.Unix(int64(mi.CreationDate), 0).UTC().Format(time.RFC3339)
	row("creation date", fmt.Sprintf("%s (%d)", created, mi.CreationDate))
	if mi.Comment != nil {
		row("comment", *mi.Comment)
	}
	if infoHash != "" {
		row("info hash", infoHash)
	}

	var pieceLength uint64
	var private bool
	var pieces []string
	switch info := mi.Info.(type) {
	case *torrent.SingleFileInfo:
		pieceLength, private, pieces = info.PieceLength, info.IsPrivate, info.Pieces
	case *torrent.MultiFileInfo:
		pieceLength, private, pieces = info.PieceLength, info.IsPrivate, info.Pieces
	}
	row("private", private)
	row("piece length", pieceLength)
	row("pieces", len(pieces))
	row("total length", mi.TotalLength())
	if err := tw.Flush(); err != nil {
		return err
	}

	if multi, ok := mi.MultiFile(); ok {
		fmt.Fprintln(w, "files:")
		for _, f := range multi.Files {
			fmt.Fprintf(w, "  %12d  %s\n", f.Length, strings.Join(f.Path, "/"))
		}
	}
	if showPieces {
		fmt.Fprintln(w, "piece hashes:")
		for i, h := range pieces {
			fmt.Fprintf(w, "  %6d  %s\n", i, h)
		}
	}
	return nil
}
