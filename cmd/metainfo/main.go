// metainfo decodes a .torrent file and prints what it describes.
//
// Usage:
//
//	metainfo [flags] <file.torrent | ->
//
// A path of "-" reads the torrent from standard input.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/reinaldorauch/rusty-tracker/pkg/config"
	"github.com/reinaldorauch/rusty-tracker/pkg/torrent"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	jsonOutput bool
	showPieces bool
	noInfoHash bool
	logLevel   string
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	var opts options
	flagSet := pflag.NewFlagSet("metainfo", pflag.ContinueOnError)
	flagSet.BoolVar(&opts.jsonOutput, "json", false, "print the decoded document as JSON")
	flagSet.BoolVar(&opts.showPieces, "pieces", false, "list every piece hash")
	flagSet.BoolVar(&opts.noInfoHash, "no-infohash", false, "skip computing the info hash")
	flagSet.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: metainfo [flags] <file.torrent | ->\n\nFlags:\n")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if flagSet.NArg() != 1 {
		flagSet.Usage()
		return errors.New("expected exactly one torrent path")
	}

	level, err := config.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	doc, err := readTorrent(flagSet.Arg(0), stdin)
	if err != nil {
		return err
	}
	logger.Debug("read torrent", "path", flagSet.Arg(0), "bytes", len(doc.raw))

	mi, err := torrent.Decode(doc.root)
	if err != nil {
		var re *torrent.ResolveError
		if errors.As(err, &re) {
			logger.Debug("multi-file layout rejected", "error", re.MultiFile)
		}
		return fmt.Errorf("invalid metainfo file: %w", err)
	}

	var infoHash string
	if !opts.noInfoHash {
		infoHash, err = torrent.InfoHash(doc.raw)
		if err != nil {
			logger.Warn("could not compute info hash", "error", err)
		}
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(struct {
			Mode     string            `json:"mode"`
			InfoHash string            `json:"info_hash,omitempty"`
			Metainfo *torrent.Metainfo `json:"metainfo"`
		}{mi.Info.Mode().String(), infoHash, mi})
	}
	return printMetainfo(stdout, mi, infoHash, opts.showPieces)
}
