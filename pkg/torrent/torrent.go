package torrent

import (
	"bytes"
	"fmt"

	"github.com/anacrolix/torrent/metainfo"
)

// Mode tells the two info layouts apart.
type Mode int

const (
	ModeSingleFile Mode = iota + 1
	ModeMultiFile
)

func (m Mode) String() string {
	switch m {
	case ModeSingleFile:
		return "single file"
	case ModeMultiFile:
		return "many files"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Metainfo is a decoded .torrent document. Info is either *SingleFileInfo
// or *MultiFileInfo.
type Metainfo struct {
	Announce     string     `json:"announce"`
	AnnounceList [][]string `json:"announce_list,omitempty"`
	CreatedBy    *string    `json:"created_by"`
	CreationDate uint64     `json:"creation_date"`
	Comment      *string    `json:"comment"`
	Info         Info       `json:"info"`
}

// Info is the payload of a metainfo document. It is implemented only by
// *SingleFileInfo and *MultiFileInfo.
type Info interface {
	Mode() Mode
	isInfo()
}

// SingleFileInfo describes a torrent whose payload is one file called Name.
type SingleFileInfo struct {
	Length      uint64   `json:"length"`
	IsPrivate   bool     `json:"private"`
	Name        string   `json:"name"`
	PieceLength uint64   `json:"piece_length"`
	Pieces      []string `json:"pieces"`
}

// MultiFileInfo describes a torrent whose payload is a directory called Name
// holding Files.
type MultiFileInfo struct {
	Files       []FileEntry `json:"files"`
	IsPrivate   bool        `json:"private"`
	Name        string      `json:"name"`
	PieceLength uint64      `json:"piece_length"`
	Pieces      []string    `json:"pieces"`
}

// FileEntry is one file of a multi-file torrent. Path segments are relative
// to the torrent's Name directory.
type FileEntry struct {
	Length uint64   `json:"length"`
	Path   []string `json:"path"`
}

func (*SingleFileInfo) Mode() Mode { return ModeSingleFile }
func (*MultiFileInfo) Mode() Mode  { return ModeMultiFile }

func (*SingleFileInfo) isInfo() {}
func (*MultiFileInfo) isInfo()  {}

// SingleFile returns the single-file payload, if that is what m holds.
func (m *Metainfo) SingleFile() (*SingleFileInfo, bool) {
	info, ok := m.Info.(*SingleFileInfo)
	return info, ok
}

// MultiFile returns the multi-file payload, if that is what m holds.
func (m *Metainfo) MultiFile() (*MultiFileInfo, bool) {
	info, ok := m.Info.(*MultiFileInfo)
	return info, ok
}

// Name is the suggested file or directory name of the payload.
func (m *Metainfo) Name() string {
	switch info := m.Info.(type) {
	case *SingleFileInfo:
		return info.Name
	case *MultiFileInfo:
		return info.Name
	default:
		return ""
	}
}

// TotalLength is the payload size in bytes, summed over files for a
// multi-file torrent.
func (m *Metainfo) TotalLength() uint64 {
	switch info := m.Info.(type) {
	case *SingleFileInfo:
		return info.Length
	case *MultiFileInfo:
		var total uint64
		for _, f := range info.Files {
			total += f.Length
		}
		return total
	default:
		return 0
	}
}

// PieceCount is the number of piece hashes in the info dictionary.
func (m *Metainfo) PieceCount() int {
	switch info := m.Info.(type) {
	case *SingleFileInfo:
		return len(info.Pieces)
	case *MultiFileInfo:
		return len(info.Pieces)
	default:
		return 0
	}
}

// InfoHash returns the lowercase hex SHA-1 of the raw info dictionary as it
// appears in data. It hashes the original bytes, so it is only available
// for documents read from bencode, not for decoded values.
func InfoHash(data []byte) (string, error) {
	mi, err := metainfo.Load(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("loading metainfo for info hash: %w", err)
	}
	if len(mi.InfoBytes) == 0 {
		return "", fmt.Errorf("loading metainfo for info hash: no info dictionary")
	}
	return mi.HashInfoBytes().HexString(), nil
}
