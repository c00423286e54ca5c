package torrent

import (
	"fmt"

	"github.com/reinaldorauch/rusty-tracker/pkg/bvalue"
)

// infoBuilder decodes the info dictionary of one of the two layouts.
type infoBuilder func(bvalue.Value) (Info, error)

func buildFileEntry(v bvalue.Value) (FileEntry, error) {
	d, err := toDict(v)
	if err != nil {
		return FileEntry{}, err
	}

	length, err := required(d, "length", MissingFileLength, toUint64)
	if err != nil {
		return FileEntry{}, err
	}
	// An empty path list is accepted.
	path, err := required(d, "path", MissingFilePath, toStringList)
	if err != nil {
		return FileEntry{}, err
	}

	return FileEntry{Length: length, Path: path}, nil
}

func toFileEntries(v bvalue.Value) ([]FileEntry, error) {
	list, err := toList(v)
	if err != nil {
		return nil, err
	}
	files := make([]FileEntry, 0, len(list))
	for i, item := range list {
		f, err := buildFileEntry(item)
		if err != nil {
			return nil, within(fmt.Sprintf("[%d]", i), err)
		}
		files = append(files, f)
	}
	return files, nil
}

// infoCommon holds the fields both info layouts share, decoded in a fixed
// order after the layout's discriminating key.
type infoCommon struct {
	isPrivate   bool
	name        string
	pieceLength uint64
	pieces      []string
}

func buildInfoCommon(d bvalue.Dict) (infoCommon, error) {
	private, err := required(d, "private", MissingPrivate, toUint8)
	if err != nil {
		return infoCommon{}, err
	}
	name, err := required(d, "name", MissingName, toString)
	if err != nil {
		return infoCommon{}, err
	}
	pieceLength, err := required(d, "piece length", MissingPieceLength, toUint64)
	if err != nil {
		return infoCommon{}, err
	}
	pieces, err := required(d, "pieces", MissingPieces, toPieces)
	if err != nil {
		return infoCommon{}, err
	}
	return infoCommon{
		isPrivate:   private != 0,
		name:        name,
		pieceLength: pieceLength,
		pieces:      pieces,
	}, nil
}

func buildSingleFileInfo(v bvalue.Value) (Info, error) {
	d, err := toDict(v)
	if err != nil {
		return nil, err
	}
	length, err := required(d, "length", MissingLength, toUint64)
	if err != nil {
		return nil, err
	}
	common, err := buildInfoCommon(d)
	if err != nil {
		return nil, err
	}
	return &SingleFileInfo{
		Length:      length,
		IsPrivate:   common.isPrivate,
		Name:        common.name,
		PieceLength: common.pieceLength,
		Pieces:      common.pieces,
	}, nil
}

func buildMultiFileInfo(v bvalue.Value) (Info, error) {
	d, err := toDict(v)
	if err != nil {
		return nil, err
	}
	files, err := required(d, "files", MissingFiles, toFileEntries)
	if err != nil {
		return nil, err
	}
	common, err := buildInfoCommon(d)
	if err != nil {
		return nil, err
	}
	return &MultiFileInfo{
		Files:       files,
		IsPrivate:   common.isPrivate,
		Name:        common.name,
		PieceLength: common.pieceLength,
		Pieces:      common.pieces,
	}, nil
}

// buildMetainfo decodes the document around an info payload; buildInfo
// selects the layout.
func buildMetainfo(v bvalue.Value, buildInfo infoBuilder) (*Metainfo, error) {
	d, err := toDict(v)
	if err != nil {
		return nil, err
	}

	announce, err := required(d, "announce", MissingAnnounce, toString)
	if err != nil {
		return nil, err
	}
	createdBy := optional(d, "created by", toString)
	creationDate, err := required(d, "creation date", MissingCreationDate, toUint64)
	if err != nil {
		return nil, err
	}
	info, err := required(d, "info", MissingInfo, coercion[Info](buildInfo))
	if err != nil {
		return nil, err
	}
	comment := optional(d, "comment", toString)

	var announceList [][]string
	if tiers := optional(d, "announce-list", toTierList); tiers != nil {
		announceList = *tiers
	}

	return &Metainfo{
		Announce:     announce,
		AnnounceList: announceList,
		CreatedBy:    createdBy,
		CreationDate: creationDate,
		Comment:      comment,
		Info:         info,
	}, nil
}
