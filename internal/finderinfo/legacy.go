package finderinfo

import (
	"fmt"
)

// HalfSize is the size of each of the two structures in the attribute.
const HalfSize = 16

// Kind selects how the legacy half is interpreted. It comes from filesystem
// metadata and is never guessed from the bytes.
type Kind int

const (
	KindFile Kind = iota
	KindFolder
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindFolder:
		return "folder"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts "file", "folder" and "directory".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "file":
		return KindFile, nil
	case "folder", "directory", "dir":
		return KindFolder, nil
	}
	return 0, fmt.Errorf("unknown kind %q", s)
}

// Legacy is the first 16 bytes of the attribute: either *FileInfo or
// *FolderInfo. Bytes 8-15 mean the same thing in both.
type Legacy interface {
	Kind() Kind
	Flags() FinderFlags
	SetFlags(FinderFlags)
	Location() Point
	SetLocation(Point)
	MarshalBinary() ([]byte, error)
	UnmarshalBinary([]byte) error

	put(b []byte)
	clone() Legacy
}

// FileInfo is the legacy structure of a file.
type FileInfo struct {
	FileType    OSType
	FileCreator OSType
	FinderFlags FinderFlags
	// Position of the icon in its window.
	IconLocation Point
	Reserved     [2]byte
}

func DecodeFileInfo(b []byte) (*FileInfo, error) {
	fi := &FileInfo{}
	if err := fi.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return fi, nil
}

func (fi *FileInfo) UnmarshalBinary(b []byte) error {
	if len(b) < HalfSize {
		return truncated(PartLegacy, HalfSize, len(b))
	}
	fi.FileType = readOSType(b[0:])
	fi.FileCreator = readOSType(b[4:])
	fi.FinderFlags = FinderFlags(readU16BE(b[8:]))
	fi.IconLocation = readPoint(b[10:])
	copy(fi.Reserved[:], b[14:16])
	return nil
}

func (fi *FileInfo) put(b []byte) {
	copy(b[0:], fi.FileType[:])
	copy(b[4:], fi.FileCreator[:])
	putU16BE(b[8:], uint16(fi.FinderFlags))
	fi.IconLocation.put(b[10:])
	copy(b[14:], fi.Reserved[:])
}

func (fi *FileInfo) MarshalBinary() ([]byte, error) {
	b := make([]byte, HalfSize)
	fi.put(b)
	return b, nil
}

func (fi *FileInfo) Kind() Kind             { return KindFile }
func (fi *FileInfo) Flags() FinderFlags     { return fi.FinderFlags }
func (fi *FileInfo) SetFlags(f FinderFlags) { fi.FinderFlags = f }
func (fi *FileInfo) Location() Point        { return fi.IconLocation }
func (fi *FileInfo) SetLocation(p Point)    { fi.IconLocation = p }

func (fi *FileInfo) clone() Legacy {
	c := *fi
	return &c
}

// FolderInfo is the legacy structure of a directory.
type FolderInfo struct {
	// Window the Finder opens for the folder.
	WindowBounds Rect
	FinderFlags  FinderFlags
	// Position of the folder in its parent's window.
	IconLocation Point
	Reserved     [2]byte
}

func DecodeFolderInfo(b []byte) (*FolderInfo, error) {
	fi := &FolderInfo{}
	if err := fi.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return fi, nil
}

func (fi *FolderInfo) UnmarshalBinary(b []byte) error {
	if len(b) < HalfSize {
		return truncated(PartLegacy, HalfSize, len(b))
	}
	fi.WindowBounds = readRect(b[0:])
	fi.FinderFlags = FinderFlags(readU16BE(b[8:]))
	fi.IconLocation = readPoint(b[10:])
	copy(fi.Reserved[:], b[14:16])
	return nil
}

func (fi *FolderInfo) put(b []byte) {
	fi.WindowBounds.put(b[0:])
	putU16BE(b[8:], uint16(fi.FinderFlags))
	fi.IconLocation.put(b[10:])
	copy(b[14:], fi.Reserved[:])
}

func (fi *FolderInfo) MarshalBinary() ([]byte, error) {
	b := make([]byte, HalfSize)
	fi.put(b)
	return b, nil
}

func (fi *FolderInfo) Kind() Kind             { return KindFolder }
func (fi *FolderInfo) Flags() FinderFlags     { return fi.FinderFlags }
func (fi *FolderInfo) SetFlags(f FinderFlags) { fi.FinderFlags = f }
func (fi *FolderInfo) Location() Point        { return fi.IconLocation }
func (fi *FolderInfo) SetLocation(p Point)    { fi.IconLocation = p }

func (fi *FolderInfo) clone() Legacy {
	c := *fi
	return &c
}

// NewLegacy returns a zeroed legacy structure of the given kind.
func NewLegacy(kind Kind) Legacy {
	if kind == KindFolder {
		return &FolderInfo{}
	}
	return &FileInfo{}
}

// DecodeLegacy decodes the first 16 bytes of b as the given kind.
func DecodeLegacy(kind Kind, b []byte) (Legacy, error) {
	l := NewLegacy(kind)
	if err := l.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return l, nil
}
