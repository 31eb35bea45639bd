// Package finderinfo decodes and encodes the 32-byte com.apple.FinderInfo
// extended attribute: the legacy FileInfo/FolderInfo structure followed by
// the extended structure.
//
// Decoding and encoding are exact inverses. Reserved regions are never
// interpreted or normalized.
package finderinfo

import (
	"errors"
	"io"
)

// Size is the length of the attribute payload.
const Size = 2 * HalfSize

// Record is the whole attribute. A Record with a nil Legacy reads and
// encodes as a zeroed file record.
type Record struct {
	Legacy   Legacy
	Extended ExtendedInfo
}

// NewRecord returns an all-zero record of the given kind.
func NewRecord(kind Kind) *Record {
	return &Record{Legacy: NewLegacy(kind)}
}

// Read consumes exactly Size bytes from r. Anything after them is left unread.
func Read(r io.Reader, kind Kind) (*Record, error) {
	var buf [Size]byte

	if err := readHalf(r, buf[:HalfSize], PartLegacy); err != nil {
		return nil, err
	}
	legacy, err := DecodeLegacy(kind, buf[:HalfSize])
	if err != nil {
		return nil, err
	}

	if err := readHalf(r, buf[HalfSize:], PartExtended); err != nil {
		return nil, err
	}
	rec := &Record{Legacy: legacy}
	if err := rec.Extended.UnmarshalBinary(buf[HalfSize:]); err != nil {
		return nil, err
	}
	return rec, nil
}

func readHalf(r io.Reader, b []byte, part Part) error {
	n, err := io.ReadFull(r, b)
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return truncated(part, len(b), n)
	}
	return &IOError{Op: "read " + string(part) + " finder info", Err: err}
}

// Parse decodes the first Size bytes of b.
func Parse(b []byte, kind Kind) (*Record, error) {
	legacy, err := DecodeLegacy(kind, b)
	if err != nil {
		return nil, err
	}
	rec := &Record{Legacy: legacy}
	if err := rec.Extended.UnmarshalBinary(b[HalfSize:]); err != nil {
		return nil, err
	}
	return rec, nil
}

func (rec *Record) Kind() Kind {
	return rec.legacy().Kind()
}

func (rec *Record) legacy() Legacy {
	if rec.Legacy == nil {
		return &FileInfo{}
	}
	return rec.Legacy
}

// File returns the legacy half if the record describes a file.
func (rec *Record) File() (*FileInfo, bool) {
	fi, ok := rec.Legacy.(*FileInfo)
	return fi, ok
}

// Folder returns the legacy half if the record describes a directory.
func (rec *Record) Folder() (*FolderInfo, bool) {
	fi, ok := rec.Legacy.(*FolderInfo)
	return fi, ok
}

func (rec *Record) Flags() FinderFlags {
	return rec.legacy().Flags()
}

func (rec *Record) SetFlags(f FinderFlags) {
	if rec.Legacy == nil {
		rec.Legacy = &FileInfo{}
	}
	rec.Legacy.SetFlags(f)
}

// Bytes encodes the record.
func (rec *Record) Bytes() []byte {
	b := make([]byte, Size)
	rec.legacy().put(b[:HalfSize])
	rec.Extended.put(b[HalfSize:])
	return b
}

func (rec *Record) MarshalBinary() ([]byte, error) {
	return rec.Bytes(), nil
}

func (rec *Record) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(rec.Bytes())
	if err != nil {
		return int64(n), &IOError{Op: "write finder info", Err: err}
	}
	return int64(n), nil
}

// IsZero reports whether the record encodes to all zero bytes, which is what
// the OS reports for an object without Finder metadata.
func (rec *Record) IsZero() bool {
	for _, c := range rec.Bytes() {
		if c != 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (rec *Record) Clone() *Record {
	return &Record{
		Legacy:   rec.legacy().clone(),
		Extended: rec.Extended,
	}
}
