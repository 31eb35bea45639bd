package finderinfo

import (
	"fmt"
	"unicode"

	"golang.org/x/text/encoding/charmap"
)

// OSType is a four byte type or creator code. The bytes are stored as is.
type OSType [4]byte

var (
	SymlinkFileType = OSType{'s', 'l', 'n', 'k'}
	SymlinkCreator  = OSType{'r', 'h', 'a', 'p'}
)

func readOSType(b []byte) OSType {
	var t OSType
	copy(t[:], b[:4])
	return t
}

// IsZero reports whether all four bytes are zero.
func (t OSType) IsZero() bool {
	return t == OSType{}
}

func (t OSType) Uint32() uint32 {
	return readU32BE(t[:])
}

// String decodes the code as Mac OS Roman. Codes with control characters are
// rendered in hex.
func (t OSType) String() string {
	s, err := charmap.Macintosh.NewDecoder().Bytes(t[:])
	if err != nil {
		return fmt.Sprintf("0x%08x", t.Uint32())
	}
	for _, r := range string(s) {
		if !unicode.IsPrint(r) {
			return fmt.Sprintf("0x%08x", t.Uint32())
		}
	}
	return string(s)
}

// ParseOSType encodes s as Mac OS Roman. The result must be exactly four bytes.
func ParseOSType(s string) (OSType, error) {
	b, err := charmap.Macintosh.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return OSType{}, fmt.Errorf("invalid four-character code %q: %w", s, err)
	}
	if len(b) != 4 {
		return OSType{}, fmt.Errorf("four-character code %q must be 4 bytes, got %d", s, len(b))
	}
	return readOSType(b), nil
}
