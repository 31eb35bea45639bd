package finderinfo

// ExtendedInfo is the second 16 bytes of the attribute. The reserved regions
// are kept as raw bytes and written back untouched.
type ExtendedInfo struct {
	// Reserved for files. Folders keep their scroll position in the first
	// four bytes, see ScrollPosition.
	Reserved1     [8]byte
	ExtendedFlags ExtendedFinderFlags
	Reserved2     [2]byte
	// Directory ID of the folder the item was moved out of onto the desktop.
	PutAwayFolderID int32
}

func DecodeExtendedInfo(b []byte) (*ExtendedInfo, error) {
	xi := &ExtendedInfo{}
	if err := xi.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return xi, nil
}

func (xi *ExtendedInfo) UnmarshalBinary(b []byte) error {
	if len(b) < HalfSize {
		return truncated(PartExtended, HalfSize, len(b))
	}
	copy(xi.Reserved1[:], b[0:8])
	xi.ExtendedFlags = ExtendedFinderFlags(readU16BE(b[8:]))
	copy(xi.Reserved2[:], b[10:12])
	xi.PutAwayFolderID = readI32BE(b[12:])
	return nil
}

func (xi *ExtendedInfo) put(b []byte) {
	copy(b[0:], xi.Reserved1[:])
	putU16BE(b[8:], uint16(xi.ExtendedFlags))
	copy(b[10:], xi.Reserved2[:])
	putI32BE(b[12:], xi.PutAwayFolderID)
}

func (xi *ExtendedInfo) MarshalBinary() ([]byte, error) {
	b := make([]byte, HalfSize)
	xi.put(b)
	return b, nil
}

// ScrollPosition reads the folder scroll position from Reserved1.
func (xi *ExtendedInfo) ScrollPosition() Point {
	return readPoint(xi.Reserved1[0:4])
}

func (xi *ExtendedInfo) SetScrollPosition(p Point) {
	p.put(xi.Reserved1[0:4])
}
