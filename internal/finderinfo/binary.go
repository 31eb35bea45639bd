package finderinfo

import (
	"encoding/binary"
)

// Everything in the attribute is big-endian, as on HFS+.

var readU16BE = binary.BigEndian.Uint16
var readU32BE = binary.BigEndian.Uint32

func readI16BE(b []byte) int16 {
	return int16(readU16BE(b))
}

func readI32BE(b []byte) int32 {
	return int32(readU32BE(b))
}

var putU16BE = binary.BigEndian.PutUint16
var putU32BE = binary.BigEndian.PutUint32

func putI16BE(b []byte, v int16) {
	putU16BE(b, uint16(v))
}

func putI32BE(b []byte, v int32) {
	putU32BE(b, uint32(v))
}
