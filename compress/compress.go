// Package compress implements block compression with checksum framing.
//
// Each block is laid out as:
//
//	checksum[16] | method[1] | compressed size[4] | raw size[4] | data
//
// The checksum is CityHash128 over everything after it. Sizes are little
// endian; compressed size includes the 9 header bytes after the checksum.
package compress

import "encoding/binary"

//go:generate go run github.com/dmarkham/enumer -transform snake_upper -type Method -output method_enum.go

// Method is compression codec.
type Method byte

// Possible compression methods.
const (
	None Method = iota
	LZ4
	LZ4HC
	ZSTD
)

// Level of compression codec.
type Level uint32

const (
	checksumSize       = 16
	compressHeaderSize = 1 + 4 + 4
	headerSize         = checksumSize + compressHeaderSize

	maxBlockSize = 1024 * 1024 * 1   // 1MB
	maxDataSize  = 1024 * 1024 * 128 // 128MB

	hMethod   = 16
	hDataSize = 17
	hRawSize  = 21
)

// On-wire method bytes.
const (
	rawNone byte = 0x02
	rawLZ4  byte = 0x82
	rawZSTD byte = 0x90
)

var methodTable = map[Method]byte{
	None:  rawNone,
	LZ4:   rawLZ4,
	LZ4HC: rawLZ4,
	ZSTD:  rawZSTD,
}

var rawMethodTable = map[byte]Method{
	rawNone: None,
	rawLZ4:  LZ4,
	rawZSTD: ZSTD,
}

var bin = binary.LittleEndian
