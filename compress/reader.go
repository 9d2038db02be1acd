package compress

import (
	"io"

	"github.com/go-faster/city"
	"github.com/go-faster/errors"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CorruptedDataErr means that provided hash mismatch with calculated.
type CorruptedDataErr struct {
	Actual    city.U128
	Reference city.U128
	RawSize   int
	DataSize  int
}

func (c *CorruptedDataErr) Error() string {
	return "corrupted data: hash mismatch"
}

// Reader decodes compressed blocks from an io.Reader.
type Reader struct {
	reader io.Reader
	zstd   *zstd.Decoder
	data   []byte
	pos    int64
	raw    []byte
	header [headerSize]byte
}

// readBlock reads next compressed block into raw and decompresses it
// into data.
func (r *Reader) readBlock() error {
	r.pos = 0

	if _, err := io.ReadFull(r.reader, r.header[:]); err != nil {
		return errors.Wrap(err, "header")
	}

	var (
		dataSize = int(bin.Uint32(r.header[hDataSize:])) - compressHeaderSize
		rawSize  = int(bin.Uint32(r.header[hRawSize:]))
	)
	if dataSize < 0 || dataSize > maxDataSize {
		return errors.Errorf("data size should be %d < %d < %d", 0, dataSize, maxDataSize)
	}
	if rawSize < 0 || rawSize > maxBlockSize {
		return errors.Errorf("raw size should be %d < %d < %d", 0, rawSize, maxBlockSize)
	}

	r.data = append(r.data[:0], make([]byte, rawSize)...)
	r.raw = append(r.raw[:0], r.header[hMethod:]...)
	r.raw = append(r.raw, make([]byte, dataSize)...)
	if _, err := io.ReadFull(r.reader, r.raw[compressHeaderSize:]); err != nil {
		return errors.Wrap(err, "read raw")
	}

	hGot := city.U128{
		Low:  bin.Uint64(r.header[0:8]),
		High: bin.Uint64(r.header[8:16]),
	}
	if h := city.CH128(r.raw); hGot != h {
		return errors.Wrap(&CorruptedDataErr{
			Actual:    h,
			Reference: hGot,
			RawSize:   rawSize,
			DataSize:  dataSize,
		}, "mismatch")
	}

	m, ok := rawMethodTable[r.header[hMethod]]
	if !ok {
		return errors.Errorf("compression 0x%02x not implemented", r.header[hMethod])
	}
	switch m {
	case LZ4:
		n, err := lz4.UncompressBlock(r.raw[compressHeaderSize:], r.data)
		if err != nil {
			return errors.Wrap(err, "uncompress")
		}
		if n != rawSize {
			return errors.Errorf("unexpected uncompressed data size: %d (actual) != %d (got in block)", n, rawSize)
		}
	case ZSTD:
		if r.zstd == nil {
			zr, err := zstd.NewReader(nil,
				zstd.WithDecoderConcurrency(1),
				zstd.WithDecoderLowmem(true),
			)
			if err != nil {
				return errors.Wrap(err, "zstd")
			}
			r.zstd = zr
		}
		data, err := r.zstd.DecodeAll(r.raw[compressHeaderSize:], r.data[:0])
		if err != nil {
			return errors.Wrap(err, "uncompress")
		}
		if len(data) != rawSize {
			return errors.Errorf("unexpected uncompressed data size: %d (actual) != %d (got in block)", len(data), rawSize)
		}
		r.data = data
	case None:
		copy(r.data, r.raw[compressHeaderSize:])
	}

	return nil
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (n int, err error) {
	if r.pos >= int64(len(r.data)) {
		if err := r.readBlock(); err != nil {
			return 0, errors.Wrap(err, "read next block")
		}
	}
	n = copy(p, r.data[r.pos:])
	r.pos += int64(n)
	return n, nil
}

// NewReader returns new *Reader from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{reader: r}
}
