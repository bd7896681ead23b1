package boundary

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// ErrMalformedFile indicates truncated or inconsistent boundary data.
var ErrMalformedFile = errors.New("boundary: malformed file")

const (
	// magicNumber identifies boundary matrix files (ASCII: "TOP0").
	magicNumber = 0x544F5030
	// formatVersion is the current file format version.
	formatVersion = 0x00010000
)

// Codec selects the payload compression of binary files.
type Codec uint8

const (
	// CodecNone stores the payload uncompressed; saves round-trip
	// byte-for-byte.
	CodecNone Codec = iota
	// CodecZstd compresses the payload with Zstandard.
	CodecZstd
	// CodecLZ4 compresses the payload with LZ4.
	CodecLZ4
)

// String returns the codec name.
func (c Codec) String() string {
	switch c {
	case CodecNone:
		return "None"
	case CodecZstd:
		return "Zstd"
	case CodecLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// fileHeader is the fixed-size little-endian header of binary matrix files.
type fileHeader struct {
	Magic   uint32
	Version uint32
	Codec   uint8
	Padding [3]byte
	NumCols int64
}

// SaveOptions configures binary saves.
type SaveOptions struct {
	// Codec is the payload compression. Default: CodecNone.
	Codec Codec
}

// SaveBinary writes the matrix in binary form: the header followed by
// per-column records (dimension, entry count, row indices), all int64
// little-endian. The payload after the header is compressed according to
// the configured codec.
func (m *Matrix) SaveBinary(w io.Writer, optFns ...func(o *SaveOptions)) error {
	opts := SaveOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}

	header := fileHeader{
		Magic:   magicNumber,
		Version: formatVersion,
		Codec:   uint8(opts.Codec),
		NumCols: m.NumColumns(),
	}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return err
	}

	payload, closePayload, err := newPayloadWriter(w, opts.Codec)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(payload)
	for i := int64(0); i < m.NumColumns(); i++ {
		col := m.store.GetColumn(i)
		record := make([]int64, 0, len(col)+2)
		record = append(record, m.dims[i], int64(len(col)))
		record = append(record, col...)
		if err := binary.Write(bw, binary.LittleEndian, record); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return closePayload()
}

// LoadBinary replaces the matrix content from binary form.
func (m *Matrix) LoadBinary(r io.Reader) error {
	var header fileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("%w: reading header: %w", ErrMalformedFile, err)
	}
	if header.Magic != magicNumber {
		return fmt.Errorf("%w: bad magic 0x%08x", ErrMalformedFile, header.Magic)
	}
	if header.Version != formatVersion {
		return fmt.Errorf("%w: unsupported version 0x%08x", ErrMalformedFile, header.Version)
	}
	if header.NumCols < 0 {
		return fmt.Errorf("%w: negative column count %d", ErrMalformedFile, header.NumCols)
	}

	payload, closePayload, err := newPayloadReader(r, Codec(header.Codec))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedFile, err)
	}
	defer closePayload()

	br := bufio.NewReader(payload)
	cols := make([][]int64, 0, header.NumCols)
	dims := make([]int64, 0, header.NumCols)
	for i := int64(0); i < header.NumCols; i++ {
		var meta [2]int64
		if err := binary.Read(br, binary.LittleEndian, &meta); err != nil {
			return fmt.Errorf("%w: reading column %d of %d: %w", ErrMalformedFile, i, header.NumCols, err)
		}
		dim, count := meta[0], meta[1]
		if count < 0 || count > header.NumCols {
			return fmt.Errorf("%w: column %d: invalid entry count %d", ErrMalformedFile, i, count)
		}
		col := make([]int64, count)
		if err := binary.Read(br, binary.LittleEndian, col); err != nil {
			return fmt.Errorf("%w: reading column %d entries: %w", ErrMalformedFile, i, err)
		}
		dims = append(dims, dim)
		cols = append(cols, col)
	}

	return m.Load(cols, dims)
}

// SaveBinaryFile saves the matrix to a binary file.
func (m *Matrix) SaveBinaryFile(name string, optFns ...func(o *SaveOptions)) error {
	f, err := os.Create(name) //nolint:gosec // G304: path is caller-provided
	if err != nil {
		return err
	}
	if err := m.SaveBinary(f, optFns...); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// LoadBinaryFile loads the matrix from a binary file.
func (m *Matrix) LoadBinaryFile(name string) error {
	f, err := os.Open(name) //nolint:gosec // G304: path is caller-provided
	if err != nil {
		return err
	}
	defer f.Close()
	return m.LoadBinary(f)
}

func newPayloadWriter(w io.Writer, codec Codec) (io.Writer, func() error, error) {
	switch codec {
	case CodecNone:
		return w, func() error { return nil }, nil
	case CodecZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, nil, err
		}
		return zw, zw.Close, nil
	case CodecLZ4:
		lw := lz4.NewWriter(w)
		return lw, lw.Close, nil
	default:
		return nil, nil, fmt.Errorf("boundary: unknown codec %d", codec)
	}
}

func newPayloadReader(r io.Reader, codec Codec) (io.Reader, func(), error) {
	switch codec {
	case CodecNone:
		return r, func() {}, nil
	case CodecZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return zr, zr.Close, nil
	case CodecLZ4:
		return lz4.NewReader(r), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown codec %d", codec)
	}
}
