// SPDX-License-Identifier: MIT

package tableio

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec wraps a byte stream with a compression format. The text format
// inside is always the same comma-separated rows.
type Codec interface {
	// Name returns a short identifier ("plain", "zstd", "gzip", "lz4").
	Name() string
	// NewReader returns a decompressing reader over r; Close releases codec state only.
	NewReader(r io.Reader) (io.ReadCloser, error)
	// NewWriter returns a compressing writer over w; Close flushes the frame but not w.
	NewWriter(w io.Writer) (io.WriteCloser, error)
}

var (
	_ Codec = PlainCodec{}
	_ Codec = ZstdCodec{}
	_ Codec = GzipCodec{}
	_ Codec = LZ4Codec{}
)

// CodecFor picks a codec from the file extension:
// .zst → zstd, .gz → gzip, .lz4 → lz4, anything else → plain text.
func CodecFor(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return ZstdCodec{}
	case ".gz":
		return GzipCodec{}
	case ".lz4":
		return LZ4Codec{}
	default:
		return PlainCodec{}
	}
}

// PlainCodec passes bytes through unchanged.
type PlainCodec struct{}

func (PlainCodec) Name() string { return "plain" }

func (PlainCodec) NewReader(r io.Reader) (io.ReadCloser, error) { return io.NopCloser(r), nil }

func (PlainCodec) NewWriter(w io.Writer) (io.WriteCloser, error) { return nopWriteCloser{w}, nil }

// ZstdCodec streams Zstandard frames via klauspost/compress/zstd.
type ZstdCodec struct{}

func (ZstdCodec) Name() string { return "zstd" }

func (ZstdCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	// Single-threaded decoding keeps memory predictable for small tables.
	dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}

	return dec.IOReadCloser(), nil
}

func (ZstdCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

// GzipCodec streams gzip via klauspost/compress/gzip.
type GzipCodec struct{}

func (GzipCodec) Name() string { return "gzip" }

func (GzipCodec) NewReader(r io.Reader) (io.ReadCloser, error) { return gzip.NewReader(r) }

func (GzipCodec) NewWriter(w io.Writer) (io.WriteCloser, error) { return gzip.NewWriter(w), nil }

// LZ4Codec streams LZ4 frames via pierrec/lz4.
type LZ4Codec struct{}

func (LZ4Codec) Name() string { return "lz4" }

func (LZ4Codec) NewReader(r io.Reader) (io.ReadCloser, error) { return io.NopCloser(lz4.NewReader(r)), nil }

func (LZ4Codec) NewWriter(w io.Writer) (io.WriteCloser, error) { return lz4.NewWriter(w), nil }

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
