package sol

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zlib"
)

// zlibCodec wraps the inner-payload compression. SOL "data" payloads are
// plain zlib streams with no length framing.
type zlibCodec struct {
	Level int // compression level
}

const (
	ZlibBestSpeed          = zlib.BestSpeed
	ZlibBestCompression    = zlib.BestCompression
	ZlibDefaultCompression = zlib.DefaultCompression
)

func (c zlibCodec) compress(buf []byte) ([]byte, error) {
	var comp bytes.Buffer

	zw, err := zlib.NewWriterLevel(&comp, c.Level)
	if err != nil {
		return nil, err
	}
	if _, err = zw.Write(buf); err != nil {
		return nil, err
	}
	if err = zw.Close(); err != nil {
		return nil, err
	}
	return comp.Bytes(), nil
}

func (c zlibCodec) decompress(buf []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	defer zr.Close()

	var dec bytes.Buffer
	if _, err := dec.ReadFrom(zr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return dec.Bytes(), nil
}
