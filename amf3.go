package sol

import "fmt"

// decodeMarkedString reads a 0x06-tagged inline AMF3 string at b[idx:] and
// returns the text together with the offset just past it.
func decodeMarkedString(b []byte, idx int) (string, int, error) {
	if idx >= len(b) {
		return "", 0, fmt.Errorf("reading string marker at offset %d: %w", idx, ErrBufferUnderrun)
	}
	if b[idx] != markerString {
		return "", 0, fmt.Errorf("expected string marker 0x06 at offset %d, got %#02x: %w", idx, b[idx], ErrBadTypeMarker)
	}
	return decodeStringPayload(b, idx+1)
}

// decodeStringPayload reads the length-prefixed UTF-8 payload of an inline
// string, without a marker byte. Bit 0 of the length U29 must be set; a
// clear bit means a string-table reference, which this container never
// uses.
func decodeStringPayload(b []byte, idx int) (string, int, error) {
	u, sz, err := u29decode(b[idx:])
	if err != nil {
		return "", 0, err
	}
	if u&1 == 0 {
		return "", 0, ErrUnsupportedReference
	}
	start := idx + sz
	end := start + u>>1
	if end > len(b) {
		return "", 0, fmt.Errorf("string of %d bytes at offset %d exceeds buffer: %w", u>>1, start, ErrBufferUnderrun)
	}
	return string(b[start:end]), end, nil
}

// appendString appends s as an AMF3 inline string, optionally preceded by
// the 0x06 marker. Unmarked strings are used for member key names.
func appendString(by []byte, s string, marked bool) ([]byte, error) {
	if marked {
		by = append(by, markerString)
	}
	by, err := u29encode(by, len(s)<<1|1)
	if err != nil {
		return nil, fmt.Errorf("string of %d bytes: %w", len(s), err)
	}
	return append(by, s...), nil
}

// decodeSignedInt reads the U29 payload of an integer (marker already
// consumed) and interprets it as 29-bit two's-complement.
func decodeSignedInt(b []byte) (int, int, error) {
	u, sz, err := u29decode(b)
	if err != nil {
		return 0, 0, err
	}
	if u&amf3SignBit != 0 {
		u -= amf3IntBias
	}
	return u, sz, nil
}

// appendInt appends the 0x04 marker followed by the biased U29 form of n.
func appendInt(by []byte, n int) ([]byte, error) {
	if n < amf3IntMin || n > amf3IntMax {
		return nil, fmt.Errorf("integer %d outside AMF3 range: %w", n, ErrValueOutOfRange)
	}
	if n < 0 {
		n += amf3IntBias
	}
	return u29encode(append(by, markerInteger), n)
}
