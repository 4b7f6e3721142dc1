package sol

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"strings"
)

// Encoder constructs fresh SOL containers from decoded fields. Output is
// well-formed but not guaranteed byte-identical to an original capture;
// callers needing identity must reuse captured raw bytes instead.
type Encoder struct {
	// ZlibLevel overrides the inner-payload compression level.
	// Zero selects zlib's default level.
	ZlibLevel int
}

func (e *Encoder) level() int {
	if e.ZlibLevel == 0 {
		return ZlibDefaultCompression
	}
	return e.ZlibLevel
}

// EncodeEntry builds the base64 container for one entry. The final path
// segment of key becomes the contained object's name. Nil outer fields
// encode as zero.
func (e *Encoder) EncodeEntry(key string, profile interface{}, fields *OuterFields) (string, error) {
	text, err := json.Marshal(profile)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	inner, err := appendString(nil, string(text), true)
	if err != nil {
		return "", err
	}
	compressed, err := zlibCodec{Level: e.level()}.compress(inner)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	dataB64 := base64.StdEncoding.EncodeToString(compressed)

	name := key
	if i := strings.LastIndexByte(key, '/'); i >= 0 {
		name = key[i+1:]
	}
	if len(name) > 0xffff {
		return "", fmt.Errorf("object name of %d bytes: %w", len(name), ErrValueOutOfRange)
	}

	body := make([]byte, 0, len(dataB64)+len(name)+64)
	body = append(body, solMagic...)
	body = append(body, solVersion...)
	body = append(body, solReserved...)
	body = binary.BigEndian.AppendUint16(body, uint16(len(name)))
	body = append(body, name...)
	body = append(body, solPostName...)
	body = append(body, solClassDesc...)

	if body, err = appendString(body, "data", false); err != nil {
		return "", err
	}
	if body, err = appendString(body, dataB64, true); err != nil {
		return "", err
	}

	if fields == nil {
		fields = &OuterFields{}
	}
	// Canonical member order: data, glevel, gcash, gxp, gnum.
	members := []struct {
		key []byte
		val *int
	}{
		{keyGLevel, fields.GLevel},
		{keyGCash, fields.GCash},
		{keyGXP, fields.GXP},
		{keyGNum, fields.GNum},
	}
	for _, m := range members {
		if body, err = appendString(body, string(m.key), false); err != nil {
			return "", err
		}
		n := 0
		if m.val != nil {
			n = *m.val
		}
		if body, err = appendInt(body, n); err != nil {
			return "", fmt.Errorf("member %s: %w", m.key, err)
		}
	}
	body = append(body, solTrailer...)

	out := make([]byte, 0, len(body)+6)
	out = append(out, solFormatMarker...)
	out = binary.BigEndian.AppendUint32(out, uint32(len(body)))
	out = append(out, body...)
	return base64.StdEncoding.EncodeToString(out), nil
}
