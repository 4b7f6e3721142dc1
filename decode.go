package sol

import (
	"bytes"
	"encoding/base64"
	"fmt"
)

// DecodeEntry parses one base64 SOL container into a DecodedEntry. It is a
// pure function of its input; failures never carry partial results.
func DecodeEntry(key, valueB64 string) (*DecodedEntry, error) {
	raw, err := base64.StdEncoding.DecodeString(valueB64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64: %v", ErrMalformedPayload, err)
	}

	dataB64, err := extractDataString(raw)
	if err != nil {
		return nil, err
	}

	payload, err := base64.StdEncoding.DecodeString(dataB64)
	if err != nil {
		return nil, fmt.Errorf("%w: data member is not valid base64: %v", ErrMalformedPayload, err)
	}
	inner, err := zlibCodec{}.decompress(payload)
	if err != nil {
		return nil, err
	}

	profileText, _, err := decodeMarkedString(inner, 0)
	if err != nil {
		return nil, err
	}
	var profile interface{}
	if err := json.Unmarshal([]byte(profileText), &profile); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfileJSON, err)
	}

	enabled := true
	return &DecodedEntry{
		EntryKey: key,
		RawSOL: &RawSOL{
			ValueB64:    valueB64,
			BytesLength: len(raw),
			ContentHash: contentHash(raw),
		},
		OuterUDFields: &OuterFields{
			GLevel: scanInt(raw, keyGLevel),
			GCash:  scanInt(raw, keyGCash),
			GXP:    scanInt(raw, keyGXP),
			GNum:   scanInt(raw, keyGNum),
		},
		DataContainer: &DataContainer{
			Encoding:            dataEncoding,
			CompressedB64Length: len(dataB64),
			ZlibPayloadLength:   len(payload),
			DecompressedLength:  len(inner),
			InnerJSONLength:     len(profileText),
		},
		ProfileJSONText: profileText,
		Profile:         profile,
		Enabled:         &enabled,
	}, nil
}

// extractDataString locates the "data" member by scanning for its key
// bytes and parses the marked string value that follows. Scanning instead
// of walking the full member list is safe only because the producing game
// always writes this fixed flat shape with "data" as the first member.
func extractDataString(raw []byte) (string, error) {
	idx := bytes.Index(raw, keyData)
	if idx < 0 {
		return "", fmt.Errorf(`%w: no "data" member`, ErrMissingField)
	}
	s, _, err := decodeMarkedString(raw, idx+len(keyData))
	if err != nil {
		return "", err
	}
	return s, nil
}

// scanInt finds key's bytes and reads the 0x04-marked signed integer that
// follows. Absent keys, and keys not followed by an integer marker, yield
// nil: saves written before a member existed simply lack it.
func scanInt(raw, key []byte) *int {
	idx := bytes.Index(raw, key)
	if idx < 0 {
		return nil
	}
	pos := idx + len(key)
	if pos >= len(raw) || raw[pos] != markerInteger {
		return nil
	}
	n, _, err := decodeSignedInt(raw[pos+1:])
	if err != nil {
		return nil
	}
	return &n
}

// IsSOLData reports whether a base64 blob looks like a SOL container, by
// checking for the TCSO magic at its fixed offset. Exporters use this to
// skip unrelated localStorage entries.
func IsSOLData(valueB64 string) bool {
	raw, err := base64.StdEncoding.DecodeString(valueB64)
	if err != nil || len(raw) < solMagicOffset+len(solMagic) {
		return false
	}
	return bytes.Equal(raw[solMagicOffset:solMagicOffset+len(solMagic)], solMagic)
}
