package sol

// Envelope format identifiers shared with the external save tooling.
const (
	// EditorFormat marks the hand-maintained save-editor input envelope.
	EditorFormat = "bloonsbench-save-editor.v1"
	// DecodedFormat marks the decoded document this package emits and
	// later re-encodes.
	DecodedFormat = "bloonsbench-sol-decoded.v1"
)

// AMF3 type markers. The format defines many more, but the one container
// shape this package supports only ever carries strings and integers.
const (
	markerInteger = 0x04
	markerString  = 0x06
)

// U29 and signed-integer bounds.
const (
	u29Max      = 0x1fffffff
	amf3IntMin  = -0x10000000
	amf3IntMax  = 0x0fffffff
	amf3IntBias = 0x20000000
	amf3SignBit = 0x10000000
)

// Container framing, taken from captured saves of the one known producer.
var (
	solMagic        = []byte("TCSO")
	solFormatMarker = []byte{0x00, 0xbf}
	solVersion      = []byte{0x00, 0x04}
	solReserved     = []byte{0x00, 0x00, 0x00, 0x00}
	solPostName     = []byte{0x00, 0x00, 0x00, 0x03}
	solClassDesc    = []byte{0x05, 'u', 'd', 0x0a, 0x0b, 0x01}
	solTrailer      = []byte{0x01, 0x00}
)

// solMagicOffset is where "TCSO" sits inside the raw container, past the
// 2-byte format marker and the 4-byte big-endian body length.
const solMagicOffset = 6

// Member keys of the fixed flat object the game persists.
var (
	keyData   = []byte("data")
	keyGLevel = []byte("glevel")
	keyGCash  = []byte("gcash")
	keyGXP    = []byte("gxp")
	keyGNum   = []byte("gnum")
)

// dataEncoding describes the nesting of the "data" member in decode output.
const dataEncoding = "base64(zlib(amf3-string(json)))"
