package sol

import jsoniter "github.com/json-iterator/go"

// json is the package-wide configuration: compact output, no HTML escaping
// (profiles embed URLs), sorted object keys and textual numbers so
// canonical comparison stays stable across decode/re-encode cycles.
var json = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	UseNumber:              true,
	ValidateJsonRawMessage: true,
}.Froze()

// SaveEntry is one localStorage save slot as loaded from an input file.
type SaveEntry struct {
	Key      string                 `json:"key"`
	ValueB64 string                 `json:"value_b64"`
	Enabled  bool                   `json:"enabled"`
	Meta     map[string]interface{} `json:"meta,omitempty"`
}

// RawSOL carries the captured container bytes and their fingerprint.
type RawSOL struct {
	ValueB64    string `json:"value_b64"`
	BytesLength int    `json:"bytes_length"`
	ContentHash string `json:"content_hash,omitempty"`
}

// OuterFields are the four integer members stored next to "data" in the
// container. A nil field means the member was absent from the capture.
type OuterFields struct {
	GLevel *int `json:"glevel"`
	GCash  *int `json:"gcash"`
	GXP    *int `json:"gxp"`
	GNum   *int `json:"gnum"`
}

// DataContainer records the sizes observed at each layer of the nested
// "data" member while decoding.
type DataContainer struct {
	Encoding            string `json:"encoding"`
	CompressedB64Length int    `json:"compressed_b64_length"`
	ZlibPayloadLength   int    `json:"zlib_payload_length"`
	DecompressedLength  int    `json:"decompressed_length"`
	InnerJSONLength     int    `json:"inner_json_length"`
}

// DecodedEntry is one decoded save slot. Profile holds the inner JSON
// document and may be hand-edited between a decode and a later encode;
// the integrity guard detects such edits against RawSOL.
type DecodedEntry struct {
	EntryKey        string                 `json:"entry_key"`
	RawSOL          *RawSOL                `json:"raw_sol,omitempty"`
	OuterUDFields   *OuterFields           `json:"outer_ud_fields,omitempty"`
	DataContainer   *DataContainer         `json:"data_container,omitempty"`
	ProfileJSONText string                 `json:"profile_json_text,omitempty"`
	Profile         interface{}            `json:"profile,omitempty"`
	Enabled         *bool                  `json:"enabled,omitempty"`
	Meta            map[string]interface{} `json:"meta,omitempty"`
	Error           string                 `json:"error,omitempty"`

	// ValueB64 is read from decoded files written before raw_sol existed.
	ValueB64 string `json:"value_b64,omitempty"`
}

// IsEnabled reports the enabled flag, treating absence as true.
func (e *DecodedEntry) IsEnabled() bool { return e.Enabled == nil || *e.Enabled }

// SourceInfo summarizes where a decoded document came from.
type SourceInfo struct {
	InputPath      string `json:"input_path"`
	InputType      string `json:"input_type"`
	DecodedEntries int    `json:"decoded_entries"`
	DecodeFailures int    `json:"decode_failures"`
}

// DecodedDocument is the aggregate decode output envelope.
type DecodedDocument struct {
	Format  string          `json:"format"`
	Source  SourceInfo      `json:"source"`
	Entries []*DecodedEntry `json:"entries"`
}

// NewDecodedDocument wraps a batch decode result in the export envelope.
func NewDecodedDocument(inputPath, inputType string, res *DecodeResult) *DecodedDocument {
	return &DecodedDocument{
		Format: DecodedFormat,
		Source: SourceInfo{
			InputPath:      inputPath,
			InputType:      inputType,
			DecodedEntries: len(res.Entries),
			DecodeFailures: res.Failures,
		},
		Entries: res.Entries,
	}
}

// CanonicalJSON renders v compactly with sorted object keys, for
// order-insensitive equality checks between decoded values.
func CanonicalJSON(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	return string(b), err
}

// MarshalIndent renders a document for file output using the same JSON
// configuration the codec uses internally.
func MarshalIndent(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
