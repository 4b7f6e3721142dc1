package sol

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// Recognized decode-input shapes.
const (
	InputRawExport  = "raw_export"
	InputSaveEditor = "save_editor"
)

type formatProbe struct {
	Format string `json:"format"`
}

type editorEntry struct {
	Key      string                 `json:"key"`
	ValueB64 string                 `json:"value_b64"`
	Enabled  *bool                  `json:"enabled"`
	Meta     map[string]interface{} `json:"meta"`
}

type editorEnvelope struct {
	Format  string        `json:"format"`
	Entries []editorEntry `json:"entries"`
}

// LoadSaveEntries normalizes a decode input document into SaveEntry
// records, preserving document order, and reports which input shape was
// recognized. Editor-format entries with enabled=false are dropped unless
// includeDisabled is set.
func LoadSaveEntries(payload []byte, includeDisabled bool) (string, []SaveEntry, error) {
	var probe formatProbe
	if err := json.Unmarshal(payload, &probe); err != nil {
		return "", nil, fmt.Errorf("%w: not a JSON object: %v", ErrInputFormat, err)
	}
	if probe.Format == EditorFormat {
		entries, err := loadEditorEntries(payload, includeDisabled)
		return InputSaveEditor, entries, err
	}
	entries, err := loadRawExport(payload)
	return InputRawExport, entries, err
}

func loadEditorEntries(payload []byte, includeDisabled bool) ([]SaveEntry, error) {
	var env editorEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, fmt.Errorf("%w: bad editor envelope: %v", ErrInputFormat, err)
	}
	var entries []SaveEntry
	for _, raw := range env.Entries {
		enabled := raw.Enabled == nil || *raw.Enabled
		if !includeDisabled && !enabled {
			continue
		}
		if raw.Key == "" || raw.ValueB64 == "" {
			continue
		}
		entries = append(entries, SaveEntry{
			Key:      raw.Key,
			ValueB64: raw.ValueB64,
			Enabled:  enabled,
			Meta:     raw.Meta,
		})
	}
	return entries, nil
}

// loadRawExport walks a {"key": "base64", ...} map in document order.
// Non-string values are skipped; localStorage dumps carry unrelated
// entries alongside the saves.
func loadRawExport(payload []byte) ([]SaveEntry, error) {
	iter := jsoniter.ParseBytes(json, payload)
	var entries []SaveEntry
	ok := iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		if it.WhatIsNext() != jsoniter.StringValue {
			it.Skip()
			return true
		}
		entries = append(entries, SaveEntry{Key: key, ValueB64: it.ReadString(), Enabled: true})
		return true
	})
	if !ok || (iter.Error != nil && iter.Error != io.EOF) {
		return nil, fmt.Errorf("%w: expected an object of string values", ErrInputFormat)
	}
	return entries, nil
}

// LoadDecodedEntries accepts either a full decoded document or one bare
// decoded entry and returns the entries to re-encode, in document order.
func LoadDecodedEntries(payload []byte, includeDisabled bool) ([]*DecodedEntry, error) {
	var probe formatProbe
	if err := json.Unmarshal(payload, &probe); err != nil {
		return nil, fmt.Errorf("%w: not a JSON object: %v", ErrInputFormat, err)
	}
	if probe.Format == DecodedFormat {
		var doc DecodedDocument
		if err := json.Unmarshal(payload, &doc); err != nil {
			return nil, fmt.Errorf("%w: bad decoded document: %v", ErrInputFormat, err)
		}
		var out []*DecodedEntry
		for _, e := range doc.Entries {
			if e == nil || e.EntryKey == "" {
				continue
			}
			if !includeDisabled && !e.IsEnabled() {
				continue
			}
			out = append(out, e)
		}
		return out, nil
	}
	var entry DecodedEntry
	if err := json.Unmarshal(payload, &entry); err != nil || entry.EntryKey == "" {
		return nil, fmt.Errorf("%w: expected a decoded document or a single decoded entry", ErrInputFormat)
	}
	if !includeDisabled && !entry.IsEnabled() {
		return nil, nil
	}
	return []*DecodedEntry{&entry}, nil
}
