package sol

import (
	"encoding/base64"
	"fmt"
)

// DecodeOptions control a batch decode run.
type DecodeOptions struct {
	// Strict aborts on the first entry that fails to decode.
	Strict bool
}

// DecodeResult aggregates a batch decode run. Entries holds one record
// per input entry, in input order; failed entries appear as error records.
type DecodeResult struct {
	Entries  []*DecodedEntry
	Failures int
}

// DecodeBatch decodes entries in input order. A failing entry is recorded
// in place with whatever raw facts were still computable, and never
// aborts the run unless Strict is set.
func DecodeBatch(entries []SaveEntry, opts DecodeOptions) (*DecodeResult, error) {
	res := &DecodeResult{Entries: make([]*DecodedEntry, 0, len(entries))}
	for _, entry := range entries {
		decoded, err := DecodeEntry(entry.Key, entry.ValueB64)
		if err != nil {
			res.Failures++
			res.Entries = append(res.Entries, failureRecord(entry, err))
			if opts.Strict {
				return res, fmt.Errorf("entry %q: %w", entry.Key, err)
			}
			continue
		}
		enabled := entry.Enabled
		decoded.Enabled = &enabled
		decoded.Meta = entry.Meta
		res.Entries = append(res.Entries, decoded)
	}
	return res, nil
}

func failureRecord(entry SaveEntry, err error) *DecodedEntry {
	enabled := entry.Enabled
	rec := &DecodedEntry{
		EntryKey: entry.Key,
		Enabled:  &enabled,
		RawSOL:   &RawSOL{ValueB64: entry.ValueB64},
		Meta:     entry.Meta,
		Error:    err.Error(),
	}
	if raw, decErr := base64.StdEncoding.DecodeString(entry.ValueB64); decErr == nil {
		rec.RawSOL.BytesLength = len(raw)
	}
	return rec
}

// EncodeOptions control a batch encode run.
type EncodeOptions struct {
	GuardOptions
	// ZlibLevel is passed through to the encoder on rebuild paths.
	ZlibLevel int
}

// EncodeResult aggregates a batch encode run into the flat key→base64 map
// the injection tooling imports, plus a tally of non-lossless rebuilds.
type EncodeResult struct {
	SaveMap  map[string]string
	Rebuilds int
}

// EncodeBatch runs the integrity guard over each decoded entry and
// assembles the flat save map. Guard failures abort the whole run:
// writing stale or wrong bytes into a save file is worse than stopping.
func EncodeBatch(entries []*DecodedEntry, opts EncodeOptions) (*EncodeResult, error) {
	enc := &Encoder{ZlibLevel: opts.ZlibLevel}
	res := &EncodeResult{SaveMap: make(map[string]string, len(entries))}
	for _, e := range entries {
		if e.EntryKey == "" {
			return nil, fmt.Errorf("decoded entry missing entry_key: %w", ErrInputFormat)
		}
		plan, err := PlanEntry(e, opts.GuardOptions)
		if err != nil {
			return nil, err
		}
		value := plan.ValueB64
		switch plan.Kind {
		case PlanRebuildFromEdits, PlanRebuild:
			value, err = enc.EncodeEntry(e.EntryKey, e.Profile, e.OuterUDFields)
			if err != nil {
				return nil, fmt.Errorf("entry %q: %w", e.EntryKey, err)
			}
			res.Rebuilds++
		}
		res.SaveMap[e.EntryKey] = value
	}
	return res, nil
}
