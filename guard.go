package sol

import "fmt"

// PlanKind identifies which of the three re-encode paths an entry takes.
type PlanKind int

const (
	// PlanLossless reuses the captured raw bytes verbatim.
	PlanLossless PlanKind = iota
	// PlanRebuildFromEdits reconstructs the container from the entry's
	// current profile and outer fields, on explicit request.
	PlanRebuildFromEdits
	// PlanRebuild reconstructs a legacy entry that has no raw bytes.
	// Output is not guaranteed byte-identical to the original capture.
	PlanRebuild
)

func (k PlanKind) String() string {
	switch k {
	case PlanLossless:
		return "lossless"
	case PlanRebuildFromEdits:
		return "rebuilt_from_edits"
	case PlanRebuild:
		return "rebuilt"
	}
	return fmt.Sprintf("PlanKind(%d)", int(k))
}

// EncodePlan is the integrity guard's decision for one entry. ValueB64 is
// set only on the lossless path; rebuild paths re-run the encoder.
type EncodePlan struct {
	Kind     PlanKind
	ValueB64 string
}

// GuardOptions carry the explicit opt-ins for the non-lossless paths.
type GuardOptions struct {
	// AllowRebuild permits reconstructing legacy entries missing raw bytes.
	AllowRebuild bool
	// ApplyEdits forces a rebuild from the entry's current decoded values
	// even when raw bytes are present.
	ApplyEdits bool
}

// PlanEntry chooses the re-encode path for one decoded entry. When raw
// bytes are present and edits are not being applied, the raw bytes are
// re-decoded and compared against the entry's current values: a
// divergence means the file was hand-edited, and reusing the raw bytes
// would throw the edit away.
func PlanEntry(e *DecodedEntry, opts GuardOptions) (EncodePlan, error) {
	raw := ""
	if e.RawSOL != nil {
		raw = e.RawSOL.ValueB64
	}
	if raw != "" {
		if opts.ApplyEdits && e.Profile != nil {
			return EncodePlan{Kind: PlanRebuildFromEdits}, nil
		}
		if e.Profile != nil {
			if err := checkEditsApplied(e, raw); err != nil {
				return EncodePlan{}, err
			}
		}
		return EncodePlan{Kind: PlanLossless, ValueB64: raw}, nil
	}
	if e.ValueB64 != "" {
		return EncodePlan{Kind: PlanLossless, ValueB64: e.ValueB64}, nil
	}
	if !opts.AllowRebuild {
		return EncodePlan{}, fmt.Errorf("entry %q: %w; re-decode the save or pass --allow-rebuild", e.EntryKey, ErrMissingRawBytes)
	}
	if e.EntryKey == "" || e.Profile == nil {
		return EncodePlan{}, fmt.Errorf("entry %q: legacy rebuild requires entry_key and profile: %w", e.EntryKey, ErrInputFormat)
	}
	return EncodePlan{Kind: PlanRebuild}, nil
}

// checkEditsApplied re-decodes raw bytes and compares profile and outer
// fields against the entry's current values. Raw bytes that no longer
// decode do not fail the check; the lossless path carries them through
// unchanged either way.
func checkEditsApplied(e *DecodedEntry, rawB64 string) error {
	decoded, err := DecodeEntry(e.EntryKey, rawB64)
	if err != nil {
		return nil
	}
	rawProfile, err := CanonicalJSON(decoded.Profile)
	if err != nil {
		return nil
	}
	curProfile, err := CanonicalJSON(e.Profile)
	if err != nil {
		return nil
	}
	if rawProfile != curProfile {
		return &UnappliedEditError{Key: e.EntryKey, Field: "profile"}
	}
	if e.OuterUDFields != nil {
		rawOuter, err1 := CanonicalJSON(decoded.OuterUDFields)
		curOuter, err2 := CanonicalJSON(e.OuterUDFields)
		if err1 == nil && err2 == nil && rawOuter != curOuter {
			return &UnappliedEditError{Key: e.EntryKey, Field: "outer_ud_fields"}
		}
	}
	return nil
}
