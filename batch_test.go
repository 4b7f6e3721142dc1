package sol

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saveFixture(t *testing.T, n int) []SaveEntry {
	t.Helper()
	entries := make([]SaveEntry, 0, n)
	for i := 0; i < n; i++ {
		key := fmt.Sprintf("example.com/btd5/slot%d", i)
		b64 := mustEncode(t, key,
			map[string]interface{}{"slot": fmt.Sprintf("s%d", i)},
			&OuterFields{GLevel: intp(i)})
		entries = append(entries, SaveEntry{Key: key, ValueB64: b64, Enabled: true})
	}
	return entries
}

func TestDecodeBatchPartialFailureIsolation(t *testing.T) {
	entries := saveFixture(t, 3)
	entries = append(entries,
		SaveEntry{Key: "bad/garbage", ValueB64: "!!!not base64!!!", Enabled: true},
		SaveEntry{Key: "bad/truncated", ValueB64: entries[0].ValueB64[:8], Enabled: true},
	)

	res, err := DecodeBatch(entries, DecodeOptions{})
	require.NoError(t, err)
	assert.Len(t, res.Entries, 5)
	assert.Equal(t, 2, res.Failures)

	// Input order is preserved and the healthy entries carry full data.
	for i := 0; i < 3; i++ {
		e := res.Entries[i]
		assert.Equal(t, entries[i].Key, e.EntryKey)
		assert.Empty(t, e.Error)
		require.NotNil(t, e.OuterUDFields.GLevel)
		assert.Equal(t, i, *e.OuterUDFields.GLevel)
	}
	for i := 3; i < 5; i++ {
		e := res.Entries[i]
		assert.Equal(t, entries[i].Key, e.EntryKey)
		assert.NotEmpty(t, e.Error)
		assert.Nil(t, e.Profile)
		assert.Equal(t, entries[i].ValueB64, e.RawSOL.ValueB64)
	}
}

func TestDecodeBatchStrictAbortsOnFirstFailure(t *testing.T) {
	entries := saveFixture(t, 2)
	entries = append(entries[:1],
		SaveEntry{Key: "bad/garbage", ValueB64: "!!!", Enabled: true},
		entries[1])

	res, err := DecodeBatch(entries, DecodeOptions{Strict: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedPayload)
	// The run stopped at the failing entry.
	assert.Len(t, res.Entries, 2)
}

func TestDecodeBatchTagsDisabledEntries(t *testing.T) {
	entries := saveFixture(t, 1)
	entries[0].Enabled = false
	entries[0].Meta = map[string]interface{}{"note": "kept for reference"}

	res, err := DecodeBatch(entries, DecodeOptions{})
	require.NoError(t, err)
	require.Len(t, res.Entries, 1)
	assert.False(t, res.Entries[0].IsEnabled())
	assert.Equal(t, "kept for reference", res.Entries[0].Meta["note"])
}

func TestEncodeBatchLosslessReproducesSaveMap(t *testing.T) {
	entries := saveFixture(t, 3)
	dec, err := DecodeBatch(entries, DecodeOptions{})
	require.NoError(t, err)

	res, err := EncodeBatch(dec.Entries, EncodeOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Rebuilds)

	want := make(map[string]string, len(entries))
	for _, e := range entries {
		want[e.Key] = e.ValueB64
	}
	if diff := cmp.Diff(want, res.SaveMap); diff != "" {
		t.Errorf("save map mismatch (-want +got):\n%s", diff)
	}
}

func TestNewDecodedDocumentTallies(t *testing.T) {
	entries := saveFixture(t, 2)
	entries = append(entries, SaveEntry{Key: "bad", ValueB64: "!!!", Enabled: true})

	res, err := DecodeBatch(entries, DecodeOptions{})
	require.NoError(t, err)

	doc := NewDecodedDocument("saves/test.json", InputRawExport, res)
	assert.Equal(t, DecodedFormat, doc.Format)
	assert.Equal(t, "saves/test.json", doc.Source.InputPath)
	assert.Equal(t, InputRawExport, doc.Source.InputType)
	assert.Equal(t, 3, doc.Source.DecodedEntries)
	assert.Equal(t, 1, doc.Source.DecodeFailures)
}
