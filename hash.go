package sol

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// contentHash fingerprints raw container bytes for the decode output. The
// digest is informational; the encode path never reads it back, so the
// algorithm prefix keeps it self-describing.
func contentHash(b []byte) string {
	sum := blake3.Sum256(b)
	return "blake3:" + hex.EncodeToString(sum[:])
}
