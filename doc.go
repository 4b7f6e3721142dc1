/*
Package sol converts Flash Shared Object (SOL) game-save blobs between
their base64 binary form and an editable JSON document.

The package understands exactly one container shape: a TCSO object
holding a zlib-compressed "data" member plus the four integer members
glevel, gcash, gxp and gnum. Anything else is rejected.

Decoding turns a base64 blob into a DecodedEntry whose profile is plain
JSON and may be hand-edited. Re-encoding prefers reusing the captured
raw bytes verbatim; the integrity guard refuses to do so when the
decoded values have drifted from what the raw bytes contain, so edits
are never silently thrown away.
*/
package sol
