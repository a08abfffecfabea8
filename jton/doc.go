// Package jton implements JTON, a lossless JSON re-encoding codec tuned for
// LLM tokenizers.
//
// JTON rewrites a JSON value into a semantically equivalent but
// token-sparser JSON value: it detects columnar structure in arrays of
// objects, arithmetic progressions and constant runs in sequences, common
// string prefixes, and bit/byte-packable numeric and boolean data, then
// emits a small descriptor language in place of the verbose original. A
// symmetric decoder recovers the exact original value, including the
// int/float distinction and object key order.
//
// # Envelope
//
// Compress either returns the canonical (minified) JSON of the input
// unchanged, or an envelope object with exactly two keys:
//
//	{"d": <descriptor tree>, "m": <key dictionary>}
//
// "d" holds the transformed value. "m" maps every original object key
// encountered anywhere in the input to a short base62 token. The encoder
// always measures the envelope's text length against the canonical JSON of
// the input and falls back to the latter whenever the envelope would not be
// strictly shorter, so Decompress can always tell a JTON document from a
// plain JSON document by the presence of both "d" and "m" at the root.
//
// # Descriptors
//
// Inside "d", a handful of compact shapes stand in for common patterns:
// arithmetic progressions ({"s","d","n"}), constant runs ({"c","n"}),
// prefix-factored strings ({"p","x"}), columnar object arrays
// ({"a","k","d"}), and single-character-prefixed base64 strings for
// bit-packed booleans and byte-packed integers/floats. See packers.go and
// column.go for the exact grammar and decode.go for the inverse.
package jton
