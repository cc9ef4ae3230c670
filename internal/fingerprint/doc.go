// Package fingerprint derives a scale-independent identifier for a humanoid
// body from the proportions of its limbs.
//
// A Schema fixes which bone pairs are measured, in which order, how the
// measurements are normalized and how finely they are quantized. Each pair
// yields one int16: the normalized right-side length masked to 15 bits, negated
// when the mirrored left-side length quantizes differently. The vector of
// those values, packed little-endian and base64-encoded, is the fingerprint.
//
// The computation never fails. Untracked bones produce 0 in their slot, a
// degenerate scale produces an all-zero vector and an invalid body produces
// an empty fingerprint.
//
// Fingerprints from different schemas are not comparable. Anything that
// stores a fingerprint should store Fingerprint.Tagged, which carries the
// schema version.
package fingerprint
