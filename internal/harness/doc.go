// Package harness runs fingerprint conformance scenarios.
//
// A scenario names a pose, the schema to fingerprint it under, and what the
// result must be. Scenarios double as executable documentation of the
// fingerprint's properties: scale invariance, mirror folding, missing-bone
// handling.
//
// # Scenario Format
//
//	name: full_pose_refined
//	description: "Complete symmetric body under the refined schema"
//	schema: 2
//	pose: ../poses/full.yaml      # relative to the scenario file
//	names:                        # optional registry seed
//	  mgKuAmwK9wp+AyIDxQaCBiIB: Reference Avatar
//	expect:
//	  fingerprint: mgKuAmwK9wp+AyIDxQaCBiIB
//	  vector: [666, 686, 2668, 2807, 894, 802, 1733, 1666, 290]
//	  name: Reference Avatar
//	assertions:
//	  - type: symmetric
//	  - type: scale_invariant
//	    factor: 2
//
// A scenario may give its pose inline under snapshot: instead of pose:,
// using the same fields as a pose file.
//
// # Assertion Types
//
//   - slot: slot index holds value
//   - symmetric: no slot is negative
//   - asymmetric: exactly the listed slots are negative
//   - missing: exactly the listed slots are zero
//   - scale_invariant: the pose scaled by factor has the same fingerprint
//   - round_trip: the fingerprint decodes back to the vector
//
// # Isolation
//
// Each scenario that seeds names runs against a fresh in-memory registry
// with fixed observation IDs, so results and golden files are identical
// across runs.
package harness
