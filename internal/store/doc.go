// Package store provides a SQLite registry of named fingerprints and
// fingerprint observations.
//
// Tables:
//   - names: (schema_version, fingerprint) → display name
//   - observations: one row per computed fingerprint, with its vector
//
// Fingerprints are always keyed together with their schema version, so a
// value computed under one schema never matches a name registered under
// another.
//
// Ordering uses a logical seq column, never timestamps. Observation queries
// are ORDER BY seq ASC, id ASC COLLATE BINARY.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
