package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/roach88/avatarhash/internal/fingerprint"
)

// Observation records one computed fingerprint.
type Observation struct {
	ID          string
	Seq         int64
	Fingerprint fingerprint.Fingerprint
	Vector      fingerprint.Vector
	Source      string
}

// WriteObservation inserts obs and returns its ID. An empty obs.ID is
// filled from the store's IDGenerator; seq is always assigned by the store.
//
// The vector is stored as JSON text. When obs.Vector is nil it is decoded
// from the fingerprint.
func (s *Store) WriteObservation(ctx context.Context, obs Observation) (string, error) {
	if obs.Fingerprint.IsZero() {
		return "", errors.New("write observation: empty fingerprint")
	}

	vec := obs.Vector
	if vec == nil {
		decoded, err := obs.Fingerprint.Vector()
		if err != nil {
			return "", fmt.Errorf("write observation: %w", err)
		}
		vec = decoded
	}
	vectorJSON, err := marshalVector(vec)
	if err != nil {
		return "", fmt.Errorf("write observation: %w", err)
	}

	if obs.ID == "" {
		obs.ID = s.ids.Generate()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("write observation: begin tx: %w", err)
	}
	defer tx.Rollback()

	seq, err := nextSeq(ctx, tx, "observations")
	if err != nil {
		return "", fmt.Errorf("write observation: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO observations
		(id, seq, schema_version, fingerprint, vector, source)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		obs.ID,
		seq,
		obs.Fingerprint.Schema,
		obs.Fingerprint.Value,
		vectorJSON,
		obs.Source,
	)
	if err != nil {
		return "", fmt.Errorf("write observation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("write observation: commit: %w", err)
	}

	s.logger.Debug("observation written",
		"id", obs.ID,
		"seq", seq,
		"fingerprint", obs.Fingerprint.Tagged(),
		"source", obs.Source,
	)
	return obs.ID, nil
}

// ListObservations returns observations of fp ordered by seq. A zero fp
// lists every observation.
//
// Returns an empty slice (not nil) if nothing matches.
func (s *Store) ListObservations(ctx context.Context, fp fingerprint.Fingerprint) ([]Observation, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if fp.IsZero() {
		rows, err = s.db.QueryContext(ctx, `
			SELECT id, seq, schema_version, fingerprint, vector, source
			FROM observations
			ORDER BY seq ASC, id COLLATE BINARY ASC
		`)
	} else {
		rows, err = s.db.QueryContext(ctx, `
			SELECT id, seq, schema_version, fingerprint, vector, source
			FROM observations
			WHERE schema_version = ? AND fingerprint = ?
			ORDER BY seq ASC, id COLLATE BINARY ASC
		`, fp.Schema, fp.Value)
	}
	if err != nil {
		return nil, fmt.Errorf("query observations: %w", err)
	}
	defer rows.Close()

	result := []Observation{}
	for rows.Next() {
		obs, err := scanObservation(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, obs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate observations: %w", err)
	}
	return result, nil
}

// ReadObservation retrieves a single observation by ID.
// Returns sql.ErrNoRows if not found.
func (s *Store) ReadObservation(ctx context.Context, id string) (Observation, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, seq, schema_version, fingerprint, vector, source
		FROM observations
		WHERE id = ?
	`, id)
	return scanObservation(row)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanObservation(row scanner) (Observation, error) {
	var (
		obs        Observation
		vectorJSON string
	)
	err := row.Scan(
		&obs.ID,
		&obs.Seq,
		&obs.Fingerprint.Schema,
		&obs.Fingerprint.Value,
		&vectorJSON,
		&obs.Source,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Observation{}, err
		}
		return Observation{}, fmt.Errorf("scan observation: %w", err)
	}

	obs.Vector, err = unmarshalVector(vectorJSON)
	if err != nil {
		return Observation{}, fmt.Errorf("observation %s: %w", obs.ID, err)
	}
	return obs, nil
}

// marshalVector converts a vector to JSON TEXT for storage.
func marshalVector(v fingerprint.Vector) (string, error) {
	data, err := json.Marshal([]int16(v))
	if err != nil {
		return "", fmt.Errorf("marshal vector: %w", err)
	}
	return string(data), nil
}

// unmarshalVector parses JSON TEXT to a vector.
func unmarshalVector(data string) (fingerprint.Vector, error) {
	var v []int16
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		return nil, fmt.Errorf("unmarshal vector: %w", err)
	}
	return fingerprint.Vector(v), nil
}
