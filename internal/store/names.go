package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/avatarhash/internal/fingerprint"
	"github.com/roach88/avatarhash/internal/names"
)

// NamedFingerprint is one row of the names table.
type NamedFingerprint struct {
	Fingerprint fingerprint.Fingerprint
	Name        string
	Seq         int64
}

// RegisterName stores name for fp, replacing any earlier name registered
// for the same schema and value.
func (s *Store) RegisterName(ctx context.Context, fp fingerprint.Fingerprint, name string) error {
	if fp.IsZero() {
		return errors.New("register name: empty fingerprint")
	}
	if name == "" {
		return errors.New("register name: empty name")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("register name: begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := registerName(ctx, tx, fp, name); err != nil {
		return fmt.Errorf("register name: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("register name: commit: %w", err)
	}

	s.logger.Info("name registered", "fingerprint", fp.Tagged(), "name", name)
	return nil
}

func registerName(ctx context.Context, tx *sql.Tx, fp fingerprint.Fingerprint, name string) error {
	seq, err := nextSeq(ctx, tx, "names")
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO names (schema_version, fingerprint, name, seq)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(schema_version, fingerprint) DO UPDATE SET name = excluded.name, seq = excluded.seq
	`,
		fp.Schema,
		fp.Value,
		norm.NFC.String(name),
		seq,
	)
	return err
}

// LookupName returns the name registered for fp. found is false when no
// name exists; that is not an error.
func (s *Store) LookupName(ctx context.Context, fp fingerprint.Fingerprint) (name string, found bool, err error) {
	err = s.db.QueryRowContext(ctx, `
		SELECT name FROM names
		WHERE schema_version = ? AND fingerprint = ?
	`, fp.Schema, fp.Value).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("lookup name: %w", err)
	}
	return name, true, nil
}

// ListNames returns every registered name ordered by seq.
//
// Returns an empty slice (not nil) if nothing is registered.
func (s *Store) ListNames(ctx context.Context) ([]NamedFingerprint, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT schema_version, fingerprint, name, seq
		FROM names
		ORDER BY seq ASC, fingerprint COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query names: %w", err)
	}
	defer rows.Close()

	result := []NamedFingerprint{}
	for rows.Next() {
		var n NamedFingerprint
		if err := rows.Scan(&n.Fingerprint.Schema, &n.Fingerprint.Value, &n.Name, &n.Seq); err != nil {
			return nil, fmt.Errorf("scan name: %w", err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate names: %w", err)
	}
	return result, nil
}

// ImportNames copies every entry of dir into the registry under schema
// version. Entries whose key does not decode under that schema are skipped
// and logged. Returns the number of names written.
func (s *Store) ImportNames(ctx context.Context, version int, dir *names.Directory) (int, error) {
	schema, err := fingerprint.LookupSchema(version)
	if err != nil {
		return 0, fmt.Errorf("import names: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("import names: begin tx: %w", err)
	}
	defer tx.Rollback()

	imported := 0
	for _, entry := range dir.Entries() {
		if _, err := fingerprint.Decode(entry.Fingerprint, schema); err != nil {
			s.logger.Warn("skipping name entry",
				"fingerprint", entry.Fingerprint,
				"schema", version,
				"error", err,
			)
			continue
		}
		fp := fingerprint.Fingerprint{Schema: version, Value: entry.Fingerprint}
		if err := registerName(ctx, tx, fp, entry.Name); err != nil {
			return 0, fmt.Errorf("import names: %s: %w", entry.Fingerprint, err)
		}
		imported++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("import names: commit: %w", err)
	}

	s.logger.Info("names imported", "schema", version, "count", imported, "skipped", dir.Len()-imported)
	return imported, nil
}
