package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/avatarhash/internal/fingerprint"
	"github.com/roach88/avatarhash/internal/testutil"
)

// createTestStore creates a new store in a temp directory with
// deterministic observation IDs.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path, WithIDGenerator(testutil.NewFixedIDGenerator("obs")))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// Known fingerprints of the testutil poses.
var (
	fullV2   = fingerprint.Fingerprint{Schema: fingerprint.V2, Value: "mgKuAmwK9wp+AyIDxQaCBiIB"}
	fullV1   = fingerprint.Fingerprint{Schema: fingerprint.V1, Value: "rgJsCvcKfgMiA8UGggYiAWYCmgJmAhkC"}
	sparseV2 = fingerprint.Fingerprint{Schema: fingerprint.V2, Value: "AAD0AQAAAAAAAAAAAAAAAAAA"}
)
