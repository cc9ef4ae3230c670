package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/avatarhash/internal/fingerprint"
	"github.com/roach88/avatarhash/internal/testutil"
)

func TestWriteObservationAssignsIDAndSeq(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	id1, err := s.WriteObservation(ctx, Observation{Fingerprint: fullV2, Source: "a.yaml"})
	require.NoError(t, err)
	id2, err := s.WriteObservation(ctx, Observation{Fingerprint: fullV2, Source: "b.yaml"})
	require.NoError(t, err)

	assert.Equal(t, "obs-0001", id1)
	assert.Equal(t, "obs-0002", id2)

	obs, err := s.ReadObservation(ctx, id2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), obs.Seq)
	assert.Equal(t, "b.yaml", obs.Source)
	assert.Equal(t, fullV2, obs.Fingerprint)
}

func TestWriteObservationDecodesVector(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	id, err := s.WriteObservation(ctx, Observation{Fingerprint: fullV2})
	require.NoError(t, err)

	obs, err := s.ReadObservation(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, fingerprint.Vector{666, 686, 2668, 2807, 894, 802, 1733, 1666, 290}, obs.Vector)
}

func TestWriteObservationKeepsGivenVector(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	body := testutil.FullPose()
	schema := fingerprint.MustSchema(fingerprint.V1)
	vec := fingerprint.BuildVector(body, schema)

	id, err := s.WriteObservation(ctx, Observation{
		ID:          "given",
		Fingerprint: fingerprint.Compute(body, schema),
		Vector:      vec,
	})
	require.NoError(t, err)
	assert.Equal(t, "given", id)

	obs, err := s.ReadObservation(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, vec, obs.Vector)
	assert.Equal(t, fullV1, obs.Fingerprint)
}

func TestWriteObservationRejectsBadInput(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	_, err := s.WriteObservation(ctx, Observation{})
	assert.Error(t, err)

	_, err = s.WriteObservation(ctx, Observation{
		Fingerprint: fingerprint.Fingerprint{Schema: fingerprint.V2, Value: fullV1.Value},
	})
	assert.ErrorIs(t, err, fingerprint.ErrLengthMismatch)
}

func TestWriteObservationDuplicateID(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	_, err := s.WriteObservation(ctx, Observation{ID: "dup", Fingerprint: fullV2})
	require.NoError(t, err)
	_, err = s.WriteObservation(ctx, Observation{ID: "dup", Fingerprint: fullV2})
	assert.Error(t, err)
}

func TestListObservationsFiltersAndOrders(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	for _, fp := range []fingerprint.Fingerprint{fullV2, sparseV2, fullV2, fullV1} {
		_, err := s.WriteObservation(ctx, Observation{Fingerprint: fp})
		require.NoError(t, err)
	}

	got, err := s.ListObservations(ctx, fullV2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "obs-0001", got[0].ID)
	assert.Equal(t, "obs-0003", got[1].ID)
	assert.Less(t, got[0].Seq, got[1].Seq)

	all, err := s.ListObservations(ctx, fingerprint.Fingerprint{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	for i, obs := range all {
		assert.Equal(t, int64(i+1), obs.Seq)
	}
}

func TestListObservationsSeparatesSchemas(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	_, err := s.WriteObservation(ctx, Observation{Fingerprint: sparseV2})
	require.NoError(t, err)

	got, err := s.ListObservations(ctx, fingerprint.Fingerprint{Schema: fingerprint.V1, Value: sparseV2.Value})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestReadObservationNotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.ReadObservation(context.Background(), "missing")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestUUIDv7Generator(t *testing.T) {
	gen := UUIDv7Generator{}
	a, b := gen.Generate(), gen.Generate()

	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, a, b)
}

func TestDefaultIDGeneratorIsUUIDv7(t *testing.T) {
	s, err := Open(t.TempDir() + "/default.db")
	require.NoError(t, err)
	defer s.Close()

	id, err := s.WriteObservation(context.Background(), Observation{Fingerprint: fullV2})
	require.NoError(t, err)

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}
