package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaterCreateAndList(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "u1", 2000)
	svc := NewWaterService(db)

	log, err := svc.Create("u1", 250, nil, "2026-08-29")
	require.NoError(t, err)
	assert.Contains(t, log.WaterLogID, "water_")
	assert.Equal(t, 250, log.AmountML)

	logs, err := svc.ListForDate("u1", "2026-08-29")
	require.NoError(t, err)
	require.Len(t, logs, 1)

	logs, err = svc.ListForDate("u1", "2026-08-30")
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestWaterCreateRejectsNonPositiveAmount(t *testing.T) {
	db := newTestDB(t)
	svc := NewWaterService(db)

	for _, ml := range []int{0, -100} {
		_, err := svc.Create("u1", ml, nil, "")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}
}

func TestWaterDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewWaterService(db)

	log, err := svc.Create("u1", 300, nil, "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete("u1", log.WaterLogID))
	assert.ErrorIs(t, svc.Delete("u1", log.WaterLogID), ErrNotFound)

	// Another user's log is invisible.
	log, err = svc.Create("u1", 300, nil, "")
	require.NoError(t, err)
	assert.ErrorIs(t, svc.Delete("u2", log.WaterLogID), ErrNotFound)
}

func TestExerciseCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewExerciseService(db)

	_, err := svc.Create("u1", "running", 0, 100, nil, "")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.Create("u1", "running", 30, -1, nil, "")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	log, err := svc.Create("u1", "running", 30, 300, nil, "2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, "running", log.Name)
	assert.Equal(t, 30, log.DurationMinutes)
}

func TestWeightListRange(t *testing.T) {
	db := newTestDB(t)
	svc := NewWeightService(db)

	for i, date := range []string{"2026-08-01", "2026-08-10", "2026-08-20"} {
		_, err := svc.Create("u1", 80-float64(i), nil, date)
		require.NoError(t, err)
	}

	logs, err := svc.List("u1", "", "")
	require.NoError(t, err)
	assert.Len(t, logs, 3)

	logs, err = svc.List("u1", "2026-08-05", "2026-08-15")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, 79.0, logs[0].WeightKG)

	_, err = svc.List("u1", "bad-date", "")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestResolveTimestampPrecedence(t *testing.T) {
	explicit := time.Date(2026, 8, 29, 12, 30, 0, 0, time.UTC)

	ts, err := resolveTimestamp(&explicit, "2026-01-01")
	require.NoError(t, err)
	assert.Equal(t, explicit, ts)

	ts, err = resolveTimestamp(nil, "2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), ts)

	_, err = resolveTimestamp(nil, "29/08/2026")
	assert.ErrorIs(t, err, ErrInvalidDate)

	before := time.Now().UTC()
	ts, err = resolveTimestamp(nil, "")
	require.NoError(t, err)
	assert.False(t, ts.Before(before))
}
