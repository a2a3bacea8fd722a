package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/alexanderramin/worklog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCreateAndGetByDate(t *testing.T) {
	database := testutil.NewTestDB(t)
	sessions := NewSQLiteSessionRepo(database)
	ctx := context.Background()

	sess := testutil.NewTestSession()
	require.NoError(t, sessions.Create(ctx, sess))

	got, err := sessions.GetByDate(ctx, sess.Date)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, domain.StateNotStarted, got.Status)
	assert.Nil(t, got.StartTime)
	assert.Nil(t, got.EndTime)

	_, err = sessions.GetByDate(ctx, "1999-01-01")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionUpdate_RoundTripsNullableTimes(t *testing.T) {
	database := testutil.NewTestDB(t)
	sessions := NewSQLiteSessionRepo(database)
	ctx := context.Background()

	sess := testutil.NewTestSession()
	require.NoError(t, sessions.Create(ctx, sess))

	start := testutil.BaseTime
	end := testutil.BaseTime.Add(8 * time.Hour)
	sess.StartTime = &start
	sess.EndTime = &end
	sess.Status = domain.StateDayEnded
	sess.UpdatedAt = end
	require.NoError(t, sessions.Update(ctx, sess))

	got, err := sessions.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, got.StartTime)
	require.NotNil(t, got.EndTime)
	assert.True(t, got.StartTime.Equal(start))
	assert.True(t, got.EndTime.Equal(end))
	assert.Equal(t, domain.StateDayEnded, got.Status)

	// Clearing end_time (revoked end_day) must persist as NULL again.
	sess.EndTime = nil
	sess.Status = domain.StateWorking
	require.NoError(t, sessions.Update(ctx, sess))
	got, err = sessions.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Nil(t, got.EndTime)
}

func TestSessionUpdate_Missing(t *testing.T) {
	database := testutil.NewTestDB(t)
	sessions := NewSQLiteSessionRepo(database)

	sess := testutil.NewTestSession()
	err := sessions.Update(context.Background(), sess)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionDate_UniquePerDay(t *testing.T) {
	database := testutil.NewTestDB(t)
	sessions := NewSQLiteSessionRepo(database)
	ctx := context.Background()

	require.NoError(t, sessions.Create(ctx, testutil.NewTestSession()))
	err := sessions.Create(ctx, testutil.NewTestSession())
	require.Error(t, err, "one session row per calendar day")
}
