package journal

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/maxgas/maxgas/internal/login"
	"github.com/maxgas/maxgas/internal/submit"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db)
}

func TestStartedAndFinishedRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	at := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	sub := submit.Submission{ID: "s1", Values: login.Values{Phone: "0712345678", Password: "secret"}, At: at}

	require.NoError(t, store.Started(ctx, sub))
	entries, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, OutcomePending, entries[0].Outcome)
	require.Equal(t, "*******678", entries[0].PhoneMasked)
	require.Nil(t, entries[0].FinishedAt)

	require.NoError(t, store.Finished(ctx, sub, at.Add(1500*time.Millisecond), nil))
	entries, err = store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, OutcomeOK, entries[0].Outcome)
	require.NotNil(t, entries[0].FinishedAt)
	require.Equal(t, 1500*time.Millisecond, entries[0].FinishedAt.Sub(entries[0].SubmittedAt))
	require.Nil(t, entries[0].Error)
}

func TestPasswordIsNeverStored(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	sub := submit.Submission{ID: "s1", Values: login.Values{Phone: "0712345678", Password: "hunter22"}, At: time.Now()}
	require.NoError(t, store.Started(ctx, sub))

	var n int
	require.NoError(t, store.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM submissions WHERE phone_masked LIKE '%hunter22%' OR IFNULL(error, '') LIKE '%hunter22%'`).Scan(&n))
	require.Zero(t, n)
}

func TestFinishedOutcomes(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	base := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	cancelled := submit.Submission{ID: "c", Values: login.Values{Phone: "0712345678"}, At: base}
	failed := submit.Submission{ID: "f", Values: login.Values{Phone: "0712345678"}, At: base.Add(time.Second)}
	require.NoError(t, store.Started(ctx, cancelled))
	require.NoError(t, store.Started(ctx, failed))
	require.NoError(t, store.Finished(ctx, cancelled, base, context.Canceled))
	require.NoError(t, store.Finished(ctx, failed, base, submit.NetworkError("post", errors.New("refused"))))

	entries, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "f", entries[0].ID, "newest first")
	require.Equal(t, OutcomeFailed, entries[0].Outcome)
	require.NotNil(t, entries[0].Error)
	require.Contains(t, *entries[0].Error, "refused")
	require.Equal(t, OutcomeCancelled, entries[1].Outcome)
}

func TestStartedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	sub := submit.Submission{ID: "dup", Values: login.Values{Phone: "0712345678"}, At: time.Now()}
	require.NoError(t, store.Started(ctx, sub))
	require.NoError(t, store.Started(ctx, sub))
	entries, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	require.NoError(t, store.Started(ctx, submit.Submission{ID: "a", At: time.Now()}))
	require.NoError(t, store.Reset(ctx))
	entries, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestCompactReportsFailure(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	require.NoError(t, store.Compact(ctx))

	require.NoError(t, store.db.Close())
	require.ErrorContains(t, store.Compact(ctx), "vacuum journal")
}

func TestMigrateTwiceIsNoop(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, Migrate(store.db))
}
