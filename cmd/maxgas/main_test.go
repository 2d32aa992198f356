package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/maxgas/maxgas/internal/journal"
	"github.com/maxgas/maxgas/internal/login"
	"github.com/maxgas/maxgas/internal/submit"
)

func TestPrintHistory(t *testing.T) {
	ctx := context.Background()
	db, err := journal.Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	store := journal.NewStore(db)

	var out bytes.Buffer
	require.NoError(t, printHistory(ctx, &out, store, 5))
	require.Equal(t, "no submissions recorded\n", out.String())

	at := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	sub := submit.Submission{ID: "s1", Values: login.Values{Phone: "0712345678", Password: "secret"}, At: at}
	require.NoError(t, store.Started(ctx, sub))
	require.NoError(t, store.Finished(ctx, sub, at.Add(1500*time.Millisecond), nil))

	out.Reset()
	require.NoError(t, printHistory(ctx, &out, store, 5))
	got := out.String()
	require.Contains(t, got, "s1")
	require.Contains(t, got, "ok")
	require.Contains(t, got, "1.5s")
	require.Contains(t, got, "*******678")
	require.False(t, strings.Contains(got, "secret"))
}
