package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/maxgas/maxgas/internal/login"
	"github.com/maxgas/maxgas/internal/submit"
)

// Outcome of a journaled submission.
type Outcome string

const (
	OutcomePending   Outcome = "pending"
	OutcomeOK        Outcome = "ok"
	OutcomeFailed    Outcome = "failed"
	OutcomeCancelled Outcome = "cancelled"
)

// Entry is one journal row.
type Entry struct {
	ID          string
	PhoneMasked string
	SubmittedAt time.Time
	FinishedAt  *time.Time
	Outcome     Outcome
	Error       *string
}

// Store records submissions. It satisfies submit.Recorder.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

var _ submit.Recorder = (*Store)(nil)

func (s *Store) Started(ctx context.Context, sub submit.Submission) error {
	_, err := s.db.ExecContext(ctx, `
	INSERT INTO submissions(id, phone_masked, submitted_at, outcome)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(id) DO NOTHING;
	`, sub.ID, login.MaskPhone(sub.Values.Phone), sub.At.UnixMilli(), OutcomePending)
	if err != nil {
		return fmt.Errorf("journal start %s: %w", sub.ID, err)
	}
	return nil
}

func (s *Store) Finished(ctx context.Context, sub submit.Submission, at time.Time, err error) error {
	outcome := OutcomeOK
	var msg *string
	switch {
	case errors.Is(err, context.Canceled):
		outcome = OutcomeCancelled
	case err != nil:
		outcome = OutcomeFailed
		text := err.Error()
		msg = &text
	}
	_, execErr := s.db.ExecContext(ctx, `
	UPDATE submissions SET finished_at = ?, outcome = ?, error = ?
	WHERE id = ?;
	`, at.UnixMilli(), outcome, msg, sub.ID)
	if execErr != nil {
		return fmt.Errorf("journal finish %s: %w", sub.ID, execErr)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT id, phone_masked, submitted_at, finished_at, outcome, error
	FROM submissions ORDER BY submitted_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Entry
	for rows.Next() {
		var (
			e         Entry
			submitted int64
			finished  sql.NullInt64
			outcome   string
			errText   sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.PhoneMasked, &submitted, &finished, &outcome, &errText); err != nil {
			return nil, err
		}
		e.SubmittedAt = time.UnixMilli(submitted).UTC()
		if finished.Valid {
			t := time.UnixMilli(finished.Int64).UTC()
			e.FinishedAt = &t
		}
		e.Outcome = Outcome(outcome)
		if errText.Valid {
			e.Error = &errText.String
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Reset deletes every journal row and compacts the file.
func (s *Store) Reset(ctx context.Context) error {
	if err := WithTx(s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM submissions"); err != nil {
			return fmt.Errorf("reset submissions: %w", err)
		}
		return nil
	}); err != nil {
		return err
	}
	return s.Compact(ctx)
}

// Compact rewrites the database file to reclaim space left by deleted rows.
func (s *Store) Compact(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "VACUUM"); err != nil {
		return fmt.Errorf("vacuum journal: %w", err)
	}
	return nil
}
