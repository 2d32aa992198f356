package submit

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// ISOTimestamp is the timestamp layout written for each submission.
const ISOTimestamp = "2006-01-02T15:04:05.000Z07:00"

// ConsoleRecorder writes each submission to a zerolog logger. Values are
// logged verbatim for debugging; the logger must not point anywhere shared.
type ConsoleRecorder struct {
	Log zerolog.Logger
}

func NewConsoleRecorder(log zerolog.Logger) *ConsoleRecorder {
	return &ConsoleRecorder{Log: log.With().Str("component", "login").Logger()}
}

// Started emits four lines: a marker, the phone, the password and the
// submission time.
func (r *ConsoleRecorder) Started(_ context.Context, s Submission) error {
	l := r.Log.With().Str("submission_id", s.ID).Logger()
	l.Info().Msg("=== login form submitted ===")
	l.Info().Str("phone", s.Values.Phone).Msg("phone")
	l.Info().Str("password", s.Values.Password).Msg("password")
	l.Info().Str("timestamp", s.At.UTC().Format(ISOTimestamp)).Msg("timestamp")
	return nil
}

func (r *ConsoleRecorder) Finished(_ context.Context, s Submission, at time.Time, err error) error {
	ev := r.Log.Debug()
	if err != nil {
		ev = r.Log.Warn().Err(err)
		if kind, ok := KindOf(err); ok {
			ev = ev.Str("kind", string(kind))
		}
	}
	ev.Str("submission_id", s.ID).
		Dur("elapsed", at.Sub(s.At)).
		Msg("login submission finished")
	return nil
}
