// Package submit runs a login form submission: it records the submitted
// values to an observability sink and hands them to a Submitter.
package submit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/maxgas/maxgas/internal/login"
)

// DefaultDelay is how long the simulated submission takes.
const DefaultDelay = 1500 * time.Millisecond

// Submitter delivers validated login values. Implementations must return
// promptly once ctx is done.
type Submitter interface {
	Submit(ctx context.Context, v login.Values) error
}

// Simulated stands in for a network call. It waits Delay and always succeeds
// unless ctx ends first.
type Simulated struct {
	Delay time.Duration
}

func (s Simulated) Submit(ctx context.Context, _ login.Values) error {
	t := time.NewTimer(s.Delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return TimeoutError("simulated submit", ctx.Err())
		}
		return fmt.Errorf("simulated submit: %w", ctx.Err())
	}
}

// Submission is one attempt to submit the form.
type Submission struct {
	ID     string
	Values login.Values
	At     time.Time
}

// Recorder observes submissions. Started is called before the Submitter runs,
// Finished after it returns.
type Recorder interface {
	Started(ctx context.Context, s Submission) error
	Finished(ctx context.Context, s Submission, at time.Time, err error) error
}

// Recorders fans out to each recorder in order and joins their errors.
type Recorders []Recorder

func (rs Recorders) Started(ctx context.Context, s Submission) error {
	var errs []error
	for _, r := range rs {
		if err := r.Started(ctx, s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (rs Recorders) Finished(ctx context.Context, s Submission, at time.Time, err error) error {
	var errs []error
	for _, r := range rs {
		if rerr := r.Finished(ctx, s, at, err); rerr != nil {
			errs = append(errs, rerr)
		}
	}
	return errors.Join(errs...)
}

// Service ties a Submitter to a Recorder.
type Service struct {
	Submitter Submitter
	Recorder  Recorder
	Now       func() time.Time
}

// Run records s, submits its values and records the outcome. Recorder
// failures never fail the submission; they are returned separately.
func (svc *Service) Run(ctx context.Context, s Submission) (submitErr, recordErr error) {
	if svc.Submitter == nil {
		return fmt.Errorf("submit: no submitter configured"), nil
	}
	if s.At.IsZero() {
		s.At = svc.now()
	}
	var recErrs []error
	if svc.Recorder != nil {
		if err := svc.Recorder.Started(ctx, s); err != nil {
			recErrs = append(recErrs, fmt.Errorf("record start: %w", err))
		}
	}
	submitErr = svc.Submitter.Submit(ctx, s.Values)
	if svc.Recorder != nil {
		// record the outcome even when ctx was cancelled
		if err := svc.Recorder.Finished(context.WithoutCancel(ctx), s, svc.now(), submitErr); err != nil {
			recErrs = append(recErrs, fmt.Errorf("record finish: %w", err))
		}
	}
	return submitErr, errors.Join(recErrs...)
}

func (svc *Service) now() time.Time {
	if svc.Now != nil {
		return svc.Now()
	}
	return time.Now()
}
