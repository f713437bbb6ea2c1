package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/logging"
	"github.com/google/uuid"
)

// Latency is the artificial delay applied before each kind of operation.
type Latency struct {
	Auth   time.Duration
	Logout time.Duration
	Tasks  time.Duration
}

// DefaultLatency mimics a remote API.
func DefaultLatency() Latency {
	return Latency{Auth: 600 * time.Millisecond, Logout: 200 * time.Millisecond, Tasks: 400 * time.Millisecond}
}

type options struct {
	latency Latency
	logger  logging.Logger
	now     func() time.Time
	newID   func() string
}

type Option func(*options)

func WithLatency(l Latency) Option {
	return func(o *options) { o.latency = l }
}

func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithClock replaces time.Now for task timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator replaces uuid.NewString for user and task ids.
func WithIDGenerator(f func() string) Option {
	return func(o *options) { o.newID = f }
}

func buildOptions(opts []Option) options {
	o := options{
		logger: logging.Nop(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// sleep waits d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
