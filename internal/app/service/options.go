package service

import "time"

type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the time source used to stamp created_at, updated_at
// and completed_at.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts []Option) options {
	o := options{now: defaultNow}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Stored timestamps keep microsecond precision on every supported driver.
func defaultNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
