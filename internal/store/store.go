// Package store persists records and operation logs through gorm.
package store

import (
	"errors"
	"time"
)

// ErrInvalidLimit is returned when a listing is asked for a non-positive number of rows.
var ErrInvalidLimit = errors.New("limit must be a positive integer")

// Option configures a store.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the time source used for createdAt, updatedAt and timestamp.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{now: func() time.Time { return time.Now().UTC() }}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
