// Package submission delivers request-form leads.
package submission

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/techconsult/internal/domain/lead"
	"github.com/alexisbeaulieu97/techconsult/internal/ports"
)

// ErrRejected is returned by a Simulated service configured to fail.
var ErrRejected = errors.New("submission rejected")

// Service accepts a lead and acknowledges it.
type Service interface {
	Submit(ctx context.Context, data lead.FormData) (lead.Ack, error)
}

// Func adapts a function to Service.
type Func func(ctx context.Context, data lead.FormData) (lead.Ack, error)

// Submit calls f.
func (f Func) Submit(ctx context.Context, data lead.FormData) (lead.Ack, error) {
	return f(ctx, data)
}

// Options configures a Simulated service.
type Options struct {
	Delay  time.Duration
	Fail   bool
	Logger ports.Logger
	Now    func() time.Time
}

// Simulated stands in for a real backend: it waits Delay and then
// acknowledges, or rejects when Fail is set. Nothing leaves the process.
type Simulated struct {
	delay  time.Duration
	fail   bool
	logger ports.Logger
	now    func() time.Time
}

var _ Service = (*Simulated)(nil)

// NewSimulated builds a Simulated service.
func NewSimulated(opts Options) *Simulated {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Simulated{
		delay:  opts.Delay,
		fail:   opts.Fail,
		logger: opts.Logger,
		now:    now,
	}
}

// Submit waits for the configured delay or until ctx is done.
func (s *Simulated) Submit(ctx context.Context, data lead.FormData) (lead.Ack, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return lead.Ack{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return lead.Ack{}, err
	}

	if s.fail {
		if s.logger != nil {
			s.logger.Warn(ctx, "submission rejected", "service_type", data.ServiceType.String())
		}
		return lead.Ack{}, ErrRejected
	}

	ack := lead.Ack{Reference: uuid.NewString(), ReceivedAt: s.now()}
	if s.logger != nil {
		s.logger.Info(ctx, "submission accepted",
			"reference", ack.Reference,
			"service_type", data.ServiceType.String(),
		)
	}
	return ack, nil
}
