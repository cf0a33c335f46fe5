package submission

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/techconsult/internal/domain/lead"
	"github.com/alexisbeaulieu97/techconsult/internal/logger"
)

var sample = lead.FormData{
	Name:        "Grace Hopper",
	Email:       "grace@example.com",
	Company:     "Navy",
	ServiceType: lead.ServiceCloud,
	Description: "Move COBOL to the cloud",
}

func TestSimulatedAcknowledgesAfterDelay(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := NewSimulated(Options{Delay: 20 * time.Millisecond, Logger: logger.NewNop(), Now: func() time.Time { return fixed }})

	start := time.Now()
	ack, err := svc.Submit(context.Background(), sample)
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, elapsed, 20*time.Millisecond)
	assert.Equal(t, fixed, ack.ReceivedAt)
	_, parseErr := uuid.Parse(ack.Reference)
	assert.NoError(t, parseErr)
}

func TestSimulatedReferencesAreUnique(t *testing.T) {
	svc := NewSimulated(Options{})

	first, err := svc.Submit(context.Background(), sample)
	require.NoError(t, err)
	second, err := svc.Submit(context.Background(), sample)
	require.NoError(t, err)

	assert.NotEqual(t, first.Reference, second.Reference)
}

func TestSimulatedFailureMode(t *testing.T) {
	svc := NewSimulated(Options{Fail: true})

	_, err := svc.Submit(context.Background(), sample)
	assert.ErrorIs(t, err, ErrRejected)
}

func TestSimulatedHonoursCancellation(t *testing.T) {
	svc := NewSimulated(Options{Delay: time.Minute})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Submit(ctx, sample)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSimulatedZeroDelayStillChecksContext(t *testing.T) {
	svc := NewSimulated(Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Submit(ctx, sample)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFuncAdapter(t *testing.T) {
	var got lead.FormData
	svc := Func(func(_ context.Context, data lead.FormData) (lead.Ack, error) {
		got = data
		return lead.Ack{Reference: "stub"}, nil
	})

	ack, err := svc.Submit(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, "stub", ack.Reference)
	assert.Equal(t, sample, got)
}
