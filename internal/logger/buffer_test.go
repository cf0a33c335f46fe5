package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/techconsult/internal/ports"
)

func TestBufferRecordsScopedFields(t *testing.T) {
	buf := NewBuffer(0)
	log := buf.Logger().With("component", "shell")

	log.Info(context.Background(), "page mounted", "route", "/")
	log.Error(context.Background(), "page crashed")

	entries := buf.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, LevelInfo, entries[0].Level)
	route, ok := entries[0].Field("route")
	require.True(t, ok)
	assert.Equal(t, "/", route)
	component, _ := entries[1].Field("component")
	assert.Equal(t, "shell", component)
	assert.Equal(t, []string{"page mounted", "page crashed"}, buf.Messages())
}

func TestBufferDropsOldestAtLimit(t *testing.T) {
	buf := NewBuffer(2)
	log := buf.Logger()
	for _, msg := range []string{"one", "two", "three"} {
		log.Debug(context.Background(), msg)
	}
	assert.Equal(t, []string{"two", "three"}, buf.Messages())
}

func TestBufferFlushReplaysIntoDelegate(t *testing.T) {
	buf := NewBuffer(0)
	ctx := ports.WithCorrelationID(context.Background(), "cid-1")
	buf.Logger().Warn(ctx, "config file not found", "path", "/x.yaml")

	var out bytes.Buffer
	delegate, err := New(Options{Level: "debug", Writer: &out})
	require.NoError(t, err)

	buf.Flush(delegate)

	assert.Empty(t, buf.Entries())
	assert.Contains(t, out.String(), `"level":"warn"`)
	assert.Contains(t, out.String(), `"message":"config file not found"`)
	assert.Contains(t, out.String(), `"correlation_id":"cid-1"`)
	assert.Contains(t, out.String(), `"path":"/x.yaml"`)
}
