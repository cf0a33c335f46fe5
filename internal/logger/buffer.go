package logger

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/techconsult/internal/ports"
)

const defaultBufferLimit = 512

// Level orders buffered entries by severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Entry is one buffered log call.
type Entry struct {
	Ctx     context.Context
	Level   Level
	Message string
	Fields  []interface{}
}

// Field returns the value logged under key, if any.
func (e Entry) Field(key string) (interface{}, bool) {
	for i := 0; i+1 < len(e.Fields); i += 2 {
		if k, ok := e.Fields[i].(string); ok && k == key {
			return e.Fields[i+1], true
		}
	}
	return nil, false
}

// Buffer holds entries written before the real logger exists, and doubles as
// a recorder in tests. The oldest entry is dropped once limit is reached.
type Buffer struct {
	mu      sync.Mutex
	limit   int
	entries []Entry
}

// NewBuffer creates a buffer keeping at most limit entries (512 when limit
// is not positive).
func NewBuffer(limit int) *Buffer {
	if limit <= 0 {
		limit = defaultBufferLimit
	}
	return &Buffer{limit: limit}
}

// Logger returns a ports.Logger writing into b.
func (b *Buffer) Logger() ports.Logger {
	return &bufferedLogger{buffer: b}
}

func (b *Buffer) add(entry Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.entries) == b.limit {
		b.entries = append(b.entries[1:], entry)
		return
	}
	b.entries = append(b.entries, entry)
}

// Entries returns a copy of what has been recorded.
func (b *Buffer) Entries() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Entry(nil), b.entries...)
}

// Messages lists the recorded messages in order.
func (b *Buffer) Messages() []string {
	entries := b.Entries()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Message
	}
	return out
}

// Flush replays every entry into delegate in order and empties the buffer.
func (b *Buffer) Flush(delegate ports.Logger) {
	if delegate == nil {
		return
	}

	b.mu.Lock()
	entries := b.entries
	b.entries = nil
	b.mu.Unlock()

	for _, e := range entries {
		switch e.Level {
		case LevelDebug:
			delegate.Debug(e.Ctx, e.Message, e.Fields...)
		case LevelWarn:
			delegate.Warn(e.Ctx, e.Message, e.Fields...)
		case LevelError:
			delegate.Error(e.Ctx, e.Message, e.Fields...)
		default:
			delegate.Info(e.Ctx, e.Message, e.Fields...)
		}
	}
}

type bufferedLogger struct {
	buffer *Buffer
	fields []interface{}
}

func (l *bufferedLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, LevelDebug, msg, fields)
}

func (l *bufferedLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, LevelInfo, msg, fields)
}

func (l *bufferedLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, LevelWarn, msg, fields)
}

func (l *bufferedLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, LevelError, msg, fields)
}

func (l *bufferedLogger) With(fields ...interface{}) ports.Logger {
	return &bufferedLogger{buffer: l.buffer, fields: append(append([]interface{}{}, l.fields...), fields...)}
}

func (l *bufferedLogger) log(ctx context.Context, level Level, msg string, fields []interface{}) {
	if l == nil || l.buffer == nil {
		return
	}
	l.buffer.add(Entry{
		Ctx:     ctx,
		Level:   level,
		Message: msg,
		Fields:  append(append([]interface{}{}, l.fields...), fields...),
	})
}
