package testutil

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Entry is one log call seen by a LogRecorder. Grouped keys are flattened
// to "group.key".
type Entry struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

func (e Entry) has(key string, value any) bool {
	v, ok := e.Attrs[key]
	return ok && v == value
}

type journal struct {
	mu      sync.Mutex
	entries []Entry
}

func (j *journal) add(e Entry) {
	j.mu.Lock()
	j.entries = append(j.entries, e)
	j.mu.Unlock()
}

func (j *journal) snapshot() []Entry {
	j.mu.Lock()
	defer j.mu.Unlock()
	return slices.Clone(j.entries)
}

// LogRecorder is a slog.Handler that keeps every record at every level.
// Loggers derived with With or WithGroup write into the same journal.
type LogRecorder struct {
	journal *journal
	bound   map[string]any
	group   string
	t       testing.TB
}

// NewLogRecorder returns an empty recorder. Records are echoed through
// t.Logf when t is not nil.
func NewLogRecorder(t testing.TB) *LogRecorder {
	return &LogRecorder{journal: &journal{}, t: t}
}

// NewTestLogger returns a logger backed by a fresh recorder.
func NewTestLogger(t testing.TB) (*slog.Logger, *LogRecorder) {
	rec := NewLogRecorder(t)
	return slog.New(rec), rec
}

func (r *LogRecorder) Enabled(context.Context, slog.Level) bool { return true }

func (r *LogRecorder) Handle(_ context.Context, rec slog.Record) error {
	attrs := make(map[string]any, len(r.bound)+rec.NumAttrs())
	for k, v := range r.bound {
		attrs[k] = v
	}
	rec.Attrs(func(a slog.Attr) bool {
		attrs[r.group+a.Key] = a.Value.Any()
		return true
	})

	r.journal.add(Entry{Level: rec.Level, Message: rec.Message, Attrs: attrs})
	if r.t != nil {
		r.t.Logf("%s %s %v", rec.Level, rec.Message, attrs)
	}
	return nil
}

func (r *LogRecorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *r
	next.bound = make(map[string]any, len(r.bound)+len(attrs))
	for k, v := range r.bound {
		next.bound[k] = v
	}
	for _, a := range attrs {
		next.bound[r.group+a.Key] = a.Value.Any()
	}
	return &next
}

func (r *LogRecorder) WithGroup(name string) slog.Handler {
	if name == "" {
		return r
	}
	next := *r
	next.group = r.group + name + "."
	return &next
}

// Entries returns a copy of everything recorded so far.
func (r *LogRecorder) Entries() []Entry { return r.journal.snapshot() }

// AtLevel returns the entries logged at exactly level.
func (r *LogRecorder) AtLevel(level slog.Level) []Entry {
	return slices.DeleteFunc(r.Entries(), func(e Entry) bool { return e.Level != level })
}

// HasMessage reports whether any entry's message contains substr.
func (r *LogRecorder) HasMessage(substr string) bool {
	return slices.ContainsFunc(r.Entries(), func(e Entry) bool {
		return strings.Contains(e.Message, substr)
	})
}

// HasAttr reports whether any entry carries key with exactly value. Integer
// attributes are stored as int64.
func (r *LogRecorder) HasAttr(key string, value any) bool {
	return slices.ContainsFunc(r.Entries(), func(e Entry) bool { return e.has(key, value) })
}

func (r *LogRecorder) Len() int {
	r.journal.mu.Lock()
	defer r.journal.mu.Unlock()
	return len(r.journal.entries)
}

func (r *LogRecorder) Reset() {
	r.journal.mu.Lock()
	r.journal.entries = nil
	r.journal.mu.Unlock()
}

// AssertLogContains fails t unless some entry at level has a message
// containing substr.
func AssertLogContains(t testing.TB, rec *LogRecorder, level slog.Level, substr string) bool {
	t.Helper()
	entries := rec.AtLevel(level)
	found := slices.ContainsFunc(entries, func(e Entry) bool {
		return strings.Contains(e.Message, substr)
	})
	return assert.Truef(t, found, "no %s entry containing %q in %v", level, substr, messages(entries))
}

// AssertLogAttr fails t unless some entry carries key=value.
func AssertLogAttr(t testing.TB, rec *LogRecorder, key string, value any) bool {
	t.Helper()
	return assert.Truef(t, rec.HasAttr(key, value), "no entry with %s=%v in %v", key, value, rec.Entries())
}

// AssertNoErrors fails t if anything was logged at error level.
func AssertNoErrors(t testing.TB, rec *LogRecorder) bool {
	t.Helper()
	return assert.Empty(t, rec.AtLevel(slog.LevelError), "unexpected error entries")
}

func messages(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Message
	}
	return out
}
