package testutil

import (
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRecorder_Capture(t *testing.T) {
	logger, rec := NewTestLogger(t)

	logger.Debug("debug msg")
	logger.Info("located roster", slog.String("path", "students.csv"))
	logger.Warn("empty course key", slog.Int("tuples", 2))
	logger.Error("run failed")

	assert.Equal(t, 4, rec.Len())
	assert.True(t, rec.HasMessage("located"))
	assert.False(t, rec.HasMessage("missing"))
	assert.True(t, rec.HasAttr("path", "students.csv"))
	assert.True(t, rec.HasAttr("tuples", int64(2)))
	assert.False(t, rec.HasAttr("tuples", 2), "ints are recorded as int64")

	require.Len(t, rec.AtLevel(slog.LevelWarn), 1)
	assert.Equal(t, "empty course key", rec.AtLevel(slog.LevelWarn)[0].Message)
	assert.Len(t, rec.AtLevel(slog.LevelDebug), 1)

	rec.Reset()
	assert.Zero(t, rec.Len())
	assert.Empty(t, rec.Entries())
}

func TestLogRecorder_DerivedLoggers(t *testing.T) {
	logger, rec := NewTestLogger(t)

	component := logger.With(slog.String("component", "exporter"))
	component.Info("wrote report", slog.Int("courses", 3))
	component.WithGroup("run").With(slog.String("base", "students")).Info("summary", slog.Int("rows", 4))

	assert.Equal(t, 2, rec.Len(), "derived loggers share one journal")
	assert.True(t, rec.HasAttr("component", "exporter"))
	assert.True(t, rec.HasAttr("run.rows", int64(4)))
	assert.True(t, rec.HasAttr("run.base", "students"))
	assert.False(t, rec.HasAttr("rows", int64(4)))
}

func TestLogRecorder_Concurrent(t *testing.T) {
	logger, rec := NewTestLogger(nil)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Info("concurrent log", slog.Int("goroutine", i))
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, rec.Len())
}

func TestAssertHelpers(t *testing.T) {
	logger, rec := NewTestLogger(t)
	logger.Info("important message", slog.String("component", "test"))

	assert.True(t, AssertLogContains(t, rec, slog.LevelInfo, "important"))
	assert.True(t, AssertLogAttr(t, rec, "component", "test"))
	assert.True(t, AssertNoErrors(t, rec))

	probe := &failureProbe{TB: t}
	logger.Error("something went wrong")
	assert.False(t, AssertNoErrors(probe, rec))
	assert.False(t, AssertLogContains(probe, rec, slog.LevelWarn, "important"))
	assert.False(t, AssertLogAttr(probe, rec, "component", "other"))
	assert.Equal(t, 3, probe.failures)
}

// failureProbe counts assertion failures instead of failing the test.
type failureProbe struct {
	testing.TB
	failures int
}

func (p *failureProbe) Errorf(string, ...any) { p.failures++ }

func TestWriteRosterCSV(t *testing.T) {
	dir := t.TempDir()
	path := WriteRosterCSV(t, dir, "roster", [][]string{
		{"이름", "과목"},
		{"Alice", "경제학(1, 2)"},
		{"Bob", "a|b"},
	})

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "이름,과목\nAlice,|경제학(1, 2)|\nBob,|a||b|\n", string(data))
}
