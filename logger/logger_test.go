package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_JSON(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "test",
		JSON:      true,
		Output:    &buf,
	})

	ctx := With(WithSubsystem(t.Context(), "overridden"), "tree", "prices")
	Get(ctx).Info("rotated")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "rotated", record["msg"])
	assert.Equal(t, "overridden", record["subsystem"])
	assert.Equal(t, "prices", record["tree"])
}

func TestGet_DefaultSubsystem(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "rbtree",
		Output:    &buf,
	})

	Get().Info("hello")

	assert.Contains(t, buf.String(), "subsystem=rbtree")
}

func TestGet_Muted(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{Output: &buf})

	Get(WithMuted(t.Context(), true)).Error("should not appear")

	assert.Empty(t, buf.String())
}

func TestWith_DoesNotShareValues(t *testing.T) {
	t.Parallel()

	base := With(t.Context(), "a", 1)
	left := With(base, "b", 2)
	right := With(base, "c", 3)

	assert.Equal(t, []any{"a", 1, "b", 2}, getValues(left))
	assert.Equal(t, []any{"a", 1, "c", 3}, getValues(right))
}

func TestConfigureLogging_Env(t *testing.T) { //nolint:paralleltest
	t.Setenv("LOG_JSON", "true")
	t.Setenv("LOG_LEVEL", "warn")

	var buf bytes.Buffer

	_, err := ConfigureLogging("env-test", WithOutput(&buf))
	require.NoError(t, err)

	slog.Info("dropped")
	slog.Warn("kept")

	out := strings.TrimSpace(buf.String())
	assert.NotContains(t, out, "dropped")
	assert.True(t, strings.HasPrefix(out, "{"), "expected JSON output, got %q", out)
}

func TestConfigureLogging_BadEnv(t *testing.T) { //nolint:paralleltest
	t.Setenv("LOG_LEVEL", "loud")

	_, err := ConfigureLogging("env-test")
	require.ErrorIs(t, err, ErrInvalidLogSetting)
}

func TestNullHandler(t *testing.T) {
	t.Parallel()

	h := &nullHandler{}
	assert.False(t, h.Enabled(t.Context(), slog.LevelError))
	assert.Same(t, h, h.WithGroup("g"))
	assert.Same(t, h, h.WithAttrs(nil))
}
