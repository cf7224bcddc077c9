package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_WritesRoleAndFuncToExtraWriter(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role", WithWriter(&buf))

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "func")
	assert.Contains(t, entry, "time")
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("lvl", WithLevel(zerolog.WarnLevel), WithWriter(&buf))
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	l.Debug().Msg("hidden")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("shown")
	assert.NotZero(t, buf.Len())
}

func TestOpenLogFile_CreatesDirectoryAndNamedFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")
	now := time.Date(2025, 7, 1, 12, 30, 45, 0, time.UTC)

	f, err := OpenLogFile(dir, now)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, filepath.Join(dir, "20250701T123045.logs"), f.Name())
	_, err = os.Stat(f.Name())
	assert.NoError(t, err)
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("ctx", WithWriter(&buf))
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from ctx")

	assert.Contains(t, buf.String(), "from ctx")
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("req", WithWriter(&buf))
	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(l.WithContext(r.Context()))

	FromRequest(r).Info().Msg("from request")

	assert.Contains(t, buf.String(), "from request")
}

func TestGetChildLogger_DoesNotMutateParent(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()

	assert.NotSame(t, parent, child)
}

func TestStdLogger_WritesThroughZerolog(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf)}

	l.StdLogger().Print("http: TLS handshake error")

	assert.Contains(t, buf.String(), "http: TLS handshake error")
}
