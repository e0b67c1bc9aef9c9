package logflags

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"responder/errs"
)

func TestAccessLogger_Line(t *testing.T) {
	var buf bytes.Buffer
	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 9, 17, 4, 5, 123000000, time.FixedZone("CET", 3600)))

	logger := AccessLogger(&buf, clock)
	logger.Infof("%s %s", "GET", "/anything/goes?x=1")

	assert.Equal(t, "2024-03-09T16:04:05.123Z GET /anything/goes?x=1\n", buf.String())
}

func TestAccessLogger_OneLinePerCall(t *testing.T) {
	var buf bytes.Buffer
	logger := AccessLogger(&buf, clockwork.NewRealClock())

	logger.Infof("%s %s", "GET", "/")
	logger.Infof("%s %s", "POST", "/x")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		fields := strings.Fields(line)
		require.Len(t, fields, 3)
		_, err := time.Parse(ISO8601Millis, fields[0])
		assert.NoError(t, err)
	}
}

func TestSetup_FileDestination(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "debug.log")
	require.NoError(t, Setup(true, "http", dest))
	t.Cleanup(func() { _ = Setup(false, "", "") })

	assert.True(t, HTTP())

	HTTPLogger().Debugf("id: %s", "abc")

	bs, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(bs), "DEBUG")
	assert.Contains(t, string(bs), "id: abc")
}

func TestSetup_DisabledDropsDebug(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "debug.log")
	require.NoError(t, Setup(false, "http", dest))
	t.Cleanup(func() { _ = Setup(false, "", "") })

	assert.False(t, HTTP())

	HTTPLogger().Debugf("hidden")
	HTTPLogger().Errorf("shown")

	bs, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.NotContains(t, string(bs), "hidden")
	assert.Contains(t, string(bs), "shown")
}

func TestSetup_UnknownComponent(t *testing.T) {
	err := Setup(true, "http,grpc", "")
	t.Cleanup(func() { _ = Setup(false, "", "") })

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrUnknownLogComponent))
}

func TestSetup_BadDestination(t *testing.T) {
	err := Setup(true, "http", filepath.Join(t.TempDir(), "missing", "debug.log"))
	t.Cleanup(func() { _ = Setup(false, "", "") })

	assert.Error(t, err)
}

func TestSetup_ClosesPreviousFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Setup(true, "http", filepath.Join(dir, "first.log")))
	t.Cleanup(func() { _ = Setup(false, "", "") })

	first := logFile
	require.NotNil(t, first)

	require.NoError(t, Setup(true, "http", filepath.Join(dir, "second.log")))

	_, err := first.Write([]byte("late"))
	assert.True(t, errors.Is(err, os.ErrClosed), "%v", err)

	HTTPLogger().Debugf("to second")
	bs, err := os.ReadFile(filepath.Join(dir, "second.log"))
	require.NoError(t, err)
	assert.Contains(t, string(bs), "to second")
}

func TestSetup_KeepsStderrOpen(t *testing.T) {
	require.NoError(t, Setup(true, "http", ""))
	require.NoError(t, Setup(false, "", ""))

	assert.Nil(t, logFile)
	_, err := os.Stderr.Stat()
	assert.NoError(t, err)
}
