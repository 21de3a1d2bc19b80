package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	require.Equal(t, DebugLevel, ParseLevel(" DEBUG "))
	require.Equal(t, WarnLevel, ParseLevel("warn"))
	require.Equal(t, DisabledLevel, ParseLevel("disabled"))
	require.Equal(t, InfoLevel, ParseLevel("verbose"))
	require.Equal(t, InfoLevel, ParseLevel(""))
}

func TestNewWritesJSONAtConfiguredLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	lgr := New(Config{Level: WarnLevel, Output: &buf})

	lgr.Info().Msg("dropped")
	require.Zero(t, buf.Len())

	lgr.Warn().Int64("studentID", 7).Msg("kept")
	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "kept", line["message"])
	require.Equal(t, "warn", line["level"])
	require.EqualValues(t, 7, line["studentID"])
}

func TestNewPrettyOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	lgr := New(Config{Level: InfoLevel, Pretty: true, Output: &buf})
	lgr.Info().Msg("hello registry")
	require.Contains(t, buf.String(), "hello registry")
	require.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}
