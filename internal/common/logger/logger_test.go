package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerEmitsOneJSONObjectPerLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	lg := NewWithWriter("pos-api", &buf)

	lg.Info("order_created", map[string]any{"order_number": "ORD-1", "total": 11.8})
	lg.Error("event_publish_failed", errors.New("broker down"), map[string]any{"kind": "order.paid"})

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &first))
	require.Equal(t, "INFO", first["level"])
	require.Equal(t, "pos-api", first["service"])
	require.Equal(t, "order_created", first["action"])
	require.Equal(t, "ORD-1", first["order_number"])
	require.NotEmpty(t, first["timestamp"])

	var second map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &second))
	require.Equal(t, "ERROR", second["level"])
	require.Equal(t, "broker down", second["error"])
}
