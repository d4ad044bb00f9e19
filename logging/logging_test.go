package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/logging"
)

func TestCompactHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(logging.NewCompactHandler(&buf, nil))

	log.Info("graph loaded", "nodes", 3, "file", "campus map.dot", "ok", true)
	line := buf.String()
	assert.True(t, strings.HasPrefix(line, "[INFO]  "), line)
	assert.Contains(t, line, `graph loaded | nodes=3 file="campus map.dot" ok=true`)
	assert.True(t, strings.HasSuffix(line, "\n"))
}

func TestCompactHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(logging.NewCompactHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	log.Info("hidden")
	log.Debug("hidden")
	require.Empty(t, buf.String())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "[WARN]  ")
	assert.Contains(t, buf.String(), "shown")
}

func TestCompactHandlerSpecialKeys(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(logging.NewCompactHandler(&buf, nil))

	log.Error("query failed",
		"requestID", "0123456789abcdef",
		"durationMs", int64(12),
		"error", errors.New("no path"),
	)
	line := buf.String()
	assert.Contains(t, line, "[ERROR] ")
	assert.Contains(t, line, "req=01234567 ")
	assert.Contains(t, line, "duration=12ms")
	assert.Contains(t, line, `error="no path"`)
}

func TestCompactHandlerAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(logging.NewCompactHandler(&buf, nil)).
		With("svc", "routes").
		WithGroup("query")

	log.Info("done", "op", "path")
	assert.Contains(t, buf.String(), "done | svc=routes query.op=path")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"":      slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"Error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("loud")
	require.Error(t, err)
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, logging.GetRequestID(ctx))
	ctx = logging.WithRequestID(ctx, "abc")
	assert.Equal(t, "abc", logging.GetRequestID(ctx))
}

func TestJSONOutputCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	logging.Setup(&buf, slog.LevelInfo, true)
	t.Cleanup(func() { logging.Setup(os.Stdout, slog.LevelInfo, false) })

	ctx := logging.WithRequestID(context.Background(), "req-42")
	logging.InfoContext(ctx, "served", "op", "furthest")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "served", rec["msg"])
	assert.Equal(t, "req-42", rec["requestID"])
	assert.Equal(t, "furthest", rec["op"])
}

func TestRequestIDMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logging.Setup(&buf, slog.LevelDebug, false)
	t.Cleanup(func() { logging.Setup(os.Stdout, slog.LevelInfo, false) })

	var seen string
	h := logging.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logging.GetRequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	// generated id
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/path", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)
	got := rec.Header().Get(logging.RequestIDHeader)
	require.Equal(t, seen, got)
	_, err := uuid.Parse(got)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "request started")
	assert.Contains(t, buf.String(), "request completed")
	assert.Contains(t, buf.String(), "status=418")

	// propagated id
	req := httptest.NewRequest(http.MethodGet, "/furthest", nil)
	req.Header.Set(logging.RequestIDHeader, "client-id")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "client-id", rec.Header().Get(logging.RequestIDHeader))
	assert.Equal(t, "client-id", seen)
}
