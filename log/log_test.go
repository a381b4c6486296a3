package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCronLoggerError(t *testing.T) {
	buf := &bytes.Buffer{}
	l := slog.New(slog.NewJSONHandler(buf, nil))

	CronLogger(l).Error(errors.New("boom"), "job panicked", "entry", 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "job panicked", rec["msg"])
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "boom", rec["err"])
	assert.EqualValues(t, 1, rec["entry"])
}

func TestRequestLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	l := slog.New(slog.NewJSONHandler(buf, nil))

	h := RequestLogger(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/menu", nil))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "/api/menu", rec["path"])
	assert.EqualValues(t, http.StatusTeapot, rec["status"])
}
