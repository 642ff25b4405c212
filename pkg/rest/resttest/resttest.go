// Package resttest drives an Engine in handler tests.
package resttest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/silktrader/statuary/pkg/rest"
)

// NewEngine returns an engine logging into the void.
func NewEngine(t *testing.T) *rest.Engine {
	t.Helper()
	logger, _ := test.NewNullLogger()
	engine, err := rest.New(rest.Config{Logger: logger})
	require.NoError(t, err)
	return engine
}

// Request describes a call; Body is marshalled to JSON unless it's already a string.
type Request struct {
	Method string
	Path   string
	Body   interface{}
	Bearer string
}

func Do(t *testing.T, engine *rest.Engine, r Request) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	switch b := r.Body.(type) {
	case nil:
	case string:
		body = bytes.NewBufferString(b)
	default:
		encoded, err := json.Marshal(b)
		require.NoError(t, err)
		body = bytes.NewBuffer(encoded)
	}

	request := httptest.NewRequest(r.Method, r.Path, body)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if r.Bearer != "" {
		request.Header.Set("Authorization", "Bearer "+r.Bearer)
	}

	recorder := httptest.NewRecorder()
	engine.Handler().ServeHTTP(recorder, request)
	return recorder
}

// Decode unmarshals the recorded body, failing the test on malformed JSON.
func Decode[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &out), recorder.Body.String())
	return out
}

// Get and Post are shorthands for the most frequent calls.
func Get(t *testing.T, engine *rest.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	return Do(t, engine, Request{Method: http.MethodGet, Path: path})
}

func Post(t *testing.T, engine *rest.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return Do(t, engine, Request{Method: http.MethodPost, Path: path, Body: body})
}
