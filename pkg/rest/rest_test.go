package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) (*Engine, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	engine, err := New(Config{Logger: logger})
	require.NoError(t, err)
	return engine, hook
}

func tag(name string, trail *[]string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*trail = append(*trail, name)
			next.ServeHTTP(w, r)
		})
	}
}

func TestNewRequiresLogger(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestMiddlewareOrder(t *testing.T) {
	engine, _ := newTestEngine(t)
	var trail []string
	engine.Use(tag("global-1", &trail), tag("global-2", &trail))
	engine.Get("/statues/:id", func(w http.ResponseWriter, r *http.Request) {
		trail = append(trail, "handler:"+GetParam(r, "id"))
		w.WriteHeader(http.StatusOK)
	}, tag("route-1", &trail), tag("route-2", &trail))

	recorder := httptest.NewRecorder()
	engine.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/statues/statue-1", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, []string{"global-1", "global-2", "route-1", "route-2", "handler:statue-1"}, trail)
}

func TestRequestContext(t *testing.T) {
	engine, hook := newTestEngine(t)

	var seen RequestContext
	engine.Delete("/comments/:id", func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		seen, ok = GetRequestContext(r)
		require.True(t, ok)
		Logger(r).Info("deleting")
		w.WriteHeader(http.StatusNoContent)
	})

	recorder := httptest.NewRecorder()
	engine.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/comments/comment-1", nil))

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, seen.ReqUUID.String(), recorder.Header().Get("X-Request-Id"))

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, seen.ReqUUID.String(), entries[0].Data["reqid"])
	assert.Equal(t, "request served", entries[1].Message)
	assert.Equal(t, http.StatusNoContent, entries[1].Data["status"])
}

func TestLoggerFallsBackOutsideEngine(t *testing.T) {
	assert.NotNil(t, Logger(httptest.NewRequest(http.MethodGet, "/", nil)))
}

func TestUnknownRoutesAnswerJSON(t *testing.T) {
	engine, _ := newTestEngine(t)
	engine.Get("/tours", func(w http.ResponseWriter, r *http.Request) {})

	recorder := httptest.NewRecorder()
	engine.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Resource not found")

	recorder = httptest.NewRecorder()
	engine.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodPut, "/tours", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}
