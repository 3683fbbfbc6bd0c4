// If you are AI: This file contains unit tests for the probe handlers.

package health

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"hellokube/internal/router"
)

type flag struct{ v atomic.Bool }

func (f *flag) Draining() bool { return f.v.Load() }

func newRouter(f *flag) *router.Router {
	r := router.New()
	New(f).RegisterRoutes(r)
	return r
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHealthzIgnoresDrainFlag(t *testing.T) {
	f := &flag{}
	r := newRouter(f)

	for _, draining := range []bool{false, true} {
		f.v.Store(draining)
		w := get(r, "/healthz")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", w.Body.String())
		assert.Equal(t, "text/plain", w.Header().Get("Content-Type"))
	}
}

func TestReadyzFollowsDrainFlag(t *testing.T) {
	f := &flag{}
	r := newRouter(f)

	w := get(r, "/readyz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ready", w.Body.String())

	f.v.Store(true)

	w = get(r, "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "shutting down", w.Body.String())
	assert.Equal(t, "text/plain", w.Header().Get("Content-Type"))
}

func TestProbesMatchExactly(t *testing.T) {
	r := newRouter(&flag{})

	for _, target := range []string{"/healthz/", "/healthz?full=1", "/readyz/x", "/READYZ"} {
		assert.Equal(t, http.StatusNotFound, get(r, target).Code, target)
	}
}
