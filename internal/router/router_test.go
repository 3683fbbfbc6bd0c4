// If you are AI: This file contains unit tests for raw-target routing.

package router

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func serve(r *Router, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func named(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		Text(w, http.StatusOK, name)
	}
}

func TestUnmatchedIsNotFound(t *testing.T) {
	r := New()
	r.Exact("/a", named("a"))

	for _, target := range []string{"/", "/b", "/a/", "/A", "/a?x=1"} {
		w := serve(r, http.MethodGet, target)
		assert.Equal(t, http.StatusNotFound, w.Code, target)
		assert.Equal(t, "not found", w.Body.String(), target)
		assert.Equal(t, "text/plain", w.Header().Get("Content-Type"), target)
	}
}

func TestFirstMatchWins(t *testing.T) {
	r := New()
	r.Exact("/hello", named("exact"))
	r.Prefix("/hello", named("prefix"))
	r.Prefix("/h", named("short"))

	assert.Equal(t, "exact", serve(r, http.MethodGet, "/hello").Body.String())
	assert.Equal(t, "prefix", serve(r, http.MethodGet, "/hello/x").Body.String())
	assert.Equal(t, "short", serve(r, http.MethodGet, "/hx").Body.String())
}

func TestPrefixHasNoSegmentBoundary(t *testing.T) {
	r := New()
	r.Prefix("/hello", named("hello"))

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/helloabc").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/hello?name=x").Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/hell").Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/Hello").Code)
}

func TestQueryStringIsPartOfTarget(t *testing.T) {
	r := New()
	r.Exact("/", named("root"))

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/").Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/?x=1").Code)
}

func TestMethodIgnored(t *testing.T) {
	r := New()
	r.Exact("/a", named("a"))

	for _, m := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, "BREW"} {
		w := serve(r, m, "/a")
		assert.Equal(t, http.StatusOK, w.Code, m)
		assert.Equal(t, "a", w.Body.String(), m)
	}
}

func TestRawTargetFallback(t *testing.T) {
	req := &http.Request{URL: &url.URL{Path: "/hello", RawQuery: "x=1"}}
	assert.Equal(t, "/hello?x=1", RawTarget(req))

	req = &http.Request{RequestURI: "/a//b", URL: &url.URL{Path: "/a/b"}}
	assert.Equal(t, "/a//b", RawTarget(req), "raw target is never cleaned")

	assert.Equal(t, "", RawTarget(&http.Request{}))
}

func TestText(t *testing.T) {
	w := httptest.NewRecorder()
	Text(w, http.StatusServiceUnavailable, "shutting down")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "text/plain", w.Header().Get("Content-Type"))
	assert.Equal(t, "shutting down", w.Body.String())
}
