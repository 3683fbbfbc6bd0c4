// If you are AI: This file implements the request router.
// Routes match the raw request-target string in registration order.

package router

import (
	"net/http"
	"strings"
)

// ContentType is sent on every response, without a charset parameter.
const ContentType = "text/plain"

// Router dispatches requests by comparing the raw request-target
// (path plus any query string) against an ordered route list.
// The request method is ignored. The first matching route wins and
// unmatched requests get 404 "not found".
type Router struct {
	routes []route
}

type route struct {
	pattern string
	prefix  bool
	handler http.Handler
}

// New creates an empty router.
func New() *Router {
	return &Router{}
}

// Exact registers h for requests whose raw target equals path.
func (r *Router) Exact(path string, h http.HandlerFunc) {
	r.routes = append(r.routes, route{pattern: path, handler: h})
}

// Prefix registers h for requests whose raw target begins with prefix.
// There is no segment boundary check: "/hello" matches "/helloabc".
func (r *Router) Prefix(prefix string, h http.HandlerFunc) {
	r.routes = append(r.routes, route{pattern: prefix, prefix: true, handler: h})
}

// ServeHTTP implements http.Handler.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	target := RawTarget(req)
	for _, rt := range r.routes {
		if rt.matches(target) {
			rt.handler.ServeHTTP(w, req)
			return
		}
	}
	Text(w, http.StatusNotFound, "not found")
}

// matches compares target against the route by equality or raw prefix.
func (rt route) matches(target string) bool {
	if rt.prefix {
		return strings.HasPrefix(target, rt.pattern)
	}
	return target == rt.pattern
}

// RawTarget returns the request-target exactly as received.
// Requests built in-process without one fall back to the URL's
// escaped path and raw query.
func RawTarget(req *http.Request) string {
	if req.RequestURI != "" {
		return req.RequestURI
	}
	if req.URL == nil {
		return ""
	}
	return req.URL.RequestURI()
}

// Text writes a text/plain response with the given status and body.
func Text(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
