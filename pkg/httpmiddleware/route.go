package httpmiddleware

import (
	"net/http"
	"net/url"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

// Route describes the API operation that serves a request.
type Route interface {
	Name() string
	OperationID() string
	PathPattern() string
}

// RouteFinder resolves the Route serving r. It reports false for requests
// outside the API, such as health endpoints.
type RouteFinder func(r *http.Request) (Route, bool)

type pathFinder[R Route] interface {
	FindPath(method string, u *url.URL) (R, bool)
}

// MakeRouteFinder returns a RouteFinder backed by the router of a generated
// ogen server. Lookups do not depend on the request having been routed, so
// the finder works in middleware that runs before the server.
func MakeRouteFinder[R Route](s pathFinder[R]) RouteFinder {
	return func(r *http.Request) (Route, bool) {
		route, ok := s.FindPath(r.Method, r.URL)
		if !ok {
			return nil, false
		}
		return route, true
	}
}

// Labeler returns a middleware that adds the route and operation to the
// otelhttp server metrics. It must run inside Instrument.
func Labeler(find RouteFinder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if route, ok := find(r); ok {
				if l, ok := otelhttp.LabelerFromContext(r.Context()); ok {
					l.Add(
						attribute.String("http.route", route.PathPattern()),
						attribute.String("operation", route.OperationID()),
					)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
