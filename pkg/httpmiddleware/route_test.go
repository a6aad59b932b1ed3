package httpmiddleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

type fakeRoute struct {
	name    string
	id      string
	pattern string
}

func (r fakeRoute) Name() string        { return r.name }
func (r fakeRoute) OperationID() string { return r.id }
func (r fakeRoute) PathPattern() string { return r.pattern }

// fakeServer routes like the generated server mounted under /api.
type fakeServer struct{}

func (fakeServer) FindPath(method string, u *url.URL) (fakeRoute, bool) {
	switch {
	case method == http.MethodGet && strings.HasPrefix(u.Path, "/api/webhooks/orders/"):
		return fakeRoute{name: "GetOrder", id: "getOrder", pattern: "/webhooks/orders/{id}"}, true
	case method == http.MethodPost && u.Path == "/api/webhooks/orders":
		return fakeRoute{name: "ReceiveOrder", id: "receiveOrder", pattern: "/webhooks/orders"}, true
	}
	return fakeRoute{}, false
}

var testRoutes fakeServer

func (s fakeServer) finder() RouteFinder {
	return MakeRouteFinder(s)
}

type testTelemetry struct {
	tp trace.TracerProvider
}

func (t testTelemetry) TracerProvider() trace.TracerProvider { return t.tp }
func (testTelemetry) MeterProvider() metric.MeterProvider    { return noop.NewMeterProvider() }

func TestMakeRouteFinder(t *testing.T) {
	find := testRoutes.finder()

	route, ok := find(httptest.NewRequest(http.MethodPost, "/api/webhooks/orders", nil))
	assert.True(t, ok)
	assert.Equal(t, "ReceiveOrder", route.Name())
	assert.Equal(t, "/webhooks/orders", route.PathPattern())

	route, ok = find(httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.False(t, ok)
	assert.Nil(t, route)
}

func TestInstrument_SpanNames(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	h := Instrument("satdesk-webhooks", testRoutes.finder(), testTelemetry{tp: tp})(okHandler())

	for _, target := range []string{"/api/webhooks/orders/W-1", "/unknown", "/livez"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	var names []string
	for _, span := range rec.Ended() {
		names = append(names, span.Name())
	}
	assert.Equal(t, []string{"getOrder", "satdesk-webhooks GET"}, names)
}

func TestLabeler(t *testing.T) {
	h := Labeler(testRoutes.finder())(okHandler())

	serve := func(target string) []attribute.KeyValue {
		l := &otelhttp.Labeler{}
		req := httptest.NewRequest(http.MethodGet, target, nil)
		req = req.WithContext(otelhttp.ContextWithLabeler(req.Context(), l))
		h.ServeHTTP(httptest.NewRecorder(), req)
		return l.Get()
	}

	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.String("http.route", "/webhooks/orders/{id}"),
		attribute.String("operation", "getOrder"),
	}, serve("/api/webhooks/orders/W-1"))
	assert.Empty(t, serve("/livez"))
}
