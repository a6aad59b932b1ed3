package httpmiddleware

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// TelemetryProvider supplies the tracer and meter providers. The sdk
// app.Telemetry satisfies it.
type TelemetryProvider interface {
	TracerProvider() trace.TracerProvider
	MeterProvider() metric.MeterProvider
}

// Instrument returns a middleware that traces requests and records server
// metrics with otelhttp. API spans are named by operation id, resolved with
// find when the span starts. Other requests get "<service> <method>".
func Instrument(service string, find RouteFinder, t TelemetryProvider) Middleware {
	return otelhttp.NewMiddleware(service,
		otelhttp.WithTracerProvider(t.TracerProvider()),
		otelhttp.WithMeterProvider(t.MeterProvider()),
		otelhttp.WithSpanNameFormatter(func(operation string, r *http.Request) string {
			if route, ok := find(r); ok {
				return route.OperationID()
			}
			return operation + " " + r.Method
		}),
		otelhttp.WithFilter(func(r *http.Request) bool {
			return r.URL.Path != "/livez" && r.URL.Path != "/readyz"
		}),
	)
}
