package metrics

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// InstrumentTransport wraps an outbound transport with otelhttp client metrics.
// A nil meter provider records nothing.
func InstrumentTransport(base http.RoundTripper, meterProvider metric.MeterProvider, peer string) http.RoundTripper {
	if meterProvider == nil {
		meterProvider = noop.NewMeterProvider()
	}
	return otelhttp.NewTransport(
		base,
		otelhttp.WithMeterProvider(meterProvider),
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return peer + " " + r.Method
		}),
	)
}
