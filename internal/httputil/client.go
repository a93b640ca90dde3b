package httputil

import (
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"go.opentelemetry.io/otel/metric"

	"github.com/allisson/vehiclebff/internal/metrics"
)

// ClientOption customizes an outbound client.
type ClientOption func(*http.Transport)

// WithDialControl installs control on every dial, after DNS resolution.
func WithDialControl(control func(network, address string, c syscall.RawConn) error) ClientOption {
	return func(t *http.Transport) {
		dialer := &net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
			Control:   control,
		}
		t.DialContext = dialer.DialContext
	}
}

// NewOutboundClient returns a pooled HTTP client bounded by timeout whose transport
// records otelhttp client metrics under peer.
func NewOutboundClient(
	timeout time.Duration,
	meterProvider metric.MeterProvider,
	peer string,
	opts ...ClientOption,
) *http.Client {
	transport := cleanhttp.DefaultPooledTransport()
	for _, opt := range opts {
		opt(transport)
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: metrics.InstrumentTransport(transport, meterProvider, peer),
	}
}
