// Package metrics holds shared metric settings and the OpenTelemetry meter
// provider that exports to Prometheus.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Milliseconds scales second-based buckets for histograms recorded in ms.
func Milliseconds(buckets []float64) []float64 {
	out := make([]float64, len(buckets))
	for i, b := range buckets {
		out[i] = b * 1000
	}

	return out
}

// HistogramView applies the given bucket boundaries to the named histogram.
func HistogramView(name string, buckets []float64) sdkmetric.View {
	return sdkmetric.NewView(
		sdkmetric.Instrument{Name: name},
		sdkmetric.Stream{Aggregation: sdkmetric.AggregationExplicitBucketHistogram{Boundaries: buckets}},
	)
}

// NewMeterProvider returns an OpenTelemetry meter provider whose instruments
// are collected by the given Prometheus registerer.
func NewMeterProvider(registerer prometheus.Registerer, views ...sdkmetric.View) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp), sdkmetric.WithView(views...)), nil
}
