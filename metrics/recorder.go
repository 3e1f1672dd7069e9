// SPDX-License-Identifier: EPL-2.0

package metrics

import (
	"time"

	"github.com/ik5/audiowm/watermark"
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder wraps watermark.Embed and watermark.Extract calls with
// Prometheus instrumentation: call counts, latency histograms, and (for
// Extract) a gauge tracking the most recent call's confidence.
type Recorder struct {
	embedTotal     prometheus.Counter
	embedErrors    prometheus.Counter
	embedLatency   prometheus.Histogram
	extractTotal   prometheus.Counter
	extractErrors  prometheus.Counter
	extractLatency prometheus.Histogram
	lastConfidence prometheus.Gauge
}

// NewRecorder builds a Recorder with its own metric instances. Register
// them with a prometheus.Registerer via Collectors before use.
func NewRecorder() *Recorder {
	return &Recorder{
		embedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "audiowm_embed_total",
			Help: "Total watermark.Embed calls.",
		}),
		embedErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "audiowm_embed_errors_total",
			Help: "Total watermark.Embed calls that returned an error.",
		}),
		embedLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "audiowm_embed_duration_seconds",
			Help:    "Latency of watermark.Embed calls.",
			Buckets: prometheus.DefBuckets,
		}),
		extractTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "audiowm_extract_total",
			Help: "Total watermark.Extract calls.",
		}),
		extractErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "audiowm_extract_errors_total",
			Help: "Total watermark.Extract calls that returned an error.",
		}),
		extractLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "audiowm_extract_duration_seconds",
			Help:    "Latency of watermark.Extract calls.",
			Buckets: prometheus.DefBuckets,
		}),
		lastConfidence: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "audiowm_extract_last_confidence",
			Help: "Confidence of the most recently completed watermark.Extract call.",
		}),
	}
}

// Collectors returns every metric this Recorder owns, for passing to
// prometheus.Registerer.MustRegister.
func (r *Recorder) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		r.embedTotal, r.embedErrors, r.embedLatency,
		r.extractTotal, r.extractErrors, r.extractLatency,
		r.lastConfidence,
	}
}

// WrapEmbed times and counts a call to watermark.Embed, passed as fn so
// the caller supplies the already-bound arguments.
func (r *Recorder) WrapEmbed(fn func() ([]float32, error)) ([]float32, error) {
	timer := prometheus.NewTimer(r.embedLatency)
	defer timer.ObserveDuration()
	r.embedTotal.Inc()

	out, err := fn()
	if err != nil {
		r.embedErrors.Inc()
	}
	return out, err
}

// WrapExtract times and counts a call to watermark.Extract, and records
// its Confidence on success.
func (r *Recorder) WrapExtract(fn func() (watermark.Result, error)) (watermark.Result, error) {
	start := time.Now()
	r.extractTotal.Inc()

	result, err := fn()
	r.extractLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		r.extractErrors.Inc()
		return result, err
	}

	r.lastConfidence.Set(result.Confidence)
	return result, nil
}
