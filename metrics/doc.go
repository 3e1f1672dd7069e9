// SPDX-License-Identifier: EPL-2.0

// Package metrics instruments watermark.Embed and watermark.Extract
// calls for Prometheus: call counts, latency histograms, and mean
// extraction confidence. It is purely additive instrumentation around
// the core codec; watermark and payload take no dependency on it.
//
//	rec := metrics.NewRecorder()
//	prometheus.MustRegister(rec.Collectors()...)
//
//	out, err := rec.WrapEmbed(func() ([]float32, error) {
//	    return watermark.Embed(samples, payload, bank, opts)
//	})
//
//	result, err := rec.WrapExtract(func() (watermark.Result, error) {
//	    return watermark.Extract(samples, bank, opts)
//	})
package metrics
