// Package metrics exposes Prometheus metrics for the error pipeline.
package metrics

import (
	"net/http"

	"github.com/deppfellow/mongodb-errors/internal/errs"
	"github.com/deppfellow/mongodb-errors/internal/mongoerr"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DecodeRecorder counts decoded errors by outcome and category.
//
// It satisfies mongoerr.Observer.
type DecodeRecorder struct {
	decoded *prom.CounterVec
}

var _ mongoerr.Observer = (*DecodeRecorder)(nil)

// NewDecodeRecorder constructs the recorder and registers its metrics on reg.
// A nil reg gets a fresh registry.
func NewDecodeRecorder(reg prom.Registerer) *DecodeRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	r := &DecodeRecorder{
		decoded: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "mongoerr",
			Name:      "decoded_total",
			Help:      "Errors seen by the MongoDB error decoder, by outcome and category",
		}, []string{"outcome", "category"}),
	}
	reg.MustRegister(r.decoded)
	return r
}

// ObserveDecode implements mongoerr.Observer.
func (r *DecodeRecorder) ObserveDecode(outcome mongoerr.Outcome, category errs.Category) {
	label := string(category)
	if label == "" {
		label = "none"
	}
	r.decoded.WithLabelValues(string(outcome), label).Inc()
}

// HTTPHandler returns an http.Handler that serves the metrics of reg.
func HTTPHandler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
