// Package metrics owns the process Prometheus registry and the collectors
// the name service reports through
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "namejar"

// Set groups the collectors; the zero value is not usable, use New
type Set struct {
	reg *prometheus.Registry

	Drawn        *prometheus.CounterVec   // names drawn, by locale
	Batches      *prometheus.CounterVec   // draw requests, by locale
	Fallbacks    *prometheus.CounterVec   // gender fallbacks, by locale
	Translations *prometheus.CounterVec   // translation attempts, by result
	DrawSeconds  *prometheus.HistogramVec // draw latency incl. translation, by locale
}

// New builds a Set on a fresh registry with Go and process collectors attached
func New() *Set {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	s := &Set{
		reg: reg,
		Drawn: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "names_drawn_total",
			Help:      "Names drawn.",
		}, []string{"locale"}),
		Batches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "draw_requests_total",
			Help:      "Draw requests served.",
		}, []string{"locale"}),
		Fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gender_fallbacks_total",
			Help:      "Draws whose gender category had no names and fell back to another.",
		}, []string{"locale"}),
		Translations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "translations_total",
			Help:      "Translation attempts by result (ok, error, skipped).",
		}, []string{"result"}),
		DrawSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "draw_duration_seconds",
			Help:      "Draw latency including translation.",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 2.5, 5},
		}, []string{"locale"}),
	}
	reg.MustRegister(s.Drawn, s.Batches, s.Fallbacks, s.Translations, s.DrawSeconds)
	return s
}

// Registry exposes the underlying registry, mainly for tests
func (s *Set) Registry() *prometheus.Registry { return s.reg }

// Handler serves the registry in the Prometheus exposition format
func (s *Set) Handler() http.Handler {
	return promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{Registry: s.reg})
}

var (
	defaultOnce sync.Once
	defaultSet  *Set
)

// Default returns the process-wide Set
func Default() *Set {
	defaultOnce.Do(func() { defaultSet = New() })
	return defaultSet
}
