// Package metrics - Prometheus-метрики движка риска.
// Recorder держит собственный реестр; nil *Recorder допустим и ничего не пишет.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder собирает метрики оценок, сканирования и HTTP
type Recorder struct {
	registry *prometheus.Registry

	assessments     *prometheus.CounterVec
	lookupFailures  *prometheus.CounterVec
	scanDuration    prometheus.Histogram
	scanCandidates  *prometheus.GaugeVec
	requestDuration *prometheus.HistogramVec
}

// NewRecorder создает Recorder с отдельным реестром
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := &Recorder{
		registry: registry,
		assessments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "floodrisk_assessments_total",
			Help: "Total risk assessments by tier and score source.",
		}, []string{"tier", "source"}),
		lookupFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "floodrisk_lookup_failures_total",
			Help: "Failed per-point lookups by kind.",
		}, []string{"kind"}),
		scanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "floodrisk_scan_duration_seconds",
			Help:    "Duration of bounding-box scans.",
			Buckets: prometheus.DefBuckets,
		}),
		scanCandidates: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "floodrisk_scan_candidates",
			Help: "Candidates in the last scan by stage.",
		}, []string{"stage"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "floodrisk_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	registry.MustRegister(r.assessments)
	registry.MustRegister(r.lookupFailures)
	registry.MustRegister(r.scanDuration)
	registry.MustRegister(r.scanCandidates)
	registry.MustRegister(r.requestDuration)

	return r
}

// Registry возвращает реестр
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler отдает метрики в формате Prometheus
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Assessment учитывает оценку риска; source - live, baseline или none
func (r *Recorder) Assessment(tier, source string) {
	if r == nil {
		return
	}
	r.assessments.WithLabelValues(tier, source).Inc()
}

// LookupFailure учитывает неудачный поиск (water, area, rainfall)
func (r *Recorder) LookupFailure(kind string) {
	if r == nil {
		return
	}
	r.lookupFailures.WithLabelValues(kind).Inc()
}

// Scan фиксирует длительность сканирования и размеры выборки по стадиям
func (r *Recorder) Scan(d time.Duration, gathered, processed, returned int) {
	if r == nil {
		return
	}
	r.scanDuration.Observe(d.Seconds())
	r.scanCandidates.WithLabelValues("gathered").Set(float64(gathered))
	r.scanCandidates.WithLabelValues("processed").Set(float64(processed))
	r.scanCandidates.WithLabelValues("returned").Set(float64(returned))
}

// GinMiddleware измеряет латентность запросов по шаблону маршрута
func (r *Recorder) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if r == nil {
			return
		}
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		r.requestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
