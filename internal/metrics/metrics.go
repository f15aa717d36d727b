package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	GenerationTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "creatorflow_generation_total",
		Help: "Generation results by task and the strategy that produced them",
	}, []string{"task", "strategy"})

	GenerationFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "creatorflow_generation_failures_total",
		Help: "AI generation failures that fell back to templates",
	}, []string{"task", "kind"})

	AIRequestSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "creatorflow_ai_request_seconds",
		Help:    "Duration of AI generation attempts",
		Buckets: []float64{.1, .25, .5, 1, 2, 3, 5, 7.5, 10, 15},
	}, []string{"task"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "creatorflow_http_requests_total",
		Help: "HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	TokenRefreshTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "creatorflow_token_refresh_total",
		Help: "Background social token refreshes",
	}, []string{"platform", "status"})
)

// MustRegister registers every collector with registerer.
func MustRegister(registerer prometheus.Registerer) {
	registerer.MustRegister(
		GenerationTotal,
		GenerationFailures,
		AIRequestSeconds,
		HTTPRequestsTotal,
		TokenRefreshTotal,
	)
}

func ObserveGeneration(task, strategy string) {
	GenerationTotal.WithLabelValues(task, strategy).Inc()
}

func ObserveFailure(task, kind string) {
	GenerationFailures.WithLabelValues(task, kind).Inc()
}

func ObserveAIRequest(task string, start time.Time) {
	AIRequestSeconds.WithLabelValues(task).Observe(time.Since(start).Seconds())
}

func ObserveHTTPRequest(method, route string, status int) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

func ObserveTokenRefresh(platform string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	TokenRefreshTotal.WithLabelValues(platform, status).Inc()
}
