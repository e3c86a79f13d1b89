package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "insightiq",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests received",
	}, []string{"method", "path", "status"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "insightiq",
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	interviewsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "insightiq",
		Name:      "interviews_created_total",
		Help:      "Total number of interviews created",
	})

	interviewsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "insightiq",
		Name:      "interviews_completed_total",
		Help:      "Total number of interviews completed",
	})

	analyzerRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "insightiq",
		Name:      "analyzer_requests_total",
		Help:      "Total number of response analyzer invocations",
	}, []string{"result"})

	analyzerLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "insightiq",
		Name:      "analyzer_request_duration_seconds",
		Help:      "Duration of response analyzer invocations in seconds",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10),
	})
)

func IncInterviewsCreated()   { interviewsCreated.Inc() }
func IncInterviewsCompleted() { interviewsCompleted.Inc() }

// ObserveAnalyzer records one analyzer invocation; result is "ok", "error"
// or "timeout".
func ObserveAnalyzer(result string, elapsed time.Duration) {
	analyzerRequests.WithLabelValues(result).Inc()
	analyzerLatency.Observe(elapsed.Seconds())
}

// Middleware instruments every gin request with count and latency, keyed by
// the route template so path parameters don't explode the label space.
func Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}
		labels := prometheus.Labels{
			"method": ctx.Request.Method,
			"path":   path,
			"status": strconv.Itoa(ctx.Writer.Status()),
		}
		httpRequests.With(labels).Inc()
		httpLatency.With(labels).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the default Prometheus metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
