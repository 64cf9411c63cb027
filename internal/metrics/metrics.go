package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "zootube"

// Recorder owns every collector the service exports. A nil *Recorder records nothing.
type Recorder struct {
	viewsRecorded      prometheus.Counter
	viewsDebounced     prometheus.Counter
	viewRecordFailures prometheus.Counter
	tokensRevoked      prometheus.Counter
	revocationFailures prometheus.Counter
	authRejections     *prometheus.CounterVec
	rateLimitHits      prometheus.Counter
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		viewsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "views_recorded_total",
			Help:      "Watch events that incremented the view counters",
		}),
		viewsDebounced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "views_debounced_total",
			Help:      "Watch events skipped because the fingerprint was seen inside the debounce window",
		}),
		viewRecordFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "view_record_failures_total",
			Help:      "Watch events that failed to record",
		}),
		tokensRevoked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_revoked_total",
			Help:      "Session tokens added to the revocation list",
		}),
		revocationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "revocation_failures_total",
			Help:      "Revocation list writes that failed",
		}),
		authRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_rejections_total",
			Help:      "Requests rejected by the authorization gate",
		}, []string{"reason"}),
		rateLimitHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limit_hits_total",
			Help:      "Requests that exceeded the auth endpoint rate limit",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		r.viewsRecorded,
		r.viewsDebounced,
		r.viewRecordFailures,
		r.tokensRevoked,
		r.revocationFailures,
		r.authRejections,
		r.rateLimitHits,
		r.httpRequests,
		r.httpDuration,
	)
	return r
}

func (r *Recorder) ViewRecorded() {
	if r != nil {
		r.viewsRecorded.Inc()
	}
}

func (r *Recorder) ViewDebounced() {
	if r != nil {
		r.viewsDebounced.Inc()
	}
}

func (r *Recorder) ViewRecordFailed() {
	if r != nil {
		r.viewRecordFailures.Inc()
	}
}

func (r *Recorder) TokenRevoked() {
	if r != nil {
		r.tokensRevoked.Inc()
	}
}

func (r *Recorder) RevocationFailed() {
	if r != nil {
		r.revocationFailures.Inc()
	}
}

func (r *Recorder) AuthRejected(reason string) {
	if r != nil {
		r.authRejections.WithLabelValues(reason).Inc()
	}
}

func (r *Recorder) RateLimitHit() {
	if r != nil {
		r.rateLimitHits.Inc()
	}
}

// Middleware counts requests by matched route so path parameters do not explode cardinality.
// It must run after the logger middleware, which renders chain errors into the response.
func (r *Recorder) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if r == nil {
			return c.Next()
		}
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		r.httpRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		r.httpDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler exposes the gathered metrics in the Prometheus text format.
func Handler(g prometheus.Gatherer) fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
}
