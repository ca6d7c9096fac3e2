package observability

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// QuizCollector bundles Prometheus metrics for the quiz service.
type QuizCollector struct {
	gatherer prometheus.Gatherer

	QuestionsShown *prometheus.CounterVec
	Answers        *prometheus.CounterVec
	ActiveSessions prometheus.Gauge
	FramesRendered prometheus.Counter
	HTTPRequests   *prometheus.CounterVec
	HTTPDurations  *prometheus.HistogramVec
}

// NewQuizCollector registers quiz metrics against the provided registerer,
// defaulting to the global Prometheus registry when nil.
func NewQuizCollector(reg prometheus.Registerer) (*QuizCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	questions, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quiz_questions_total",
		Help: "Questions shown, labeled by region name.",
	}, []string{"region"}), "quiz_questions_total")
	if err != nil {
		return nil, err
	}

	answers, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quiz_answers_total",
		Help: "Submitted answers, labeled by outcome (correct or wrong).",
	}, []string{"outcome"}), "quiz_answers_total")
	if err != nil {
		return nil, err
	}

	active, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "quiz_active_sessions",
		Help: "Sessions with a live scene graph on this instance.",
	}), "quiz_active_sessions")
	if err != nil {
		return nil, err
	}

	frames, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scene_frames_total",
		Help: "Frames stepped across all scene graphs.",
	}), "scene_frames_total")
	if err != nil {
		return nil, err
	}

	requests, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Handled HTTP requests, labeled by method, route and status code.",
	}, []string{"method", "route", "code"}), "http_requests_total")
	if err != nil {
		return nil, err
	}

	durations, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"method", "route"}), "http_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	return &QuizCollector{
		gatherer:       gatherer,
		QuestionsShown: questions,
		Answers:        answers,
		ActiveSessions: active,
		FramesRendered: frames,
		HTTPRequests:   requests,
		HTTPDurations:  durations,
	}, nil
}

// ObserveQuestion records a question shown for region.
func (c *QuizCollector) ObserveQuestion(region string) {
	if c == nil {
		return
	}
	c.QuestionsShown.WithLabelValues(region).Inc()
}

// ObserveAnswer records a graded answer.
func (c *QuizCollector) ObserveAnswer(correct bool) {
	if c == nil {
		return
	}
	outcome := "wrong"
	if correct {
		outcome = "correct"
	}
	c.Answers.WithLabelValues(outcome).Inc()
}

// SetActiveSessions sets the live session gauge.
func (c *QuizCollector) SetActiveSessions(n int) {
	if c == nil {
		return
	}
	c.ActiveSessions.Set(float64(n))
}

// ObserveFrame counts one stepped frame.
func (c *QuizCollector) ObserveFrame() {
	if c == nil {
		return
	}
	c.FramesRendered.Inc()
}

// GinMiddleware records request counts and durations per route template.
func (c *QuizCollector) GinMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		if c == nil {
			return
		}
		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := ctx.Request.Method
		c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(ctx.Writer.Status())).Inc()
		c.HTTPDurations.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes a ready-to-use /metrics handler.
func (c *QuizCollector) Handler() http.Handler {
	if c == nil || c.gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}
