package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	ReasonUnknownUser   = "unknown_user"
	ReasonWrongPassword = "wrong_password"
)

type Metrics struct {
	RequestDuration *prometheus.HistogramVec
	LoginSuccess    prometheus.Counter
	LoginFailure    *prometheus.CounterVec
	RegisterSuccess prometheus.Counter
	MessagesPosted  prometheus.Counter
}

// New creates the board's collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		LoginSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "login_success_total",
			Help: "Total successful login attempts",
		}),
		LoginFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "login_failure_total",
			Help: "Total failed login attempts",
		}, []string{"reason"}),
		RegisterSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "register_success_total",
			Help: "Total successful register attempts",
		}),
		MessagesPosted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "messages_posted_total",
			Help: "Total messages successfully posted",
		}),
	}

	reg.MustRegister(
		m.RequestDuration,
		m.LoginSuccess,
		m.LoginFailure,
		m.RegisterSuccess,
		m.MessagesPosted,
	)

	return m
}
