package service

import "github.com/prometheus/client_golang/prometheus"

var (
	apptBooked = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "appointments_booked_total", Help: "Count of appointments booked"},
	)
	apptCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "appointments_cancelled_total", Help: "Count of appointments cancelled"},
	)
	apptExpired = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "appointments_expired_total", Help: "Count of appointments flipped to unavailable by the sweep"},
	)
)

func init() { prometheus.MustRegister(apptBooked, apptCancelled, apptExpired) }
