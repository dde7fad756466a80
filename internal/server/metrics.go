package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	solveRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rootfinder_solve_requests_total",
		Help: "Number of solve requests by operation and outcome.",
	}, []string{"operation", "status"})

	solveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rootfinder_solve_duration_seconds",
		Help:    "Time spent isolating and refining roots.",
		Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
	}, []string{"operation"})

	rootsFound = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rootfinder_roots_found_total",
		Help: "Total number of roots returned to callers.",
	})
)
