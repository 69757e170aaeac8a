package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mealsLoggedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "neocal_meals_logged_total",
		Help: "Meals persisted, by input source.",
	}, []string{"source"})

	recognitionFallbackTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "neocal_recognition_fallback_total",
		Help: "Recognitions that ended in a heuristic fallback, by mode.",
	}, []string{"mode"})
)
