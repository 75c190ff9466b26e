package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QuizzesGenerated counts generated quizzes partitioned by question
	// source ("remote", "local" or "mixed").
	QuizzesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quizforge_quizzes_generated_total",
		Help: "Quizzes generated, by question source.",
	}, []string{"source"})

	// RemoteFailures counts remote generation attempts that fell back to
	// local synthesis.
	RemoteFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quizforge_remote_generation_failures_total",
		Help: "Remote generation attempts that failed and fell back.",
	})

	// QuizzesScored counts completed quiz scorings.
	QuizzesScored = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quizforge_quizzes_scored_total",
		Help: "Quizzes scored on completion.",
	})

	// Exports counts quiz exports by format.
	Exports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quizforge_quiz_exports_total",
		Help: "Quiz exports, by format.",
	}, []string{"format"})

	// CacheHits counts generation requests served from the quiz cache.
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quizforge_quiz_cache_hits_total",
		Help: "Generation requests served from cache.",
	})
)
