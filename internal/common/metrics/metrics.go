// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	AgentDraftsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_drafts_created_total",
			Help: "Total number of agent drafts synthesized",
		},
		[]string{"archetype", "language"},
	)

	VoiceTuningClamped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voice_tuning_clamped_total",
			Help: "Voice tuning values clamped into their valid range",
		},
		[]string{"archetype", "language", "field"},
	)
)
