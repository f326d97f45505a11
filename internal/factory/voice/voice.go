// Package voice resolves the final voice tuning for an archetype/language
// pair. Out-of-range values are clamped into the configured bounds and
// recorded, never rejected.
package voice

import (
	"voiceagent-workers/internal/common/config"
	"voiceagent-workers/internal/common/logger"
	"voiceagent-workers/internal/common/metrics"
	"voiceagent-workers/internal/factory/registry"
	"voiceagent-workers/internal/models"
)

// Resolver computes voice tuning from the registry tables.
type Resolver struct {
	bounds config.VoiceBoundsConfig
	logger logger.Logger
}

// NewResolver creates a voice resolver with the given bounds.
func NewResolver(bounds config.VoiceBoundsConfig, log logger.Logger) *Resolver {
	return &Resolver{bounds: bounds, logger: log}
}

// Resolve applies the language adjustment to the archetype's base voice and
// clamps speed and pitch into the configured bounds. A language that sets a
// speed replaces the base value outright; Spanish agents speak at 0.95 no
// matter which archetype they started from. Each clamp is logged and counted
// so drift in the tables shows up in dashboards instead of silently shifting
// agent voices.
func (r *Resolver) Resolve(profile registry.Profile, language models.Language) models.VoiceTuning {
	lp := registry.LookupLanguage(language)

	tuning := profile.Voice
	if lp.Speed != nil {
		tuning.Speed = *lp.Speed
	}
	tuning.Accent = lp.Accent

	tuning.Speed = r.clamp(tuning.Speed, "speed", profile.Archetype, language)
	tuning.Pitch = r.clamp(tuning.Pitch, "pitch", profile.Archetype, language)

	return tuning
}

func (r *Resolver) clamp(value float64, field string, archetype models.Archetype, language models.Language) float64 {
	min, max := r.boundsFor(field)

	clamped := value
	if clamped < min {
		clamped = min
	}
	if clamped > max {
		clamped = max
	}

	if clamped != value {
		r.logger.Warn("voice tuning value clamped", map[string]interface{}{
			"archetype": string(archetype),
			"language":  string(language),
			"field":     field,
			"value":     value,
			"clamped":   clamped,
		})
		metrics.VoiceTuningClamped.WithLabelValues(string(archetype), string(language), field).Inc()
	}

	return clamped
}

func (r *Resolver) boundsFor(field string) (float64, float64) {
	if field == "pitch" {
		return r.bounds.MinPitch, r.bounds.MaxPitch
	}
	return r.bounds.MinSpeed, r.bounds.MaxSpeed
}
