package voice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voiceagent-workers/internal/common/config"
	"voiceagent-workers/internal/common/logger"
	"voiceagent-workers/internal/factory/registry"
	"voiceagent-workers/internal/models"
)

func defaultBounds() config.VoiceBoundsConfig {
	return config.VoiceBoundsConfig{
		MinSpeed: 0.5,
		MaxSpeed: 2.0,
		MinPitch: 0.5,
		MaxPitch: 2.0,
	}
}

func createTestResolver(t *testing.T, bounds config.VoiceBoundsConfig) *Resolver {
	return NewResolver(bounds, logger.NewTestLogger(t))
}

func TestResolve_AppliesLanguageAdjustment(t *testing.T) {
	resolver := createTestResolver(t, defaultBounds())

	profile, err := registry.Lookup(models.ArchetypeInboundReceptionist)
	require.NoError(t, err)

	tuning := resolver.Resolve(profile, models.LanguageChinese)

	assert.Equal(t, 0.9, tuning.Speed) // Mandarin replaces the 1.0 base speed
	assert.Equal(t, 1.0, tuning.Pitch)
	assert.Equal(t, "mainland", tuning.Accent)
	assert.Equal(t, "professional", tuning.Tone)
}

func TestResolve_LanguageSpeedReplacesBase(t *testing.T) {
	resolver := createTestResolver(t, defaultBounds())

	// Spanish pins speed to 0.95 for every archetype, including those whose
	// base speed already differs from 1.0.
	for _, archetype := range models.AllArchetypes() {
		profile, err := registry.Lookup(archetype)
		require.NoError(t, err)

		tuning := resolver.Resolve(profile, models.LanguageSpanish)
		assert.Equal(t, 0.95, tuning.Speed, "archetype %s", archetype)
	}

	// English carries no speed of its own, so the base survives.
	profile, err := registry.Lookup(models.ArchetypeOutboundMarketing)
	require.NoError(t, err)
	assert.Equal(t, 1.1, resolver.Resolve(profile, models.LanguageEnglish).Speed)
}

func TestResolve_AlwaysWithinBounds(t *testing.T) {
	bounds := defaultBounds()
	resolver := createTestResolver(t, bounds)

	for _, archetype := range models.AllArchetypes() {
		profile, err := registry.Lookup(archetype)
		require.NoError(t, err)

		for _, language := range models.AllLanguages() {
			tuning := resolver.Resolve(profile, language)

			assert.GreaterOrEqual(t, tuning.Speed, bounds.MinSpeed)
			assert.LessOrEqual(t, tuning.Speed, bounds.MaxSpeed)
			assert.GreaterOrEqual(t, tuning.Pitch, bounds.MinPitch)
			assert.LessOrEqual(t, tuning.Pitch, bounds.MaxPitch)
		}
	}
}

func TestResolve_ClampsToNarrowBounds(t *testing.T) {
	resolver := createTestResolver(t, config.VoiceBoundsConfig{
		MinSpeed: 0.95,
		MaxSpeed: 1.0,
		MinPitch: 0.95,
		MaxPitch: 1.0,
	})

	profile, err := registry.Lookup(models.ArchetypeOutboundFollowUp)
	require.NoError(t, err)

	// Base speed 0.9 and pitch 1.1 both land outside the narrow range.
	tuning := resolver.Resolve(profile, models.LanguageEnglish)

	assert.Equal(t, 0.95, tuning.Speed)
	assert.Equal(t, 1.0, tuning.Pitch)
}
