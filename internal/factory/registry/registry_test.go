package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voiceagent-workers/internal/common/errors"
	"voiceagent-workers/internal/models"
)

func TestLookup_AllRegisteredArchetypes(t *testing.T) {
	for _, archetype := range models.AllArchetypes() {
		profile, err := Lookup(archetype)
		require.NoError(t, err, "archetype %s should be registered", archetype)

		assert.Equal(t, archetype, profile.Archetype)
		assert.NotEmpty(t, profile.Name)
		assert.NotEmpty(t, profile.Description)
		assert.NotEmpty(t, profile.Capabilities)
		assert.NotEmpty(t, profile.Personality)
		assert.Greater(t, profile.Voice.Speed, 0.0)
		assert.Greater(t, profile.Voice.Pitch, 0.0)
		assert.NotEmpty(t, profile.Voice.Tone)
	}
}

func TestLookup_UnknownArchetype(t *testing.T) {
	_, err := Lookup(models.Archetype("robot_overlord"))
	require.Error(t, err)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeUnsupportedArchetype, stdErr.Code)
	assert.False(t, stdErr.Retryable)
	assert.Contains(t, stdErr.Details, "robot_overlord")
}

func TestLookupLanguage(t *testing.T) {
	tests := []struct {
		name       string
		language   models.Language
		wantAccent string
		wantSpeed  *float64
	}{
		{name: "english keeps base speed", language: models.LanguageEnglish, wantAccent: "american"},
		{name: "spanish pins speed", language: models.LanguageSpanish, wantAccent: "neutral", wantSpeed: speedPtr(0.95)},
		{name: "chinese pins speed", language: models.LanguageChinese, wantAccent: "mainland", wantSpeed: speedPtr(0.9)},
		{name: "italian pins speed", language: models.LanguageItalian, wantAccent: "standard", wantSpeed: speedPtr(1.05)},
		{name: "unknown falls back to english", language: models.Language("fr"), wantAccent: "american"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lp := LookupLanguage(tt.language)
			assert.Equal(t, tt.wantAccent, lp.Accent)
			if tt.wantSpeed == nil {
				assert.Nil(t, lp.Speed)
			} else {
				require.NotNil(t, lp.Speed)
				assert.Equal(t, *tt.wantSpeed, *lp.Speed)
			}
		})
	}
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported(models.ArchetypeInboundReceptionist))
	assert.False(t, Supported(models.Archetype("")))
}
