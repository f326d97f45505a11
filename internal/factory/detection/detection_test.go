package detection

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voiceagent-workers/internal/models"
)

func TestBuild_Shape(t *testing.T) {
	for _, archetype := range models.AllArchetypes() {
		cfg := Build(archetype)

		assert.True(t, cfg.IntentRecognition)
		assert.True(t, cfg.SentimentAnalysis)
		assert.NotEmpty(t, cfg.Keywords)
		require.NotEmpty(t, cfg.CustomDetectors, "archetype %s has no custom detectors", archetype)
	}
}

func TestBuild_DetectorPatternsCompile(t *testing.T) {
	for _, archetype := range models.AllArchetypes() {
		for _, detector := range Build(archetype).CustomDetectors {
			_, err := regexp.Compile(detector.Pattern)
			assert.NoError(t, err, "detector %s pattern does not compile", detector.Name)

			assert.Greater(t, detector.ConfidenceThreshold, 0.0)
			assert.LessOrEqual(t, detector.ConfidenceThreshold, 1.0)
			assert.NotEmpty(t, detector.Action)
		}
	}
}

func TestBuild_ArchetypeDetectors(t *testing.T) {
	tests := []struct {
		archetype models.Archetype
		name      string
		action    string
	}{
		{models.ArchetypeInboundReceptionist, "appointment_intent", "trigger_appointment_flow"},
		{models.ArchetypeOutboundFollowUp, "reschedule_intent", "trigger_reschedule_flow"},
		{models.ArchetypeOutboundMarketing, "interest_level", "mark_as_hot_lead"},
		{models.ArchetypeInboundCustomerSupport, "technical_issue", "start_technical_support"},
	}

	for _, tt := range tests {
		t.Run(string(tt.archetype), func(t *testing.T) {
			detectors := Build(tt.archetype).CustomDetectors
			require.Len(t, detectors, 1)
			assert.Equal(t, tt.name, detectors[0].Name)
			assert.Equal(t, tt.action, detectors[0].Action)
		})
	}
}

func TestBuild_SampleUtterancesMatch(t *testing.T) {
	appointment := Build(models.ArchetypeInboundReceptionist).CustomDetectors[0]
	re := regexp.MustCompile(appointment.Pattern)
	assert.True(t, re.MatchString("i would like to schedule an appointment"))
	assert.False(t, re.MatchString("what are your opening hours"))

	technical := Build(models.ArchetypeInboundCustomerSupport).CustomDetectors[0]
	re = regexp.MustCompile(technical.Pattern)
	assert.True(t, re.MatchString("the app keeps showing an error"))
}
