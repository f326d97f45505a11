package escalation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voiceagent-workers/internal/common/config"
	"voiceagent-workers/internal/models"
)

func defaultEscalationConfig() config.EscalationConfig {
	return config.EscalationConfig{
		NegativeSentimentBound: -0.7,
		CallDurationCeiling:    600,
	}
}

func TestBuild_TriggerInvariants(t *testing.T) {
	for _, archetype := range models.AllArchetypes() {
		triggers := Build(archetype, defaultEscalationConfig())
		require.NotEmpty(t, triggers, "archetype %s has no escalation triggers", archetype)

		seen := make(map[string]bool)
		for _, trigger := range triggers {
			assert.False(t, seen[trigger.ID], "duplicate trigger id %s", trigger.ID)
			seen[trigger.ID] = true

			assert.True(t, trigger.TriggerType.Valid())
			assert.NotEmpty(t, trigger.Condition)
			assert.NotEmpty(t, trigger.Action)
			assert.NotEmpty(t, trigger.Target)
			assert.True(t, trigger.Enabled)
		}
	}
}

func TestBuild_InboundGuardsUseConfiguredThresholds(t *testing.T) {
	cfg := config.EscalationConfig{
		NegativeSentimentBound: -0.5,
		CallDurationCeiling:    300,
	}

	for _, archetype := range []models.Archetype{
		models.ArchetypeInboundReceptionist,
		models.ArchetypeInboundCustomerSupport,
	} {
		triggers := Build(archetype, cfg)

		byType := make(map[models.TriggerType]models.EscalationTrigger)
		for _, trigger := range triggers {
			byType[trigger.TriggerType] = trigger
		}

		sentiment, ok := byType[models.TriggerSentiment]
		require.True(t, ok, "archetype %s missing sentiment guard", archetype)
		assert.Equal(t, "sentiment_score < -0.5", sentiment.Condition)

		duration, ok := byType[models.TriggerDuration]
		require.True(t, ok, "archetype %s missing duration guard", archetype)
		assert.Equal(t, "call_duration > 300", duration.Condition)
	}
}

func TestBuild_OutboundSkipsInboundGuards(t *testing.T) {
	for _, archetype := range []models.Archetype{
		models.ArchetypeOutboundFollowUp,
		models.ArchetypeOutboundMarketing,
	} {
		for _, trigger := range Build(archetype, defaultEscalationConfig()) {
			assert.NotEqual(t, models.TriggerSentiment, trigger.TriggerType)
			assert.NotEqual(t, models.TriggerDuration, trigger.TriggerType)
		}
	}
}

func TestBuild_MarketingRegulatoryTriggerEndsCall(t *testing.T) {
	triggers := Build(models.ArchetypeOutboundMarketing, defaultEscalationConfig())

	require.Len(t, triggers, 1)
	trigger := triggers[0]
	assert.Equal(t, models.TriggerKeyword, trigger.TriggerType)
	assert.Contains(t, trigger.Condition, "do not call")
	assert.Equal(t, "end_call_immediately", trigger.Action)
	assert.Equal(t, "compliance_team", trigger.Target)
}
