// Package escalation derives the escalation triggers per archetype. Thresholds
// come from configuration so operations can tighten them without a release.
package escalation

import (
	"fmt"

	"voiceagent-workers/internal/common/config"
	"voiceagent-workers/internal/models"
)

func triggerID(archetype models.Archetype, slug string) string {
	return fmt.Sprintf("%s-%s", archetype, slug)
}

// Build returns the archetype's escalation triggers. Inbound archetypes share
// the sentiment and duration guards; each archetype adds its own specific
// trigger on top. The marketing opt-out trigger ends the call immediately to
// stay on the right side of do-not-call rules.
func Build(archetype models.Archetype, cfg config.EscalationConfig) []models.EscalationTrigger {
	var triggers []models.EscalationTrigger

	if archetype.Inbound() {
		triggers = append(triggers,
			models.EscalationTrigger{
				ID:          triggerID(archetype, "negative_sentiment"),
				TriggerType: models.TriggerSentiment,
				Condition:   fmt.Sprintf("sentiment_score < %.1f", cfg.NegativeSentimentBound),
				Action:      "escalate_to_human",
				Target:      "human_agent",
				Enabled:     true,
			},
			models.EscalationTrigger{
				ID:          triggerID(archetype, "long_duration"),
				TriggerType: models.TriggerDuration,
				Condition:   fmt.Sprintf("call_duration > %d", cfg.CallDurationCeiling),
				Action:      "offer_escalation",
				Target:      "human_agent",
				Enabled:     true,
			},
		)
	}

	switch archetype {
	case models.ArchetypeInboundReceptionist:
		triggers = append(triggers, models.EscalationTrigger{
			ID:          triggerID(archetype, "complex_request"),
			TriggerType: models.TriggerKeyword,
			Condition:   "keywords: legal, lawsuit, complaint, manager",
			Action:      "escalate_immediately",
			Target:      "supervisor",
			Enabled:     true,
		})

	case models.ArchetypeOutboundFollowUp:
		triggers = append(triggers, models.EscalationTrigger{
			ID:          triggerID(archetype, "multiple_reschedules"),
			TriggerType: models.TriggerManual,
			Condition:   "reschedule_count > 2",
			Action:      "escalate_to_scheduler",
			Target:      "human_scheduler",
			Enabled:     true,
		})

	case models.ArchetypeOutboundMarketing:
		triggers = append(triggers, models.EscalationTrigger{
			ID:          triggerID(archetype, "regulatory_concern"),
			TriggerType: models.TriggerKeyword,
			Condition:   "keywords: do not call, lawyer, report, illegal",
			Action:      "end_call_immediately",
			Target:      "compliance_team",
			Enabled:     true,
		})

	case models.ArchetypeInboundCustomerSupport:
		triggers = append(triggers, models.EscalationTrigger{
			ID:          triggerID(archetype, "unresolved_technical"),
			TriggerType: models.TriggerManual,
			Condition:   "resolution_attempts > 3",
			Action:      "escalate_to_technical",
			Target:      "technical_specialist",
			Enabled:     true,
		})
	}

	return triggers
}
