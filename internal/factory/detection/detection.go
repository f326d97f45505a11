// Package detection derives the action detection configuration per archetype:
// the flattened keyword list plus pattern detectors for multi-word intents a
// plain keyword match would miss.
package detection

import (
	"voiceagent-workers/internal/factory/keywords"
	"voiceagent-workers/internal/models"
)

var detectors = map[models.Archetype][]models.CustomDetector{
	models.ArchetypeInboundReceptionist: {
		{
			Name:                "appointment_intent",
			Pattern:             `(schedule|book|make|set up).*(appointment|meeting)`,
			Action:              "trigger_appointment_flow",
			ConfidenceThreshold: 0.8,
		},
	},
	models.ArchetypeOutboundFollowUp: {
		{
			Name:                "reschedule_intent",
			Pattern:             `(reschedule|change|move|different).*(time|date|appointment)`,
			Action:              "trigger_reschedule_flow",
			ConfidenceThreshold: 0.7,
		},
	},
	models.ArchetypeOutboundMarketing: {
		{
			Name:                "interest_level",
			Pattern:             `(very interested|definitely|yes|tell me more)`,
			Action:              "mark_as_hot_lead",
			ConfidenceThreshold: 0.6,
		},
	},
	models.ArchetypeInboundCustomerSupport: {
		{
			Name:                "technical_issue",
			Pattern:             `(broken|error|not working|bug|crash)`,
			Action:              "start_technical_support",
			ConfidenceThreshold: 0.7,
		},
	},
}

// Build returns the detection configuration for the archetype. Intent
// recognition and sentiment analysis are always on; the runtime decides what
// to do with the signals.
func Build(archetype models.Archetype) models.ActionDetectionConfig {
	return models.ActionDetectionConfig{
		IntentRecognition: true,
		Keywords:          keywords.DetectionKeywords(archetype),
		SentimentAnalysis: true,
		CustomDetectors:   detectors[archetype],
	}
}
