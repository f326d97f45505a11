// Package integrations derives the default integration wiring per archetype.
// Everything starts disabled except the integrations the archetype's workflow
// depends on.
package integrations

import "voiceagent-workers/internal/models"

// Build returns the integration set for the archetype. Every archetype gets
// a disabled webhook baseline; the rest depends on the workflow.
func Build(archetype models.Archetype) models.IntegrationSet {
	set := models.IntegrationSet{
		models.IntegrationWebhook: {
			Type:     models.IntegrationWebhook,
			Enabled:  false,
			Settings: map[string]interface{}{},
		},
	}

	switch archetype {
	case models.ArchetypeInboundReceptionist:
		set[models.IntegrationCalendar] = models.IntegrationDescriptor{
			Type:    models.IntegrationCalendar,
			Enabled: false,
			Settings: map[string]interface{}{
				"provider":      "cal.com",
				"auto_schedule": false,
			},
		}
		set[models.IntegrationCRM] = models.IntegrationDescriptor{
			Type:    models.IntegrationCRM,
			Enabled: false,
			Settings: map[string]interface{}{
				"provider":            "custom",
				"auto_create_contact": true,
			},
		}

	case models.ArchetypeOutboundFollowUp:
		set[models.IntegrationCalendar] = models.IntegrationDescriptor{
			Type:    models.IntegrationCalendar,
			Enabled: true,
			Settings: map[string]interface{}{
				"provider":         "cal.com",
				"auto_schedule":    true,
				"reminder_enabled": true,
			},
		}

	case models.ArchetypeOutboundMarketing:
		set[models.IntegrationCRM] = models.IntegrationDescriptor{
			Type:    models.IntegrationCRM,
			Enabled: true,
			Settings: map[string]interface{}{
				"provider":       "custom",
				"lead_scoring":   true,
				"auto_follow_up": true,
			},
		}

	case models.ArchetypeInboundCustomerSupport:
		set[models.IntegrationHelpdesk] = models.IntegrationDescriptor{
			Type:    models.IntegrationHelpdesk,
			Enabled: false,
			Settings: map[string]interface{}{
				"auto_create_ticket": true,
				"priority_detection": true,
			},
		}
	}

	return set
}
