package integrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voiceagent-workers/internal/models"
)

func TestBuild_WebhookBaselineAlwaysPresent(t *testing.T) {
	for _, archetype := range models.AllArchetypes() {
		set := Build(archetype)

		webhook, ok := set[models.IntegrationWebhook]
		require.True(t, ok, "%s missing webhook baseline", archetype)
		assert.False(t, webhook.Enabled)
		assert.NotNil(t, webhook.Settings)
	}
}

func TestBuild_PerArchetypeWiring(t *testing.T) {
	tests := []struct {
		archetype models.Archetype
		present   []models.IntegrationType
		enabled   []models.IntegrationType
	}{
		{
			archetype: models.ArchetypeInboundReceptionist,
			present:   []models.IntegrationType{models.IntegrationCalendar, models.IntegrationCRM},
			enabled:   nil,
		},
		{
			archetype: models.ArchetypeInboundCustomerSupport,
			present:   []models.IntegrationType{models.IntegrationHelpdesk},
			enabled:   nil,
		},
		{
			archetype: models.ArchetypeOutboundFollowUp,
			present:   []models.IntegrationType{models.IntegrationCalendar},
			enabled:   []models.IntegrationType{models.IntegrationCalendar},
		},
		{
			archetype: models.ArchetypeOutboundMarketing,
			present:   []models.IntegrationType{models.IntegrationCRM},
			enabled:   []models.IntegrationType{models.IntegrationCRM},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.archetype), func(t *testing.T) {
			set := Build(tt.archetype)

			enabled := make(map[models.IntegrationType]bool)
			for _, typ := range tt.enabled {
				enabled[typ] = true
			}

			for _, typ := range tt.present {
				desc, ok := set[typ]
				require.True(t, ok, "missing integration %s", typ)
				assert.Equal(t, typ, desc.Type)
				assert.Equal(t, enabled[typ], desc.Enabled, "enabled mismatch for %s", typ)
			}
		})
	}
}

func TestBuild_FollowUpCalendarAutoSchedules(t *testing.T) {
	set := Build(models.ArchetypeOutboundFollowUp)

	calendar := set[models.IntegrationCalendar]
	assert.Equal(t, true, calendar.Settings["auto_schedule"])
	assert.Equal(t, "cal.com", calendar.Settings["provider"])

	receptionist := Build(models.ArchetypeInboundReceptionist)[models.IntegrationCalendar]
	assert.Equal(t, false, receptionist.Settings["auto_schedule"])
}

func TestBuild_UnknownArchetypeGetsBaselineOnly(t *testing.T) {
	set := Build(models.Archetype("concierge"))

	assert.Len(t, set, 1)
	assert.Contains(t, set, models.IntegrationWebhook)
}
