package factory

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voiceagent-workers/internal/common/config"
	"voiceagent-workers/internal/common/errors"
	"voiceagent-workers/internal/common/logger"
	"voiceagent-workers/internal/models"
)

func createTestFactory(t *testing.T) *Factory {
	return New(config.DefaultSynthesis(), logger.NewTestLogger(t))
}

func createTestRequest() models.CreateAgentRequest {
	return models.CreateAgentRequest{
		Archetype: models.ArchetypeInboundReceptionist,
		Language:  models.LanguageEnglish,
		BusinessContext: models.BusinessContext{
			BusinessName: "Acme Dental",
			BusinessType: "dental clinic",
			Services:     []string{"cleanings", "checkups", "whitening"},
			Phone:        "+1-555-0100",
		},
	}
}

func TestCreateAgent_FullDraft(t *testing.T) {
	f := createTestFactory(t)

	draft, err := f.CreateAgent(createTestRequest(), "owner-123")
	require.NoError(t, err)

	assert.NotEmpty(t, draft.ID)
	assert.Equal(t, "owner-123", draft.OwnerID)
	assert.Equal(t, models.AgentStatusDraft, draft.Status)
	assert.Equal(t, "AI Receptionist", draft.Name)
	assert.Equal(t, models.PersonalityProfessional, draft.Personality)
	assert.Equal(t, "american", draft.VoiceTuning.Accent)
	assert.Contains(t, draft.PromptText, "Acme Dental")
	assert.NotContains(t, draft.PromptText, "{business_name}")
	assert.False(t, draft.CreatedAt.IsZero())
	assert.Equal(t, draft.CreatedAt, draft.UpdatedAt)

	// Core slots present, webhook baseline wired but disabled.
	assert.Contains(t, draft.Variables, "business_name")
	assert.Contains(t, draft.Variables, "department")
	webhook, ok := draft.Integrations[models.IntegrationWebhook]
	require.True(t, ok)
	assert.False(t, webhook.Enabled)
}

func TestCreateAgent_RequestOverridesProfileDefaults(t *testing.T) {
	f := createTestFactory(t)

	req := createTestRequest()
	req.Name = "Front Desk Bot"
	req.Description = "Custom description"
	req.Personality = models.PersonalityFriendly

	draft, err := f.CreateAgent(req, "owner-123")
	require.NoError(t, err)

	assert.Equal(t, "Front Desk Bot", draft.Name)
	assert.Equal(t, "Custom description", draft.Description)
	assert.Equal(t, models.PersonalityFriendly, draft.Personality)
}

func TestCreateAgent_UnsupportedArchetype(t *testing.T) {
	f := createTestFactory(t)

	req := createTestRequest()
	req.Archetype = models.Archetype("gatekeeper")

	_, err := f.CreateAgent(req, "owner-123")
	require.Error(t, err)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeUnsupportedArchetype, stdErr.Code)
}

func TestCreateAgent_DeterministicModuloIdentity(t *testing.T) {
	f := createTestFactory(t)
	req := createTestRequest()

	first, err := f.CreateAgent(req, "owner-123")
	require.NoError(t, err)
	second, err := f.CreateAgent(req, "owner-123")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	normalize := func(d *models.AgentDraft) string {
		clone := *d
		clone.ID = ""
		clone.CreatedAt = time.Time{}
		clone.UpdatedAt = time.Time{}
		raw, err := json.Marshal(clone)
		require.NoError(t, err)
		return string(raw)
	}
	assert.Equal(t, normalize(first), normalize(second))
}

func TestCreateAgentConfiguration_FullDraft(t *testing.T) {
	f := createTestFactory(t)

	draft, err := f.CreateAgentConfiguration(models.ArchetypeInboundCustomerSupport, models.LanguageSpanish)
	require.NoError(t, err)

	assert.NotEmpty(t, draft.ID)
	assert.NotEmpty(t, draft.RoutingRules)
	assert.NotEmpty(t, draft.EscalationTriggers)
	assert.NotEmpty(t, draft.ActionDetection.Keywords)
	assert.Len(t, draft.ResponseTemplates, 3)
	assert.NotEmpty(t, draft.ConfirmationMessages)
	assert.NotEmpty(t, draft.ErrorHandling)

	assert.Equal(t, "America/New_York", draft.BusinessHours.Timezone)
	assert.Len(t, draft.BusinessHours.Schedule, 7)

	assert.False(t, draft.CalendarIntegration.Enabled)
	assert.True(t, draft.CRMIntegration.Enabled)
	assert.Equal(t, "name", draft.CRMIntegration.FieldMapping["customer_name"])

	assert.True(t, draft.WebhookSettings.Security.SignatureValidation)
	assert.Equal(t, 3, draft.WebhookSettings.RetryPolicy.MaxAttempts)
	assert.Equal(t, "exponential", draft.WebhookSettings.RetryPolicy.BackoffStrategy)
}

func TestCreateAgentConfiguration_CalendarEnablement(t *testing.T) {
	f := createTestFactory(t)

	tests := []struct {
		archetype    models.Archetype
		calendar     bool
		autoSchedule bool
	}{
		{models.ArchetypeInboundReceptionist, true, false},
		{models.ArchetypeOutboundFollowUp, true, true},
		{models.ArchetypeOutboundMarketing, false, false},
		{models.ArchetypeInboundCustomerSupport, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.archetype), func(t *testing.T) {
			draft, err := f.CreateAgentConfiguration(tt.archetype, models.LanguageEnglish)
			require.NoError(t, err)

			assert.Equal(t, tt.calendar, draft.CalendarIntegration.Enabled)
			assert.Equal(t, tt.autoSchedule, draft.CalendarIntegration.Settings["auto_schedule"])
		})
	}
}

func TestCreateAgentConfiguration_UnsupportedArchetype(t *testing.T) {
	f := createTestFactory(t)

	_, err := f.CreateAgentConfiguration(models.Archetype(""), models.LanguageEnglish)
	require.Error(t, err)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeUnsupportedArchetype, stdErr.Code)
}

func TestCreateAgentConfiguration_BusinessHoursWeekendClosed(t *testing.T) {
	f := createTestFactory(t)

	draft, err := f.CreateAgentConfiguration(models.ArchetypeInboundReceptionist, models.LanguageEnglish)
	require.NoError(t, err)

	for _, day := range draft.BusinessHours.Schedule {
		if day.Day == 0 || day.Day == 6 {
			assert.False(t, day.IsOpen, "day %d should be closed", day.Day)
		} else {
			assert.True(t, day.IsOpen)
			assert.Equal(t, "09:00", day.OpenTime)
			assert.Equal(t, "17:00", day.CloseTime)
		}
	}
}
