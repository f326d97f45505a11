// Package factory synthesizes agent drafts and call-flow configuration drafts
// from the static archetype tables. The factory is stateless: every call
// derives its output from its arguments and the configured tunables, and the
// caller owns everything returned.
package factory

import (
	"time"

	"github.com/google/uuid"

	"voiceagent-workers/internal/common/config"
	"voiceagent-workers/internal/common/logger"
	"voiceagent-workers/internal/common/metrics"
	"voiceagent-workers/internal/factory/detection"
	"voiceagent-workers/internal/factory/escalation"
	"voiceagent-workers/internal/factory/integrations"
	"voiceagent-workers/internal/factory/prompt"
	"voiceagent-workers/internal/factory/registry"
	"voiceagent-workers/internal/factory/routing"
	"voiceagent-workers/internal/factory/templates"
	"voiceagent-workers/internal/factory/variables"
	"voiceagent-workers/internal/factory/voice"
	"voiceagent-workers/internal/models"
)

// Factory derives agent and configuration drafts.
type Factory struct {
	cfg    config.SynthesisConfig
	logger logger.Logger
	voice  *voice.Resolver
	now    func() time.Time
	newID  func() string
}

// New creates a Factory with the given tunables.
func New(cfg config.SynthesisConfig, log logger.Logger) *Factory {
	return &Factory{
		cfg:    cfg,
		logger: log,
		voice:  voice.NewResolver(cfg.Voice, log),
		now:    func() time.Time { return time.Now().UTC() },
		newID:  func() string { return uuid.New().String() },
	}
}

// CreateAgent synthesizes a full agent draft for the request. The only
// business failure is an unregistered archetype; everything else resolves
// through defaults and fallbacks.
func (f *Factory) CreateAgent(req models.CreateAgentRequest, ownerID string) (*models.AgentDraft, error) {
	profile, err := registry.Lookup(req.Archetype)
	if err != nil {
		return nil, err
	}

	schema, err := variables.Build(req.Archetype)
	if err != nil {
		return nil, err
	}

	name := req.Name
	if name == "" {
		name = profile.Name
	}
	description := req.Description
	if description == "" {
		description = profile.Description
	}
	personality := req.Personality
	if personality == "" {
		personality = profile.Personality
	}

	now := f.now()
	draft := &models.AgentDraft{
		ID:              f.newID(),
		OwnerID:         ownerID,
		Archetype:       req.Archetype,
		Language:        req.Language,
		Name:            name,
		Description:     description,
		Status:          models.AgentStatusDraft,
		Personality:     personality,
		VoiceTuning:     f.voice.Resolve(profile, req.Language),
		BusinessContext: req.BusinessContext,
		Variables:       schema,
		Integrations:    integrations.Build(req.Archetype),
		PromptText:      prompt.Generate(req.Archetype, req.BusinessContext),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	f.logger.Info("agent draft synthesized", map[string]interface{}{
		"agent_id":  draft.ID,
		"archetype": string(draft.Archetype),
		"language":  string(draft.Language),
	})
	metrics.AgentDraftsCreated.WithLabelValues(string(draft.Archetype), string(draft.Language)).Inc()

	return draft, nil
}

// CreateAgentConfiguration synthesizes the call-flow configuration draft for
// an archetype/language pair.
func (f *Factory) CreateAgentConfiguration(archetype models.Archetype, language models.Language) (*models.AgentConfigurationDraft, error) {
	if !registry.Supported(archetype) {
		_, err := registry.Lookup(archetype)
		return nil, err
	}

	now := f.now()
	draft := &models.AgentConfigurationDraft{
		ID:                   f.newID(),
		Archetype:            archetype,
		Language:             language,
		RoutingRules:         routing.Build(archetype),
		EscalationTriggers:   escalation.Build(archetype, f.cfg.Escalation),
		ActionDetection:      detection.Build(archetype),
		ResponseTemplates:    templates.Build(archetype, language),
		ConfirmationMessages: templates.BuildConfirmationMessages(),
		ErrorHandling:        templates.BuildErrorHandling(),
		BusinessHours:        f.buildBusinessHours(),
		CalendarIntegration:  buildCalendarIntegration(archetype),
		CRMIntegration:       buildCRMIntegration(archetype),
		WebhookSettings:      f.buildWebhookSettings(),
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	f.logger.Info("configuration draft synthesized", map[string]interface{}{
		"config_id": draft.ID,
		"archetype": string(archetype),
		"language":  string(language),
	})

	return draft, nil
}

func (f *Factory) buildBusinessHours() models.BusinessHours {
	bh := f.cfg.BusinessHours
	schedule := make([]models.DaySchedule, 0, 7)
	for day := 1; day <= 5; day++ {
		schedule = append(schedule, models.DaySchedule{
			Day:       day,
			IsOpen:    true,
			OpenTime:  bh.OpenTime,
			CloseTime: bh.CloseTime,
		})
	}
	schedule = append(schedule,
		models.DaySchedule{Day: 6, IsOpen: false},
		models.DaySchedule{Day: 0, IsOpen: false},
	)

	return models.BusinessHours{
		Timezone:   bh.Timezone,
		Schedule:   schedule,
		Exceptions: []string{},
	}
}

func buildCalendarIntegration(archetype models.Archetype) models.CalendarIntegration {
	enabled := archetype == models.ArchetypeInboundReceptionist ||
		archetype == models.ArchetypeOutboundFollowUp

	return models.CalendarIntegration{
		Enabled:  enabled,
		Provider: "cal.com",
		Settings: map[string]interface{}{
			"auto_schedule":         archetype == models.ArchetypeOutboundFollowUp,
			"buffer_time":           15,
			"max_advance_booking":   90,
			"confirmation_required": true,
		},
	}
}

func buildCRMIntegration(archetype models.Archetype) models.CRMIntegration {
	enabled := archetype == models.ArchetypeInboundReceptionist ||
		archetype == models.ArchetypeOutboundMarketing ||
		archetype == models.ArchetypeInboundCustomerSupport

	return models.CRMIntegration{
		Enabled:  enabled,
		Provider: "custom",
		FieldMapping: map[string]string{
			"customer_name": "name",
			"phone_number":  "phone",
			"email":         "email",
			"company":       "company_name",
		},
	}
}

func (f *Factory) buildWebhookSettings() models.WebhookSettings {
	wh := f.cfg.Webhook
	return models.WebhookSettings{
		Endpoints: []string{},
		Security: models.WebhookSecurity{
			SignatureValidation: true,
			IPWhitelist:         []string{},
		},
		RetryPolicy: models.WebhookRetryPolicy{
			MaxAttempts:     wh.MaxAttempts,
			BackoffStrategy: wh.BackoffStrategy,
			InitialDelay:    wh.InitialDelay,
			MaxDelay:        wh.MaxDelay,
		},
	}
}
