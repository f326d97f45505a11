package models

import "time"

// Archetype identifies the purpose of a voice agent. The set is closed:
// extending it means adding a constant here plus table entries in the
// factory registries, never runtime registration.
type Archetype string

const (
	ArchetypeInboundReceptionist    Archetype = "inbound_receptionist"
	ArchetypeInboundCustomerSupport Archetype = "inbound_customer_support"
	ArchetypeOutboundFollowUp       Archetype = "outbound_follow_up"
	ArchetypeOutboundMarketing      Archetype = "outbound_marketing"
)

// AllArchetypes returns the registered archetypes in declaration order.
func AllArchetypes() []Archetype {
	return []Archetype{
		ArchetypeInboundReceptionist,
		ArchetypeInboundCustomerSupport,
		ArchetypeOutboundFollowUp,
		ArchetypeOutboundMarketing,
	}
}

// Inbound reports whether the archetype handles incoming calls.
func (a Archetype) Inbound() bool {
	return a == ArchetypeInboundReceptionist || a == ArchetypeInboundCustomerSupport
}

// Language is a supported locale tag.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageSpanish Language = "es"
	LanguageChinese Language = "zh-CN"
	LanguageItalian Language = "it"
)

// AllLanguages returns the supported locale tags.
func AllLanguages() []Language {
	return []Language{LanguageEnglish, LanguageSpanish, LanguageChinese, LanguageItalian}
}

// Personality is the default speaking persona of an agent.
type Personality string

const (
	PersonalityProfessional Personality = "professional"
	PersonalityFriendly     Personality = "friendly"
	PersonalityTechnical    Personality = "technical"
)

// AgentStatus tracks the lifecycle of a draft once persisted.
type AgentStatus string

const (
	AgentStatusDraft    AgentStatus = "draft"
	AgentStatusActive   AgentStatus = "active"
	AgentStatusInactive AgentStatus = "inactive"
	AgentStatusArchived AgentStatus = "archived"
)

// VoiceTuning is the resolved voice parameter set for an agent. Speed and
// pitch are kept inside the configured bounds by the resolver.
type VoiceTuning struct {
	Speed  float64 `json:"speed"`
	Pitch  float64 `json:"pitch"`
	Tone   string  `json:"tone"`
	Accent string  `json:"accent,omitempty"`
}

// SlotType is the value type of an agent variable slot.
type SlotType string

const (
	SlotTypeText    SlotType = "text"
	SlotTypePhone   SlotType = "phone"
	SlotTypeEmail   SlotType = "email"
	SlotTypeDate    SlotType = "date"
	SlotTypeBoolean SlotType = "boolean"
	SlotTypeNumber  SlotType = "number"
)

// VariableSlot is a named, typed variable an agent instance can reference
// during a call.
type VariableSlot struct {
	Name        string   `json:"name"`
	Type        SlotType `json:"type"`
	Required    bool     `json:"required"`
	Description string   `json:"description,omitempty"`
}

// VariableSchema maps slot name to its definition.
type VariableSchema map[string]VariableSlot

// IntegrationType identifies an external integration family.
type IntegrationType string

const (
	IntegrationWebhook  IntegrationType = "webhook"
	IntegrationCalendar IntegrationType = "calendar"
	IntegrationCRM      IntegrationType = "crm"
	IntegrationHelpdesk IntegrationType = "helpdesk"
)

// IntegrationDescriptor is the default wiring for one integration.
type IntegrationDescriptor struct {
	Type     IntegrationType        `json:"type"`
	Enabled  bool                   `json:"enabled"`
	Settings map[string]interface{} `json:"settings"`
}

// IntegrationSet maps integration type to its descriptor.
type IntegrationSet map[IntegrationType]IntegrationDescriptor

// OfficeHoursEntry is one line of the business's stated opening hours.
type OfficeHoursEntry struct {
	Day       string `json:"day"`
	OpenTime  string `json:"open_time,omitempty"`
	CloseTime string `json:"close_time,omitempty"`
	Closed    bool   `json:"closed,omitempty"`
}

// BusinessContext is the caller-owned business record drafts are derived
// from. The factory reads it and never mutates it.
type BusinessContext struct {
	BusinessName string             `json:"business_name"`
	BusinessType string             `json:"business_type,omitempty"`
	Services     []string           `json:"services,omitempty"`
	Staff        []string           `json:"staff,omitempty"`
	OfficeHours  []OfficeHoursEntry `json:"office_hours,omitempty"`
	Phone        string             `json:"phone,omitempty"`
	Website      string             `json:"website,omitempty"`
}

// CreateAgentRequest is the caller-facing request for a new agent draft.
type CreateAgentRequest struct {
	Archetype       Archetype       `json:"archetype"`
	Language        Language        `json:"language"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Personality     Personality     `json:"personality,omitempty"`
	BusinessContext BusinessContext `json:"business_context"`
}

// AgentDraft is a fully derived, not-yet-persisted agent record. Ownership
// passes to the caller; the factory holds no reference after returning it.
type AgentDraft struct {
	ID              string          `json:"id"`
	OwnerID         string          `json:"owner_id"`
	Archetype       Archetype       `json:"archetype"`
	Language        Language        `json:"language"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Status          AgentStatus     `json:"status"`
	Personality     Personality     `json:"personality"`
	VoiceTuning     VoiceTuning     `json:"voice_tuning"`
	BusinessContext BusinessContext `json:"business_context"`
	Variables       VariableSchema  `json:"variables"`
	Integrations    IntegrationSet  `json:"integrations"`
	PromptText      string          `json:"prompt_text"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
