package models

import (
	"sort"
	"strings"
	"time"
)

// RuleAction is the closed set of actions a routing rule can take. The call
// runtime switches exhaustively over these; adding one is a compile-time
// visible change.
type RuleAction string

const (
	ActionTransfer    RuleAction = "transfer"
	ActionSchedule    RuleAction = "schedule"
	ActionCollectInfo RuleAction = "collect_info"
	ActionEscalate    RuleAction = "escalate"
)

// Valid reports whether the action is one of the declared variants.
func (a RuleAction) Valid() bool {
	switch a {
	case ActionTransfer, ActionSchedule, ActionCollectInfo, ActionEscalate:
		return true
	}
	return false
}

// SentimentSignal is an optional sentiment component of a rule condition.
type SentimentSignal string

const (
	SentimentPositive SentimentSignal = "positive"
	SentimentNegative SentimentSignal = "negative"
)

// RuleCondition is the predicate of a routing rule: a keyword match,
// optionally combined with a sentiment signal.
type RuleCondition struct {
	Keywords  []string        `json:"keywords,omitempty"`
	Sentiment SentimentSignal `json:"sentiment,omitempty"`
}

// Describe renders the condition in the wire form the call runtime expects,
// e.g. "sentiment: positive, keywords: interested, tell me more".
func (c RuleCondition) Describe() string {
	parts := make([]string, 0, 2)
	if c.Sentiment != "" {
		parts = append(parts, "sentiment: "+string(c.Sentiment))
	}
	if len(c.Keywords) > 0 {
		parts = append(parts, "keywords: "+strings.Join(c.Keywords, ", "))
	}
	return strings.Join(parts, ", ")
}

// RoutingRule is one ordered condition-to-action mapping. Lower priority is
// evaluated first.
type RoutingRule struct {
	ID        string        `json:"id"`
	Condition RuleCondition `json:"condition"`
	Action    RuleAction    `json:"action"`
	Target    string        `json:"target,omitempty"`
	Priority  int           `json:"priority"`
	Enabled   bool          `json:"enabled"`
}

// SortRoutingRules stable-sorts rules by ascending priority so equal
// priorities keep declaration order.
func SortRoutingRules(rules []RoutingRule) {
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority < rules[j].Priority
	})
}

// TriggerType is the closed set of escalation trigger sources.
type TriggerType string

const (
	TriggerSentiment TriggerType = "sentiment"
	TriggerDuration  TriggerType = "duration"
	TriggerKeyword   TriggerType = "keyword"
	TriggerManual    TriggerType = "manual"
)

// Valid reports whether the trigger type is one of the declared variants.
func (t TriggerType) Valid() bool {
	switch t {
	case TriggerSentiment, TriggerDuration, TriggerKeyword, TriggerManual:
		return true
	}
	return false
}

// EscalationTrigger forces hand-off to a human independent of routing rules.
// Triggers are unordered; the call runtime evaluates all enabled triggers
// every turn and the first to fire wins.
type EscalationTrigger struct {
	ID          string      `json:"id"`
	TriggerType TriggerType `json:"trigger_type"`
	Condition   string      `json:"condition"`
	Action      string      `json:"action"`
	Target      string      `json:"target"`
	Enabled     bool        `json:"enabled"`
}

// CustomDetector is a named pattern detector evaluated by the call runtime.
type CustomDetector struct {
	Name                string  `json:"name"`
	Pattern             string  `json:"pattern"`
	Action              string  `json:"action"`
	ConfidenceThreshold float64 `json:"confidence_threshold"`
}

// ActionDetectionConfig is the intent/keyword detection configuration the
// call runtime consumes.
type ActionDetectionConfig struct {
	IntentRecognition bool             `json:"intent_recognition"`
	Keywords          []string         `json:"keywords"`
	SentimentAnalysis bool             `json:"sentiment_analysis"`
	CustomDetectors   []CustomDetector `json:"custom_detectors"`
}

// ResponseTemplate is a localized response with named placeholders.
type ResponseTemplate struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Template  string   `json:"template"`
	Variables []string `json:"variables"`
}

// ErrorTemplate describes how the runtime responds to a recognizable error.
type ErrorTemplate struct {
	ErrorType        string `json:"error_type"`
	ResponseTemplate string `json:"response_template"`
	FallbackAction   string `json:"fallback_action"`
	RetryCount       int    `json:"retry_count"`
}

// DaySchedule is one weekday of business hours. Day is 0-6, Sunday first.
type DaySchedule struct {
	Day       int    `json:"day"`
	IsOpen    bool   `json:"is_open"`
	OpenTime  string `json:"open_time,omitempty"`
	CloseTime string `json:"close_time,omitempty"`
}

// BusinessHours is the weekly availability window.
type BusinessHours struct {
	Timezone   string        `json:"timezone"`
	Schedule   []DaySchedule `json:"schedule"`
	Exceptions []string      `json:"exceptions"`
}

// CalendarIntegration holds calendar wiring defaults.
type CalendarIntegration struct {
	Enabled  bool                   `json:"enabled"`
	Provider string                 `json:"provider"`
	Settings map[string]interface{} `json:"settings"`
}

// CRMIntegration holds CRM wiring defaults.
type CRMIntegration struct {
	Enabled      bool              `json:"enabled"`
	Provider     string            `json:"provider"`
	FieldMapping map[string]string `json:"field_mapping"`
}

// WebhookRetryPolicy controls webhook delivery retries.
type WebhookRetryPolicy struct {
	MaxAttempts     int    `json:"max_attempts"`
	BackoffStrategy string `json:"backoff_strategy"`
	InitialDelay    int    `json:"initial_delay"`
	MaxDelay        int    `json:"max_delay"`
}

// WebhookSecurity controls webhook endpoint hardening.
type WebhookSecurity struct {
	SignatureValidation bool     `json:"signature_validation"`
	IPWhitelist         []string `json:"ip_whitelist"`
}

// WebhookSettings holds webhook wiring defaults.
type WebhookSettings struct {
	Endpoints   []string           `json:"endpoints"`
	Security    WebhookSecurity    `json:"security"`
	RetryPolicy WebhookRetryPolicy `json:"retry_policy"`
}

// AgentConfigurationDraft is the fully derived call-flow configuration for
// an archetype/language pair. Same ownership rules as AgentDraft.
type AgentConfigurationDraft struct {
	ID                   string                      `json:"id"`
	Archetype            Archetype                   `json:"archetype"`
	Language             Language                    `json:"language"`
	RoutingRules         []RoutingRule               `json:"call_routing_rules"`
	EscalationTriggers   []EscalationTrigger         `json:"escalation_triggers"`
	ActionDetection      ActionDetectionConfig       `json:"action_detection_logic"`
	ResponseTemplates    map[string]ResponseTemplate `json:"response_templates"`
	ConfirmationMessages map[string]string           `json:"confirmation_messages"`
	ErrorHandling        map[string]ErrorTemplate    `json:"error_handling"`
	BusinessHours        BusinessHours               `json:"business_hours"`
	CalendarIntegration  CalendarIntegration         `json:"calendar_integration"`
	CRMIntegration       CRMIntegration              `json:"crm_integration"`
	WebhookSettings      WebhookSettings             `json:"webhook_settings"`
	CreatedAt            time.Time                   `json:"created_at"`
	UpdatedAt            time.Time                   `json:"updated_at"`
}
