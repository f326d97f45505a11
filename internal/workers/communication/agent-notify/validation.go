package agentnotify

import "voiceagent-workers/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"agentId", "agentName"},
		Properties: map[string]validation.Property{
			"agentId": {
				Type:        "string",
				Description: "Identifier of the created agent draft",
				MinLength:   intPtr(1),
			},
			"agentName": {
				Type:        "string",
				Description: "Display name of the created agent",
				MinLength:   intPtr(1),
				MaxLength:   intPtr(200),
			},
			"ownerEmail": {
				Type:        "string",
				Description: "Email address to notify",
				MaxLength:   intPtr(255),
			},
			"ownerPhone": {
				Type:        "string",
				Description: "Phone number to notify via SMS",
				MaxLength:   intPtr(50),
			},
		},
		AdditionalProperties: false,
	}
}

func intPtr(i int) *int {
	return &i
}
