package agentconfigurationcreate

import "voiceagent-workers/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"archetype", "language"},
		Properties: map[string]validation.Property{
			"archetype": {
				Type:        "string",
				Description: "Agent archetype identifier",
				MinLength:   intPtr(1),
				MaxLength:   intPtr(100),
			},
			"language": {
				Type:        "string",
				Description: "Preferred locale tag",
				MinLength:   intPtr(2),
				MaxLength:   intPtr(10),
			},
		},
		AdditionalProperties: false,
	}
}

func intPtr(i int) *int {
	return &i
}
