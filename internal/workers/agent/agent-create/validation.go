package agentcreate

import "voiceagent-workers/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"ownerId", "archetype", "language", "businessContext"},
		Properties: map[string]validation.Property{
			"ownerId": {
				Type:        "string",
				Description: "Identifier of the requesting account",
				MinLength:   intPtr(1),
			},
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
			"name": {
				Type:        "string",
				Description: "Optional display name override",
				MaxLength:   intPtr(200),
			},
			"description": {
				Type:        "string",
				Description: "Optional description override",
				MaxLength:   intPtr(1000),
			},
			"personality": {
				Type:        "string",
				Description: "Optional personality override",
				Enum:        []string{"professional", "friendly", "technical"},
			},
			"businessContext": {
				Type:        "object",
				Description: "Business record the draft is derived from",
				Required:    []string{"business_name"},
				Properties: map[string]validation.Property{
					"business_name": {
						Type:        "string",
						Description: "Name of the business",
						MinLength:   intPtr(1),
						MaxLength:   intPtr(200),
					},
				},
			},
		},
		AdditionalProperties: false,
	}
}

// outputSchemaJSON is checked with gojsonschema before completing the job so
// a malformed document never reaches the process instance.
const outputSchemaJSON = `{
	"type": "object",
	"required": ["success", "message"],
	"properties": {
		"success": {"type": "boolean"},
		"message": {"type": "string"},
		"agentId": {"type": "string"},
		"archetype": {"type": "string"},
		"language": {"type": "string"},
		"indexed": {"type": "boolean"}
	}
}`

func intPtr(i int) *int {
	return &i
}
