// Package variables builds the variable schema for an archetype: the core
// slots every agent carries plus the archetype-specific extras.
package variables

import (
	"voiceagent-workers/internal/common/errors"
	"voiceagent-workers/internal/models"
)

// coreSlots are present for every archetype. business_name is the only
// required slot; everything else is filled in during the call.
var coreSlots = []models.VariableSlot{
	{Name: "business_name", Type: models.SlotTypeText, Required: true, Description: "Name of the business the agent represents"},
	{Name: "customer_name", Type: models.SlotTypeText, Required: false, Description: "Name of the caller or callee"},
	{Name: "phone_number", Type: models.SlotTypePhone, Required: false, Description: "Contact phone number"},
}

var archetypeSlots = map[models.Archetype][]models.VariableSlot{
	models.ArchetypeInboundReceptionist: {
		{Name: "department", Type: models.SlotTypeText, Required: false, Description: "Department the caller asked for"},
		{Name: "urgency_level", Type: models.SlotTypeText, Required: false, Description: "Caller-stated urgency"},
	},
	models.ArchetypeOutboundFollowUp: {
		{Name: "appointment_date", Type: models.SlotTypeDate, Required: false, Description: "Date of the upcoming appointment"},
		{Name: "appointment_time", Type: models.SlotTypeText, Required: false, Description: "Time of the upcoming appointment"},
		{Name: "service_type", Type: models.SlotTypeText, Required: false, Description: "Service the appointment is for"},
	},
	models.ArchetypeOutboundMarketing: {
		{Name: "lead_source", Type: models.SlotTypeText, Required: false, Description: "Where the lead came from"},
		{Name: "interest_level", Type: models.SlotTypeText, Required: false, Description: "Qualified interest level"},
		{Name: "budget_range", Type: models.SlotTypeText, Required: false, Description: "Stated budget range"},
	},
	models.ArchetypeInboundCustomerSupport: {
		{Name: "issue_type", Type: models.SlotTypeText, Required: false, Description: "Category of the reported issue"},
		{Name: "ticket_number", Type: models.SlotTypeText, Required: false, Description: "Existing support ticket reference"},
		{Name: "product_version", Type: models.SlotTypeText, Required: false, Description: "Product version in use"},
	},
}

// Build returns the merged variable schema for the archetype. An archetype
// slot may restate a core slot with the same type; a differing type is a
// table bug and fails with SLOT_TYPE_CONFLICT.
func Build(archetype models.Archetype) (models.VariableSchema, error) {
	schema := make(models.VariableSchema, len(coreSlots)+4)
	for _, slot := range coreSlots {
		schema[slot.Name] = slot
	}

	for _, slot := range archetypeSlots[archetype] {
		if existing, ok := schema[slot.Name]; ok && existing.Type != slot.Type {
			return nil, errors.NewSlotTypeConflictError(slot.Name, string(existing.Type), string(slot.Type))
		}
		schema[slot.Name] = slot
	}

	return schema, nil
}

// CoreSlotNames returns the names of the slots shared by every archetype.
func CoreSlotNames() []string {
	names := make([]string, len(coreSlots))
	for i, slot := range coreSlots {
		names[i] = slot.Name
	}
	return names
}
