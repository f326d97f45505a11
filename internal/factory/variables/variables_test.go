package variables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voiceagent-workers/internal/common/errors"
	"voiceagent-workers/internal/models"
)

func TestBuild_CoreSlotsAlwaysPresent(t *testing.T) {
	for _, archetype := range models.AllArchetypes() {
		schema, err := Build(archetype)
		require.NoError(t, err)

		for _, name := range CoreSlotNames() {
			slot, ok := schema[name]
			require.True(t, ok, "archetype %s missing core slot %s", archetype, name)
			assert.Equal(t, name, slot.Name)
		}

		assert.True(t, schema["business_name"].Required)
		assert.False(t, schema["customer_name"].Required)
		assert.Equal(t, models.SlotTypePhone, schema["phone_number"].Type)
	}
}

func TestBuild_ArchetypeSlots(t *testing.T) {
	tests := []struct {
		archetype models.Archetype
		slots     []string
	}{
		{models.ArchetypeInboundReceptionist, []string{"department", "urgency_level"}},
		{models.ArchetypeOutboundFollowUp, []string{"appointment_date", "appointment_time", "service_type"}},
		{models.ArchetypeOutboundMarketing, []string{"lead_source", "interest_level", "budget_range"}},
		{models.ArchetypeInboundCustomerSupport, []string{"issue_type", "ticket_number", "product_version"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.archetype), func(t *testing.T) {
			schema, err := Build(tt.archetype)
			require.NoError(t, err)

			for _, name := range tt.slots {
				slot, ok := schema[name]
				require.True(t, ok, "missing slot %s", name)
				assert.False(t, slot.Required, "archetype slot %s must be optional", name)
			}
		})
	}
}

func TestBuild_FollowUpAppointmentDateIsDateTyped(t *testing.T) {
	schema, err := Build(models.ArchetypeOutboundFollowUp)
	require.NoError(t, err)

	assert.Equal(t, models.SlotTypeDate, schema["appointment_date"].Type)
}

func TestBuild_CoreSlotRedeclaredWithOtherTypeFails(t *testing.T) {
	bad := models.Archetype("bad_table_entry")
	archetypeSlots[bad] = []models.VariableSlot{
		{Name: "business_name", Type: models.SlotTypeNumber},
	}
	defer delete(archetypeSlots, bad)

	_, err := Build(bad)

	require.Error(t, err)
	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeSlotTypeConflict, stdErr.Code)
	assert.False(t, stdErr.Retryable)
}

func TestBuild_UnknownArchetypeGetsCoreOnly(t *testing.T) {
	schema, err := Build(models.Archetype("unknown"))
	require.NoError(t, err)
	assert.Len(t, schema, len(CoreSlotNames()))
}
