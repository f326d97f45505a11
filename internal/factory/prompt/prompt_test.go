package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voiceagent-workers/internal/models"
)

func TestGenerate_SubstitutesBusinessName(t *testing.T) {
	ctx := models.BusinessContext{
		BusinessName: "Acme Dental",
		BusinessType: "dental clinic",
		Services:     []string{"cleanings", "checkups"},
	}

	text := Generate(models.ArchetypeInboundReceptionist, ctx)

	require.NotEmpty(t, text)
	assert.Contains(t, text, "Acme Dental")
	assert.True(t, strings.HasPrefix(text, "You are a professional receptionist for Acme Dental."))
}

func TestGenerate_NoPlaceholderSurvives(t *testing.T) {
	ctx := models.BusinessContext{BusinessName: "Riverside Clinic"}

	for _, archetype := range models.AllArchetypes() {
		text := Generate(archetype, ctx)
		require.NotEmpty(t, text, "archetype %s produced an empty prompt", archetype)
		assert.NotContains(t, text, "{", "archetype %s prompt still carries a placeholder", archetype)
	}
}

func TestGenerate_EmptyContextStillRenders(t *testing.T) {
	text := Generate(models.ArchetypeOutboundMarketing, models.BusinessContext{})

	require.NotEmpty(t, text)
	assert.NotContains(t, text, "{business_name}")
}

func TestGenerate_UnknownArchetype(t *testing.T) {
	text := Generate(models.Archetype("unknown"), models.BusinessContext{BusinessName: "X"})
	assert.Empty(t, text)
}

func TestGenerate_MarketingPromptCoversCompliance(t *testing.T) {
	text := Generate(models.ArchetypeOutboundMarketing, models.BusinessContext{BusinessName: "SunPower"})

	assert.Contains(t, text, "Do Not Call")
	assert.Contains(t, text, "opt-out")
}
