package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voiceagent-workers/internal/models"
)

func TestForArchetype_EveryArchetypeHasGroups(t *testing.T) {
	for _, archetype := range models.AllArchetypes() {
		groups := ForArchetype(archetype)
		require.NotEmpty(t, groups, "archetype %s has no keyword groups", archetype)

		for _, group := range groups {
			assert.NotEmpty(t, group.Name)
			assert.NotEmpty(t, group.Keywords)
		}
	}
}

func TestDetectionKeywords_ContainsEveryGroupKeyword(t *testing.T) {
	for _, archetype := range models.AllArchetypes() {
		detected := make(map[string]bool)
		for _, kw := range DetectionKeywords(archetype) {
			detected[kw] = true
		}

		for _, group := range ForArchetype(archetype) {
			for _, kw := range group.Keywords {
				assert.True(t, detected[kw],
					"archetype %s: keyword %q from group %s missing from detection list", archetype, kw, group.Name)
			}
		}
	}
}

func TestDetectionKeywords_NoDuplicates(t *testing.T) {
	for _, archetype := range models.AllArchetypes() {
		list := DetectionKeywords(archetype)
		seen := make(map[string]bool, len(list))
		for _, kw := range list {
			assert.False(t, seen[kw], "archetype %s: duplicate keyword %q", archetype, kw)
			seen[kw] = true
		}
	}
}

func TestEmergencyGroup_SharedByInboundOnly(t *testing.T) {
	hasEmergency := func(archetype models.Archetype) bool {
		for _, group := range ForArchetype(archetype) {
			if group.Name == GroupEmergency.Name {
				return true
			}
		}
		return false
	}

	assert.True(t, hasEmergency(models.ArchetypeInboundReceptionist))
	assert.True(t, hasEmergency(models.ArchetypeInboundCustomerSupport))
	assert.False(t, hasEmergency(models.ArchetypeOutboundFollowUp))
	assert.False(t, hasEmergency(models.ArchetypeOutboundMarketing))
}
