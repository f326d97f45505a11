package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voiceagent-workers/internal/models"
)

func TestResolve_NeverEmpty(t *testing.T) {
	for _, archetype := range models.AllArchetypes() {
		for _, language := range models.AllLanguages() {
			for _, kind := range AllKinds() {
				text := Resolve(kind, archetype, language)
				assert.NotEmpty(t, text,
					"empty template for %s/%s/%s", kind, archetype, language)
			}
		}
	}
}

func TestResolve_LocalizedGreeting(t *testing.T) {
	text := Resolve(KindGreeting, models.ArchetypeInboundReceptionist, models.LanguageSpanish)
	assert.Contains(t, text, "Gracias por llamar a {business_name}")

	text = Resolve(KindGreeting, models.ArchetypeInboundCustomerSupport, models.LanguageItalian)
	assert.Contains(t, text, "supporto clienti di {business_name}")
}

func TestResolve_FallsBackToEnglish(t *testing.T) {
	// Confirmation has no Spanish entry; the chain lands on English.
	text := Resolve(KindConfirmation, models.ArchetypeInboundReceptionist, models.LanguageSpanish)
	assert.Equal(t, "I've completed {action}. {details}", text)
}

func TestResolve_GenericFallbackForUnknownArchetype(t *testing.T) {
	text := Resolve(KindGreeting, models.Archetype("unknown"), models.LanguageEnglish)
	assert.Equal(t, genericFallback, text)
}

func TestBuild_TemplateSetShape(t *testing.T) {
	set := Build(models.ArchetypeOutboundMarketing, models.LanguageChinese)

	require.Len(t, set, 3)

	greeting, ok := set["greeting"]
	require.True(t, ok)
	assert.Equal(t, "greeting", greeting.ID)
	assert.Equal(t, []string{"business_name"}, greeting.Variables)
	assert.Contains(t, greeting.Template, "{business_name}")

	confirmation, ok := set["confirmation"]
	require.True(t, ok)
	assert.Equal(t, []string{"action", "details"}, confirmation.Variables)

	_, ok = set["goodbye"]
	assert.True(t, ok)
}

func TestBuildConfirmationMessages(t *testing.T) {
	msgs := BuildConfirmationMessages()

	for _, key := range []string{"appointment_scheduled", "information_collected", "transfer_initiated"} {
		assert.NotEmpty(t, msgs[key], "missing confirmation message %s", key)
	}
}

func TestBuildErrorHandling(t *testing.T) {
	handlers := BuildErrorHandling()

	general, ok := handlers["general_error"]
	require.True(t, ok)
	assert.Equal(t, "escalate_to_human", general.FallbackAction)
	assert.Equal(t, 2, general.RetryCount)

	timeout, ok := handlers["timeout_error"]
	require.True(t, ok)
	assert.Equal(t, "repeat_question", timeout.FallbackAction)
	assert.Equal(t, 3, timeout.RetryCount)
}
