// Package registry holds the static archetype and language tables every other
// synthesis package derives from. The tables are data, not behavior; callers
// copy what they read and never mutate entries in place.
package registry

import (
	"voiceagent-workers/internal/common/errors"
	"voiceagent-workers/internal/models"
)

// Profile is the baseline definition of one archetype.
type Profile struct {
	Archetype    models.Archetype
	Name         string
	Description  string
	Capabilities []string
	Personality  models.Personality
	Voice        models.VoiceTuning
}

// LanguageProfile is the per-locale adjustment applied on top of a Profile.
// A set field replaces the matching baseline field; nil leaves it untouched.
type LanguageProfile struct {
	Language models.Language
	Accent   string
	// Speed, when non-nil, replaces the archetype's base speed.
	Speed *float64
}

func speedPtr(v float64) *float64 { return &v }

var profiles = map[models.Archetype]Profile{
	models.ArchetypeInboundReceptionist: {
		Archetype:   models.ArchetypeInboundReceptionist,
		Name:        "AI Receptionist",
		Description: "Handles incoming calls, answers questions, and routes callers",
		Capabilities: []string{
			"call_answering",
			"appointment_scheduling",
			"call_routing",
			"information_lookup",
		},
		Personality: models.PersonalityProfessional,
		Voice: models.VoiceTuning{
			Speed: 1.0,
			Pitch: 1.0,
			Tone:  "professional",
		},
	},
	models.ArchetypeInboundCustomerSupport: {
		Archetype:   models.ArchetypeInboundCustomerSupport,
		Name:        "Customer Support Agent",
		Description: "Resolves product issues and answers support questions",
		Capabilities: []string{
			"issue_triage",
			"troubleshooting",
			"ticket_creation",
			"escalation",
		},
		Personality: models.PersonalityTechnical,
		Voice: models.VoiceTuning{
			Speed: 0.9,
			Pitch: 0.9,
			Tone:  "calm",
		},
	},
	models.ArchetypeOutboundFollowUp: {
		Archetype:   models.ArchetypeOutboundFollowUp,
		Name:        "Follow-up Assistant",
		Description: "Calls customers about upcoming appointments and confirmations",
		Capabilities: []string{
			"appointment_confirmation",
			"rescheduling",
			"reminder_delivery",
		},
		Personality: models.PersonalityFriendly,
		Voice: models.VoiceTuning{
			Speed: 0.9,
			Pitch: 1.1,
			Tone:  "friendly",
		},
	},
	models.ArchetypeOutboundMarketing: {
		Archetype:   models.ArchetypeOutboundMarketing,
		Name:        "Marketing Outreach Agent",
		Description: "Presents offers to leads and qualifies interest",
		Capabilities: []string{
			"lead_qualification",
			"offer_presentation",
			"consultation_scheduling",
		},
		Personality: models.PersonalityFriendly,
		Voice: models.VoiceTuning{
			Speed: 1.1,
			Pitch: 1.0,
			Tone:  "energetic",
		},
	},
}

var languageProfiles = map[models.Language]LanguageProfile{
	models.LanguageEnglish: {
		Language: models.LanguageEnglish,
		Accent:   "american",
	},
	models.LanguageSpanish: {
		Language: models.LanguageSpanish,
		Accent:   "neutral",
		Speed:    speedPtr(0.95),
	},
	models.LanguageChinese: {
		Language: models.LanguageChinese,
		Accent:   "mainland",
		Speed:    speedPtr(0.9),
	},
	models.LanguageItalian: {
		Language: models.LanguageItalian,
		Accent:   "standard",
		Speed:    speedPtr(1.05),
	},
}

// Lookup returns the profile for the archetype or an UNSUPPORTED_ARCHETYPE
// error when it is not registered.
func Lookup(archetype models.Archetype) (Profile, error) {
	profile, ok := profiles[archetype]
	if !ok {
		return Profile{}, errors.NewUnsupportedArchetypeError(string(archetype))
	}
	return profile, nil
}

// LookupLanguage returns the language profile, falling back to English for
// unknown locales. Language is a preference, not a contract, so unknown tags
// degrade instead of failing.
func LookupLanguage(language models.Language) LanguageProfile {
	if lp, ok := languageProfiles[language]; ok {
		return lp
	}
	return languageProfiles[models.LanguageEnglish]
}

// Supported reports whether the archetype is registered.
func Supported(archetype models.Archetype) bool {
	_, ok := profiles[archetype]
	return ok
}
