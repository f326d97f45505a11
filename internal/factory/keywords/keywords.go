// Package keywords is the shared keyword taxonomy for routing and detection.
// Routing rules and detection keyword lists both draw from these groups, so a
// routing keyword is always also a detection keyword.
package keywords

import "voiceagent-workers/internal/models"

// Group is a named keyword cluster. Routing rules reference groups by name;
// detection flattens every group assigned to the archetype.
type Group struct {
	Name     string
	Keywords []string
}

// Shared groups referenced by more than one archetype.
var (
	GroupEmergency = Group{
		Name:     "emergency",
		Keywords: []string{"emergency", "urgent", "911"},
	}
	GroupAppointment = Group{
		Name:     "appointment",
		Keywords: []string{"appointment", "schedule", "book"},
	}
	GroupBilling = Group{
		Name:     "billing",
		Keywords: []string{"bill", "payment", "charge", "cost"},
	}
	GroupReschedule = Group{
		Name:     "reschedule",
		Keywords: []string{"reschedule", "change", "different time"},
	}
	GroupCancellation = Group{
		Name:     "cancellation",
		Keywords: []string{"cancel", "delete", "remove"},
	}
	GroupInterest = Group{
		Name:     "interest",
		Keywords: []string{"interested", "tell me more"},
	}
	GroupOptOut = Group{
		Name:     "opt_out",
		Keywords: []string{"not interested", "no thanks", "remove me"},
	}
	GroupTechnicalIssue = Group{
		Name:     "technical_issue",
		Keywords: []string{"broken", "error", "not working", "bug"},
	}
	GroupBillingDispute = Group{
		Name:     "billing_dispute",
		Keywords: []string{"dispute", "wrong charge", "refund"},
	}
)

// Ambient groups carry keywords that only feed detection, never routing.
var (
	groupReceptionistAmbient = Group{
		Name:     "receptionist_ambient",
		Keywords: []string{"hours", "location", "services"},
	}
	groupFollowUpAmbient = Group{
		Name:     "follow_up_ambient",
		Keywords: []string{"confirm", "reminder", "preparation", "location", "parking"},
	}
	groupMarketingAmbient = Group{
		Name:     "marketing_ambient",
		Keywords: []string{"maybe", "price", "cost", "information", "brochure", "consultation"},
	}
	groupSupportAmbient = Group{
		Name:     "support_ambient",
		Keywords: []string{"problem", "issue", "help", "support", "fix", "troubleshoot"},
	}
)

var taxonomy = map[models.Archetype][]Group{
	models.ArchetypeInboundReceptionist: {
		GroupEmergency,
		GroupAppointment,
		GroupBilling,
		groupReceptionistAmbient,
	},
	models.ArchetypeInboundCustomerSupport: {
		GroupEmergency,
		GroupTechnicalIssue,
		GroupBillingDispute,
		groupSupportAmbient,
	},
	models.ArchetypeOutboundFollowUp: {
		GroupReschedule,
		GroupCancellation,
		groupFollowUpAmbient,
	},
	models.ArchetypeOutboundMarketing: {
		GroupInterest,
		GroupOptOut,
		groupMarketingAmbient,
	},
}

// ForArchetype returns the archetype's keyword groups in declaration order.
func ForArchetype(archetype models.Archetype) []Group {
	return taxonomy[archetype]
}

// DetectionKeywords flattens every group assigned to the archetype into a
// deduplicated keyword list, preserving first-seen order.
func DetectionKeywords(archetype models.Archetype) []string {
	seen := make(map[string]bool)
	var out []string
	for _, group := range taxonomy[archetype] {
		for _, kw := range group.Keywords {
			if seen[kw] {
				continue
			}
			seen[kw] = true
			out = append(out, kw)
		}
	}
	return out
}
