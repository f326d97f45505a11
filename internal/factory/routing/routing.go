// Package routing derives call routing rules per archetype. Rules are built
// from the shared keyword taxonomy so the call runtime's detector always
// recognizes every keyword a rule can match on.
package routing

import (
	"fmt"

	"voiceagent-workers/internal/factory/keywords"
	"voiceagent-workers/internal/models"
)

func ruleID(archetype models.Archetype, slug string) string {
	return fmt.Sprintf("%s-%s", archetype, slug)
}

// Build returns the archetype's routing rules sorted by ascending priority.
// Both inbound archetypes carry the emergency escalation rule at priority 1;
// outbound archetypes never do, since the agent initiated the call.
func Build(archetype models.Archetype) []models.RoutingRule {
	var rules []models.RoutingRule

	if archetype.Inbound() {
		rules = append(rules, models.RoutingRule{
			ID:        ruleID(archetype, "emergency"),
			Condition: models.RuleCondition{Keywords: keywords.GroupEmergency.Keywords},
			Action:    models.ActionEscalate,
			Target:    "human_agent",
			Priority:  1,
			Enabled:   true,
		})
	}

	switch archetype {
	case models.ArchetypeInboundReceptionist:
		rules = append(rules,
			models.RoutingRule{
				ID:        ruleID(archetype, "appointment_request"),
				Condition: models.RuleCondition{Keywords: keywords.GroupAppointment.Keywords},
				Action:    models.ActionSchedule,
				Target:    "calendar_system",
				Priority:  2,
				Enabled:   true,
			},
			models.RoutingRule{
				ID:        ruleID(archetype, "billing_inquiry"),
				Condition: models.RuleCondition{Keywords: keywords.GroupBilling.Keywords},
				Action:    models.ActionTransfer,
				Target:    "billing_department",
				Priority:  3,
				Enabled:   true,
			},
		)

	case models.ArchetypeOutboundFollowUp:
		rules = append(rules,
			models.RoutingRule{
				ID:        ruleID(archetype, "reschedule_request"),
				Condition: models.RuleCondition{Keywords: keywords.GroupReschedule.Keywords},
				Action:    models.ActionSchedule,
				Target:    "calendar_system",
				Priority:  1,
				Enabled:   true,
			},
			models.RoutingRule{
				ID:        ruleID(archetype, "cancellation"),
				Condition: models.RuleCondition{Keywords: keywords.GroupCancellation.Keywords},
				Action:    models.ActionCollectInfo,
				Target:    "cancellation_form",
				Priority:  2,
				Enabled:   true,
			},
		)

	case models.ArchetypeOutboundMarketing:
		rules = append(rules,
			models.RoutingRule{
				ID: ruleID(archetype, "interested_lead"),
				Condition: models.RuleCondition{
					Keywords:  keywords.GroupInterest.Keywords,
					Sentiment: models.SentimentPositive,
				},
				Action:   models.ActionSchedule,
				Target:   "consultation_calendar",
				Priority: 1,
				Enabled:  true,
			},
			models.RoutingRule{
				ID:        ruleID(archetype, "not_interested"),
				Condition: models.RuleCondition{Keywords: keywords.GroupOptOut.Keywords},
				Action:    models.ActionCollectInfo,
				Target:    "opt_out_form",
				Priority:  2,
				Enabled:   true,
			},
		)

	case models.ArchetypeInboundCustomerSupport:
		rules = append(rules,
			models.RoutingRule{
				ID:        ruleID(archetype, "technical_issue"),
				Condition: models.RuleCondition{Keywords: keywords.GroupTechnicalIssue.Keywords},
				Action:    models.ActionCollectInfo,
				Target:    "technical_support_form",
				Priority:  2,
				Enabled:   true,
			},
			models.RoutingRule{
				ID:        ruleID(archetype, "billing_dispute"),
				Condition: models.RuleCondition{Keywords: keywords.GroupBillingDispute.Keywords},
				Action:    models.ActionEscalate,
				Target:    "billing_supervisor",
				Priority:  3,
				Enabled:   true,
			},
		)
	}

	models.SortRoutingRules(rules)
	return rules
}
