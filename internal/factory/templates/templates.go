// Package templates derives localized response templates. Resolution walks a
// fixed fallback chain: exact archetype/language entry, then the archetype's
// English entry, then a generic greeting. The chain guarantees a non-empty
// template for every kind regardless of locale coverage.
package templates

import (
	"voiceagent-workers/internal/models"
)

// Kind names a response template slot.
type Kind string

const (
	KindGreeting     Kind = "greeting"
	KindConfirmation Kind = "confirmation"
	KindGoodbye      Kind = "goodbye"
)

// AllKinds returns the template kinds every configuration carries.
func AllKinds() []Kind {
	return []Kind{KindGreeting, KindConfirmation, KindGoodbye}
}

const genericFallback = "Hello! How can I help you today?"

var greetingTable = map[models.Archetype]map[models.Language]string{
	models.ArchetypeInboundReceptionist: {
		models.LanguageEnglish: "Hello! Thank you for calling {business_name}. This is your AI assistant. How may I help you today?",
		models.LanguageSpanish: "¡Hola! Gracias por llamar a {business_name}. Soy su asistente de IA. ¿Cómo puedo ayudarle hoy?",
		models.LanguageChinese: "您好！感谢您致电{business_name}。我是您的AI助手。今天我能为您做些什么？",
		models.LanguageItalian: "Ciao! Grazie per aver chiamato {business_name}. Sono il tuo assistente AI. Come posso aiutarti oggi?",
	},
	models.ArchetypeOutboundFollowUp: {
		models.LanguageEnglish: "Hello! This is your AI assistant calling from {business_name} regarding your upcoming appointment.",
		models.LanguageSpanish: "¡Hola! Soy su asistente de IA llamando de {business_name} sobre su próxima cita.",
		models.LanguageChinese: "您好！我是来自{business_name}的AI助手，关于您即将到来的预约。",
		models.LanguageItalian: "Ciao! Sono il tuo assistente AI che chiama da {business_name} riguardo al tuo appuntamento.",
	},
	models.ArchetypeOutboundMarketing: {
		models.LanguageEnglish: "Hello! I'm calling from {business_name} with some exciting news about our services.",
		models.LanguageSpanish: "¡Hola! Llamo de {business_name} con noticias emocionantes sobre nuestros servicios.",
		models.LanguageChinese: "您好！我是{business_name}的代表，有一些关于我们服务的好消息。",
		models.LanguageItalian: "Ciao! Sto chiamando da {business_name} con notizie entusiasmanti sui nostri servizi.",
	},
	models.ArchetypeInboundCustomerSupport: {
		models.LanguageEnglish: "Hello! This is {business_name} customer support. I'm here to help you with any questions or issues.",
		models.LanguageSpanish: "¡Hola! Este es el soporte al cliente de {business_name}. Estoy aquí para ayudarle con cualquier pregunta o problema.",
		models.LanguageChinese: "您好！这里是{business_name}客户支持。我来帮助您解决任何问题。",
		models.LanguageItalian: "Ciao! Questo è il supporto clienti di {business_name}. Sono qui per aiutarti con domande o problemi.",
	},
}

// Confirmation and goodbye are English-only for now; non-English locales
// reach them through the fallback chain.
var confirmationTable = map[models.Archetype]map[models.Language]string{
	models.ArchetypeInboundReceptionist: {
		models.LanguageEnglish: "I've completed {action}. {details}",
	},
	models.ArchetypeOutboundFollowUp: {
		models.LanguageEnglish: "I've completed {action}. {details}",
	},
	models.ArchetypeOutboundMarketing: {
		models.LanguageEnglish: "I've completed {action}. {details}",
	},
	models.ArchetypeInboundCustomerSupport: {
		models.LanguageEnglish: "I've completed {action}. {details}",
	},
}

var goodbyeTable = map[models.Archetype]map[models.Language]string{
	models.ArchetypeInboundReceptionist: {
		models.LanguageEnglish: "Thank you for calling {business_name}. Have a great day!",
	},
	models.ArchetypeOutboundFollowUp: {
		models.LanguageEnglish: "Thank you for your time. {business_name} looks forward to seeing you!",
	},
	models.ArchetypeOutboundMarketing: {
		models.LanguageEnglish: "Thank you for your time. Feel free to reach out to {business_name} anytime!",
	},
	models.ArchetypeInboundCustomerSupport: {
		models.LanguageEnglish: "Thank you for contacting {business_name} support. Have a great day!",
	},
}

func tableFor(kind Kind) map[models.Archetype]map[models.Language]string {
	switch kind {
	case KindConfirmation:
		return confirmationTable
	case KindGoodbye:
		return goodbyeTable
	default:
		return greetingTable
	}
}

// Resolve returns the template text for the kind/archetype/language triple,
// applying the fallback chain. It never returns an empty string.
func Resolve(kind Kind, archetype models.Archetype, language models.Language) string {
	table := tableFor(kind)
	if byLang, ok := table[archetype]; ok {
		if text, ok := byLang[language]; ok && text != "" {
			return text
		}
		if text, ok := byLang[models.LanguageEnglish]; ok && text != "" {
			return text
		}
	}
	return genericFallback
}

var templateVariables = map[Kind][]string{
	KindGreeting:     {"business_name"},
	KindConfirmation: {"action", "details"},
	KindGoodbye:      {"business_name"},
}

// Build returns the full response template set for the archetype/language.
func Build(archetype models.Archetype, language models.Language) map[string]models.ResponseTemplate {
	out := make(map[string]models.ResponseTemplate, len(AllKinds()))
	for _, kind := range AllKinds() {
		out[string(kind)] = models.ResponseTemplate{
			ID:        string(kind),
			Name:      titleFor(kind),
			Template:  Resolve(kind, archetype, language),
			Variables: append([]string(nil), templateVariables[kind]...),
		}
	}
	return out
}

func titleFor(kind Kind) string {
	switch kind {
	case KindConfirmation:
		return "Confirmation Template"
	case KindGoodbye:
		return "Goodbye Template"
	default:
		return "Greeting Template"
	}
}

// BuildConfirmationMessages returns the fixed confirmation phrases the call
// runtime uses after completing an action.
func BuildConfirmationMessages() map[string]string {
	return map[string]string{
		"appointment_scheduled": "Your appointment has been scheduled successfully.",
		"information_collected": "I've collected your information. Is there anything else I can help you with?",
		"transfer_initiated":    "I'm connecting you with the right person now.",
	}
}

// BuildErrorHandling returns the error response templates shared by every
// archetype.
func BuildErrorHandling() map[string]models.ErrorTemplate {
	return map[string]models.ErrorTemplate{
		"general_error": {
			ErrorType:        "general",
			ResponseTemplate: "I apologize, but I'm experiencing a technical issue. Let me connect you with a human agent.",
			FallbackAction:   "escalate_to_human",
			RetryCount:       2,
		},
		"timeout_error": {
			ErrorType:        "timeout",
			ResponseTemplate: "I didn't catch that. Could you please repeat what you said?",
			FallbackAction:   "repeat_question",
			RetryCount:       3,
		},
	}
}
