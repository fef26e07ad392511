// Package intent classifies inbound turns ahead of retrieval:
// greetings, static menu commands and escalation triggers.
package intent

import (
	"strings"

	"educonsult-be/internal/constant"
)

// IsGreeting reports whether the message is a greeting, either the
// whole message or a greeting keyword followed by more text.
func IsGreeting(message string) bool {
	msg := strings.ToLower(strings.TrimSpace(message))
	for _, greeting := range constant.GreetingKeywords {
		if msg == greeting {
			return true
		}
	}
	for _, greeting := range constant.GreetingKeywords {
		if strings.HasPrefix(msg, greeting+" ") {
			return true
		}
	}
	return false
}

// IsCountryMenuCommand matches the fixed country-menu commands exactly.
func IsCountryMenuCommand(message string) bool {
	return matchesExact(message, constant.CountryMenuCommands)
}

// IsProgramMenuCommand matches the fixed program-menu commands exactly.
func IsProgramMenuCommand(message string) bool {
	return matchesExact(message, constant.ProgramMenuCommands)
}

// IsEscalationRequest fires on an exact escalation phrase or on any of
// the broader phrases appearing anywhere in the message.
func IsEscalationRequest(message string) bool {
	if matchesExact(message, constant.EscalationExactPhrases) {
		return true
	}
	msg := strings.ToLower(message)
	for _, phrase := range constant.EscalationSubstringPhrases {
		if strings.Contains(msg, phrase) {
			return true
		}
	}
	return false
}

// IsEmailSkip reports whether the message is one of the email skip
// synonyms.
func IsEmailSkip(message string) bool {
	return matchesExact(message, constant.EmailSkipKeywords)
}

func matchesExact(message string, candidates []string) bool {
	msg := strings.ToLower(strings.TrimSpace(message))
	for _, candidate := range candidates {
		if msg == candidate {
			return true
		}
	}
	return false
}
