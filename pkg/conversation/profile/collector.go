// Package profile drives the guided profile-collection flow. The flow
// is an explicit transition table keyed by the session's current
// collection state; each step consumes the raw user text, mutates the
// session's temp data in memory and reports what the bot should say
// next. Persisting the mutated session (and creating the final
// UserProfile) stays with the caller so it can run inside one
// transaction.
package profile

import (
	"fmt"
	"strings"

	"educonsult-be/internal/constant"
	"educonsult-be/internal/entity"
	"educonsult-be/pkg/conversation/intent"
	"educonsult-be/pkg/conversation/phone"
)

// StepResult is the structured outcome of feeding one turn into the
// flow. Collecting names the field being gathered after the
// transition, so re-prompts repeat the current field and successful
// advances name the next one.
type StepResult struct {
	Response    string
	Suggestions []string
	Type        string
	Collecting  string
	Completed   bool
	// Draft holds the collected fields when Completed is true. The
	// caller turns it into a UserProfile inside its transaction.
	Draft map[string]string
}

type stepFunc func(c *Collector, session *entity.ChatSession, input string) *StepResult

// Collector walks a session through name, country code, phone, email
// and address in order. It is stateless; all flow state lives on the
// session record.
type Collector struct {
	transitions map[entity.ProfileCollectionState]stepFunc
}

func NewCollector() *Collector {
	c := &Collector{}
	c.transitions = map[entity.ProfileCollectionState]stepFunc{
		entity.CollectingName:        (*Collector).stepName,
		entity.CollectingCountryCode: (*Collector).stepCountryCode,
		entity.CollectingPhone:       (*Collector).stepPhone,
		entity.CollectingEmail:       (*Collector).stepEmail,
		entity.CollectingAddress:     (*Collector).stepAddress,
	}
	return c
}

// Step consumes one user turn. Returns nil when the session is not in
// an active collection state.
func (c *Collector) Step(session *entity.ChatSession, input string) *StepResult {
	step, ok := c.transitions[session.ProfileCollectionState]
	if !ok {
		return nil
	}
	if session.TempProfileData == nil {
		session.TempProfileData = map[string]string{}
	}
	return step(c, session, input)
}

// WelcomePrompt is the opening message that starts collection at the
// name state.
func (c *Collector) WelcomePrompt() *StepResult {
	return &StepResult{
		Response:    constant.WelcomeMessage,
		Suggestions: []string{"Example: John Doe"},
		Type:        constant.ResponseTypeProfileCollection,
		Collecting:  string(entity.CollectingName),
	}
}

func (c *Collector) stepName(session *entity.ChatSession, input string) *StepResult {
	name := strings.TrimSpace(input)
	if errMsg := validateName(name); errMsg != "" {
		return &StepResult{
			Response:   fmt.Sprintf("I'm sorry, but %s. Please enter your full name:", errMsg),
			Type:       constant.ResponseTypeProfileCollection,
			Collecting: string(entity.CollectingName),
		}
	}

	session.TempProfileData["name"] = name
	session.ProfileCollectionState = entity.CollectingCountryCode

	suggestions := make([]string, 0, 9)
	for _, cc := range constant.CountryCodes[:8] {
		suggestions = append(suggestions, fmt.Sprintf("%s %s %s", cc.Code, cc.Flag, cc.Country))
	}
	suggestions = append(suggestions, "Show more countries")

	return &StepResult{
		Response:    fmt.Sprintf("Nice to meet you, %s! 👋<br><br>Now I need your phone number. Please first select your country code:", name),
		Suggestions: suggestions,
		Type:        constant.ResponseTypeProfileCollection,
		Collecting:  string(entity.CollectingCountryCode),
	}
}

func (c *Collector) stepCountryCode(session *entity.ChatSession, input string) *StepResult {
	countryCode := constant.DefaultCountryCode
	lowered := strings.ToLower(input)
	for _, cc := range constant.CountryCodes {
		if strings.Contains(input, cc.Code) || strings.Contains(lowered, strings.ToLower(cc.Country)) {
			countryCode = cc.Code
			break
		}
	}

	session.TempProfileData["country_code"] = countryCode
	session.ProfileCollectionState = entity.CollectingPhone

	return &StepResult{
		Response:    fmt.Sprintf("Great! Now please enter your phone number (without the country code %s):", countryCode),
		Suggestions: []string{"Example: 9841234567"},
		Type:        constant.ResponseTypeProfileCollection,
		Collecting:  string(entity.CollectingPhone),
	}
}

func (c *Collector) stepPhone(session *entity.ChatSession, input string) *StepResult {
	countryCode := session.TempProfileData["country_code"]
	if countryCode == "" {
		countryCode = constant.DefaultCountryCode
	}

	valid, errMsg := phone.Validate(input, countryCode)
	if !valid {
		return &StepResult{
			Response:    fmt.Sprintf("I'm sorry, but %s. Please enter a valid phone number:", errMsg),
			Suggestions: []string{"Example: 9841234567"},
			Type:        constant.ResponseTypeProfileCollection,
			Collecting:  string(entity.CollectingPhone),
		}
	}

	session.TempProfileData["phone"] = fmt.Sprintf("%s-%s", countryCode, strings.TrimSpace(input))
	session.ProfileCollectionState = entity.CollectingEmail

	return &StepResult{
		Response:    "Perfect! Now, would you like to provide your email address? (You can skip this by typing 'skip')",
		Suggestions: []string{"Example: your.email@example.com", "Skip"},
		Type:        constant.ResponseTypeProfileCollection,
		Collecting:  string(entity.CollectingEmail),
	}
}

func (c *Collector) stepEmail(session *entity.ChatSession, input string) *StepResult {
	if intent.IsEmailSkip(input) {
		delete(session.TempProfileData, "email")
		session.ProfileCollectionState = entity.CollectingAddress

		return &StepResult{
			Response:    "No problem! Finally, please provide your address:",
			Suggestions: []string{"Example: City, Country"},
			Type:        constant.ResponseTypeProfileCollection,
			Collecting:  string(entity.CollectingAddress),
		}
	}

	email := strings.TrimSpace(input)
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return &StepResult{
			Response:    "Please enter a valid email address or type 'skip' to continue without email:",
			Suggestions: []string{"Example: your.email@example.com", "Skip"},
			Type:        constant.ResponseTypeProfileCollection,
			Collecting:  string(entity.CollectingEmail),
		}
	}

	session.TempProfileData["email"] = email
	session.ProfileCollectionState = entity.CollectingAddress

	return &StepResult{
		Response:    "Great! Finally, please provide your address:",
		Suggestions: []string{"Example: City, Country"},
		Type:        constant.ResponseTypeProfileCollection,
		Collecting:  string(entity.CollectingAddress),
	}
}

func (c *Collector) stepAddress(session *entity.ChatSession, input string) *StepResult {
	session.TempProfileData["address"] = strings.TrimSpace(input)

	draft := make(map[string]string, len(session.TempProfileData))
	for k, v := range session.TempProfileData {
		draft[k] = v
	}

	session.ProfileCompleted = true
	session.ProfileCollectionState = entity.CollectionComplete
	session.TempProfileData = map[string]string{}

	return &StepResult{
		Response:    fmt.Sprintf("Thank you, %s! Your profile is now complete. 🎉<br><br>How can I help you with your education abroad journey?", draft["name"]),
		Suggestions: constant.ProfileCompleteSuggestions,
		Type:        constant.ResponseTypeProfileComplete,
		Completed:   true,
		Draft:       draft,
	}
}

func validateName(name string) string {
	if name == "" {
		return "the name cannot be empty"
	}
	if len(name) < 2 {
		return "the name must be at least 2 characters long"
	}
	hasLetter := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r > 127:
			hasLetter = true
		case r == ' ', r == '\'', r == '-', r == '.':
		default:
			return "the name contains invalid characters"
		}
	}
	if !hasLetter {
		return "the name must contain letters"
	}
	return ""
}
