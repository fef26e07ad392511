// Package phone validates phone numbers collected during the profile
// flow. Validation is a pure function over the digits and the selected
// country code; no network lookups are involved.
package phone

import (
	"fmt"
	"regexp"
	"strings"
)

type Result struct {
	Valid    bool
	Message  string
	Provider string
}

var nonDigit = regexp.MustCompile(`\D`)

// digit length bounds per country code; countries not listed fall back
// to the generic 7..15 range.
var countryDigitRules = map[string][2]int{
	"+977": {10, 10},
	"+91":  {10, 10},
	"+1":   {10, 10},
	"+44":  {10, 11},
	"+61":  {9, 9},
	"+49":  {10, 11},
	"+33":  {9, 9},
	"+31":  {9, 9},
	"+64":  {8, 10},
	"+65":  {8, 8},
	"+353": {9, 9},
	"+81":  {10, 11},
	"+86":  {11, 11},
	"+880": {10, 10},
	"+94":  {9, 9},
}

// Nepali mobile prefixes mapped to carrier.
var nepaliProviders = map[string]string{
	"984": "NTC", "985": "NTC", "986": "NTC",
	"974": "NTC", "975": "NTC",
	"980": "Ncell", "981": "Ncell", "982": "Ncell",
	"961": "Smart Cell", "962": "Smart Cell", "988": "Smart Cell",
	"972": "UTL",
}

func sanitize(phone string) string {
	return nonDigit.ReplaceAllString(strings.TrimSpace(phone), "")
}

// ValidateNepali checks a local Nepali mobile number and identifies
// the carrier from the three-digit prefix.
func ValidateNepali(phone string) Result {
	digits := sanitize(phone)

	if len(digits) != 10 {
		return Result{Valid: false, Message: "Nepali mobile numbers must be exactly 10 digits"}
	}
	if !strings.HasPrefix(digits, "9") {
		return Result{Valid: false, Message: "Nepali mobile numbers must start with 9"}
	}

	provider, known := nepaliProviders[digits[:3]]
	if !known {
		return Result{Valid: false, Message: fmt.Sprintf("the prefix %s is not a recognized Nepali mobile prefix", digits[:3])}
	}

	return Result{Valid: true, Message: "Valid Nepali mobile number.", Provider: provider}
}

// Validate checks a local number against the rules for the given
// country code. Nepal gets carrier-aware validation, other countries
// a digit-length check.
func Validate(phone, countryCode string) (bool, string) {
	digits := sanitize(phone)
	if digits == "" {
		return false, "the phone number cannot be empty"
	}

	if countryCode == "+977" {
		result := ValidateNepali(phone)
		return result.Valid, result.Message
	}

	bounds, ok := countryDigitRules[countryCode]
	if !ok {
		bounds = [2]int{7, 15}
	}

	if len(digits) < bounds[0] || len(digits) > bounds[1] {
		if bounds[0] == bounds[1] {
			return false, fmt.Sprintf("phone numbers for %s must be exactly %d digits", countryCode, bounds[0])
		}
		return false, fmt.Sprintf("phone numbers for %s must be between %d and %d digits", countryCode, bounds[0], bounds[1])
	}

	return true, "Valid phone number."
}
