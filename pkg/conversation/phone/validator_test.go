package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateNepaliIdentifiesProvider(t *testing.T) {
	tests := []struct {
		phone    string
		provider string
	}{
		{"9841234567", "NTC"},
		{"9751234567", "NTC"},
		{"9801234567", "Ncell"},
		{"9821234567", "Ncell"},
		{"9611234567", "Smart Cell"},
		{"9721234567", "UTL"},
		{"984-123-4567", "NTC"}, // separators are stripped
	}

	for _, tt := range tests {
		result := ValidateNepali(tt.phone)
		assert.True(t, result.Valid, "phone: %q", tt.phone)
		assert.Equal(t, tt.provider, result.Provider, "phone: %q", tt.phone)
	}
}

func TestValidateNepaliRejections(t *testing.T) {
	tests := []struct {
		name  string
		phone string
	}{
		{"too short", "98412345"},
		{"too long", "98412345678"},
		{"wrong leading digit", "8841234567"},
		{"unknown prefix", "9991234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateNepali(tt.phone)
			assert.False(t, result.Valid)
			assert.NotEmpty(t, result.Message)
		})
	}
}

func TestValidatePerCountryDigitRules(t *testing.T) {
	tests := []struct {
		phone       string
		countryCode string
		want        bool
	}{
		{"9841234567", "+977", true},
		{"12345", "+977", false},
		{"412345678", "+61", true},
		{"41234567", "+61", false},
		{"7911123456", "+44", true},
		{"79111234567", "+44", true}, // 11 digits also allowed
		{"791112345", "+44", false},
		{"1234567", "+999", true},  // unknown code uses 7..15
		{"123456", "+999", false},
		{"", "+1", false},
	}

	for _, tt := range tests {
		valid, msg := Validate(tt.phone, tt.countryCode)
		assert.Equal(t, tt.want, valid, "phone %q code %s", tt.phone, tt.countryCode)
		assert.NotEmpty(t, msg)
	}
}
