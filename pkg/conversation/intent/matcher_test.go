package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsGreeting(t *testing.T) {
	tests := []struct {
		message string
		want    bool
	}{
		{"hello", true},
		{"  Hi  ", true},
		{"good morning everyone", true},
		{"hello there, I need help", true},
		{"hellooo", false},
		{"tell me about visas", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsGreeting(tt.message), "message: %q", tt.message)
	}
}

func TestIsEscalationRequest(t *testing.T) {
	tests := []struct {
		message string
		want    bool
	}{
		{"talk to advisor", true},
		{"🗣️ Talk to Advisor", true},
		{"human agent", true},
		{"I want to speak to human please", true},
		{"can I get a real person", true},
		{"is there a live agent available", true},
		{"tell me about advisors", false},
		{"what is a humanities degree", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsEscalationRequest(tt.message), "message: %q", tt.message)
	}
}

func TestMenuCommands(t *testing.T) {
	assert.True(t, IsCountryMenuCommand("Explore Countries"))
	assert.True(t, IsCountryMenuCommand("🌍 choose country"))
	assert.False(t, IsCountryMenuCommand("explore countries please"))

	assert.True(t, IsProgramMenuCommand("Browse Programs"))
	assert.False(t, IsProgramMenuCommand("programs"))
}

func TestIsEmailSkip(t *testing.T) {
	for _, keyword := range []string{"skip", "SKIP", "no", "no thanks", "pass"} {
		assert.True(t, IsEmailSkip(keyword), "keyword: %q", keyword)
	}
	assert.False(t, IsEmailSkip("nope"))
	assert.False(t, IsEmailSkip("skip this question"))
}
