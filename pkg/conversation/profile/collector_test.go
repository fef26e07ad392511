package profile

import (
	"testing"

	"educonsult-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCollectingSession(state entity.ProfileCollectionState) *entity.ChatSession {
	return &entity.ChatSession{
		ProfileCollectionState: state,
		TempProfileData:        map[string]string{},
	}
}

func TestStepReturnsNilWhenCollectionComplete(t *testing.T) {
	c := NewCollector()
	session := newCollectingSession(entity.CollectionComplete)

	assert.Nil(t, c.Step(session, "hello"))
}

func TestStepNameAdvancesToCountryCode(t *testing.T) {
	c := NewCollector()
	session := newCollectingSession(entity.CollectingName)

	result := c.Step(session, "  Sita Sharma  ")

	require.NotNil(t, result)
	assert.False(t, result.Completed)
	assert.Equal(t, string(entity.CollectingCountryCode), result.Collecting)
	assert.Equal(t, entity.CollectingCountryCode, session.ProfileCollectionState)
	assert.Equal(t, "Sita Sharma", session.TempProfileData["name"])
	assert.Contains(t, result.Response, "Sita Sharma")
	// 8 country shortcuts plus the expand option
	assert.Len(t, result.Suggestions, 9)
}

func TestStepNameRejectsInvalidInput(t *testing.T) {
	c := NewCollector()

	tests := []struct {
		name  string
		input string
	}{
		{"empty", "   "},
		{"too short", "a"},
		{"digits", "123"},
		{"mixed symbols", "John@Doe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := newCollectingSession(entity.CollectingName)

			result := c.Step(session, tt.input)

			require.NotNil(t, result)
			assert.Equal(t, string(entity.CollectingName), result.Collecting)
			// state must not advance on a rejected answer
			assert.Equal(t, entity.CollectingName, session.ProfileCollectionState)
			assert.Empty(t, session.TempProfileData["name"])
		})
	}
}

func TestStepNameAcceptsAccentsAndPunctuation(t *testing.T) {
	c := NewCollector()
	session := newCollectingSession(entity.CollectingName)

	result := c.Step(session, "O'Brien-Núñez Jr.")

	require.NotNil(t, result)
	assert.Equal(t, entity.CollectingCountryCode, session.ProfileCollectionState)
}

func TestStepCountryCodeMatchesCodeOrName(t *testing.T) {
	c := NewCollector()

	t.Run("by code", func(t *testing.T) {
		session := newCollectingSession(entity.CollectingCountryCode)
		c.Step(session, "+61 🇦🇺 Australia")
		assert.Equal(t, "+61", session.TempProfileData["country_code"])
	})

	t.Run("by country name", func(t *testing.T) {
		session := newCollectingSession(entity.CollectingCountryCode)
		c.Step(session, "australia")
		assert.Equal(t, "+61", session.TempProfileData["country_code"])
	})

	t.Run("unrecognized falls back to Nepal", func(t *testing.T) {
		session := newCollectingSession(entity.CollectingCountryCode)
		c.Step(session, "somewhere else")
		assert.Equal(t, "+977", session.TempProfileData["country_code"])
	})
}

func TestStepPhoneValidatesAgainstCountry(t *testing.T) {
	c := NewCollector()
	session := newCollectingSession(entity.CollectingPhone)
	session.TempProfileData["country_code"] = "+977"

	result := c.Step(session, "12345")

	require.NotNil(t, result)
	assert.Equal(t, string(entity.CollectingPhone), result.Collecting)
	assert.Equal(t, entity.CollectingPhone, session.ProfileCollectionState)

	result = c.Step(session, "9841234567")

	require.NotNil(t, result)
	assert.Equal(t, string(entity.CollectingEmail), result.Collecting)
	assert.Equal(t, "+977-9841234567", session.TempProfileData["phone"])
}

func TestStepEmailSkip(t *testing.T) {
	c := NewCollector()

	for _, keyword := range []string{"skip", "Skip", "no", "no thanks", "pass"} {
		session := newCollectingSession(entity.CollectingEmail)

		result := c.Step(session, keyword)

		require.NotNil(t, result)
		assert.Equal(t, entity.CollectingAddress, session.ProfileCollectionState)
		_, present := session.TempProfileData["email"]
		assert.False(t, present)
	}
}

func TestStepEmailRejectsMalformedAddress(t *testing.T) {
	c := NewCollector()
	session := newCollectingSession(entity.CollectingEmail)

	result := c.Step(session, "not-an-email")

	require.NotNil(t, result)
	assert.Equal(t, entity.CollectingEmail, session.ProfileCollectionState)

	c.Step(session, "sita@example.com")
	assert.Equal(t, "sita@example.com", session.TempProfileData["email"])
	assert.Equal(t, entity.CollectingAddress, session.ProfileCollectionState)
}

func TestFullFlowProducesDraft(t *testing.T) {
	c := NewCollector()
	session := newCollectingSession(entity.CollectingName)

	c.Step(session, "Sita Sharma")
	c.Step(session, "+977 🇳🇵 Nepal")
	c.Step(session, "9841234567")
	c.Step(session, "sita@example.com")
	result := c.Step(session, "Kathmandu, Nepal")

	require.NotNil(t, result)
	assert.True(t, result.Completed)
	assert.True(t, session.ProfileCompleted)
	assert.Equal(t, entity.CollectionComplete, session.ProfileCollectionState)
	assert.Empty(t, session.TempProfileData)

	assert.Equal(t, map[string]string{
		"name":         "Sita Sharma",
		"country_code": "+977",
		"phone":        "+977-9841234567",
		"email":        "sita@example.com",
		"address":      "Kathmandu, Nepal",
	}, result.Draft)
}
