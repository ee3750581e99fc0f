package tagstore_test

import (
	"testing"

	"event-insights-service/internal/tagstore"

	"github.com/stretchr/testify/assert"
)

func TestGetStandardizedKey(t *testing.T) {
	s := tagstore.New()

	assert.Equal(t, "user", s.GetStandardizedKey("sentry:user"))
	assert.Equal(t, "browser.name", s.GetStandardizedKey("browser.name"))
	assert.Equal(t, "", s.GetStandardizedKey(""))
}

func TestGetTagValueLabel(t *testing.T) {
	s := tagstore.New()

	testCases := []struct {
		name     string
		key      string
		value    string
		expected string
	}{
		{"user id", "sentry:user", "id:42", "42"},
		{"user email", "sentry:user", "email:a@example.com", "a@example.com"},
		{"user username", "sentry:user", "username:jane", "jane"},
		{"user ip", "sentry:user", "ip:127.0.0.1", "127.0.0.1"},
		{"user without prefix", "sentry:user", "anonymous", "anonymous"},
		{"release with package", "sentry:release", "backend@2.1.0", "2.1.0"},
		{"release sha", "sentry:release", "0123456789abcdef0123456789abcdef01234567", "0123456789ab"},
		{"plain tag", "browser.name", "Chrome", "Chrome"},
		{"empty value", "environment", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, s.GetTagValueLabel(tc.key, tc.value))
		})
	}
}
