package logger

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskSensitiveString(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		prefix int
		suffix int
		want   string
	}{
		{"empty", "", 4, 2, ""},
		{"short value fully masked", "abc", 4, 2, "***"},
		{"long value keeps edges", "ghp_abcdefghijklmnop", 4, 2, "ghp_...op"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskSensitiveString(tt.in, tt.prefix, tt.suffix))
		})
	}
}

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"typical", "alice@example.com", "a***e@example.com"},
		{"short username", "ab@example.com", "**@example.com"},
		{"not an email", "notanemail", "no...il"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskEmail(tt.in))
		})
	}
}

func TestFilterSensitiveHeaders(t *testing.T) {
	headers := http.Header{}
	headers.Set("Authorization", "token secret123")
	headers.Set("Cookie", "session=abc")
	headers.Set("X-Api-Key", "key123")
	headers.Set("Content-Type", "application/json")

	filtered := FilterSensitiveHeaders(headers)

	assert.Equal(t, "[REDACTED]", filtered["Authorization"])
	assert.Equal(t, "[REDACTED]", filtered["Cookie"])
	assert.Equal(t, "[REDACTED]", filtered["X-Api-Key"])
	assert.Equal(t, "application/json", filtered["Content-Type"])
}
