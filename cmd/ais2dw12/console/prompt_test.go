package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptLine(t *testing.T) {
	assert.Equal(t, "name? ", promptLine("name? ", nil))
	assert.Equal(t, "reset? [N/y]: ", promptLine("reset?", []string{No, Yes}))
}

func TestPick(t *testing.T) {
	tests := []struct {
		response string
		expected string
	}{
		{"", No},
		{"y", Yes},
		{" Y ", Yes},
		{"yes", No},
		{"n", No},
	}
	for _, tt := range tests {
		t.Run(tt.response, func(t *testing.T) {
			assert.Equal(t, tt.expected, pick(tt.response, []string{No, Yes}))
		})
	}
	assert.Equal(t, "free text", pick("free text", nil))
}
