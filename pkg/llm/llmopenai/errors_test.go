package llmopenai_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicksend/quicksend/pkg/llm/llmopenai"
)

func TestParseOpenAIError(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		wantCode string
	}{
		{"unauthorized", "401 Unauthorized", "OPENAI_API_UNAUTHORIZED"},
		{"bad key", "Incorrect API key provided", "OPENAI_API_UNAUTHORIZED"},
		{"rate limit", "429 rate_limit_exceeded", "OPENAI_API_RATE_LIMIT"},
		{"quota", "You exceeded your current quota", "OPENAI_API_QUOTA_EXCEEDED"},
		{"model missing", "The model `gpt-5o` was not found", "OPENAI_MODEL_NOT_FOUND"},
		{"generic", "connection reset by peer", "OPENAI_API_REQUEST_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := llmopenai.ParseOpenAIError(errors.New(tt.msg))
			require.NotNil(t, parsed)
			assert.Equal(t, tt.wantCode, parsed.Code)
		})
	}
}

func TestParseOpenAIError_Nil(t *testing.T) {
	assert.Nil(t, llmopenai.ParseOpenAIError(nil))
}

func TestParseOpenAIError_PassesThroughClassified(t *testing.T) {
	already := llmopenai.ParseOpenAIError(errors.New("rate limit"))
	again := llmopenai.ParseOpenAIError(already)
	assert.Equal(t, already.Code, again.Code)
}

func TestChat_Validation(t *testing.T) {
	provider := llmopenai.NewOpenAIProvider("sk-test")
	assert.True(t, provider.HasAPIKey())

	_, err := provider.Chat(t.Context(), nil)
	parsed := llmopenai.ParseOpenAIError(err)
	require.NotNil(t, parsed)
	assert.Equal(t, "OPENAI_EMPTY_MESSAGES", parsed.Code)
}
