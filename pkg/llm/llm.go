// Package llm defines a thin provider-agnostic chat-completion abstraction.
// Providers live in subpackages and adapt their SDK to this interface.
package llm

import "context"

// ChatModel is implemented by chat-completion providers.
type ChatModel interface {
	Chat(ctx context.Context, messages []Message, opts ...Option) (Response, error)
}

// ChatOptions holds per-call model parameters.
type ChatOptions struct {
	Model          string
	Temperature    float32
	MaxTokens      int
	ResponseFormat *ResponseFormat
}

// Option is a functional option for a chat call.
type Option func(*ChatOptions)

// DefaultOptions returns the default chat options.
func DefaultOptions() *ChatOptions {
	return &ChatOptions{}
}

// WithModel sets the model identifier.
func WithModel(model string) Option {
	return func(o *ChatOptions) {
		o.Model = model
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(temperature float32) Option {
	return func(o *ChatOptions) {
		o.Temperature = temperature
	}
}

// WithMaxTokens caps the completion length.
func WithMaxTokens(maxTokens int) Option {
	return func(o *ChatOptions) {
		o.MaxTokens = maxTokens
	}
}

// WithResponseFormat specifies the output format
func WithResponseFormat(format *ResponseFormat) Option {
	return func(o *ChatOptions) {
		o.ResponseFormat = format
	}
}

// WithJSONResponseFormat sets the response format to JSON object
func WithJSONResponseFormat() Option {
	return func(o *ChatOptions) {
		o.ResponseFormat = &ResponseFormat{
			Type: JSONObject,
		}
	}
}
