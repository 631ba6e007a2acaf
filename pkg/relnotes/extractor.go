// Package relnotes turns a pasted raw changelog into categorized
// user-facing highlights (via a hosted chat-completion model) and renders
// them into a fixed release-notes email.
package relnotes

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/quicksend/quicksend/pkg/config"
	"github.com/quicksend/quicksend/pkg/llm"
	"github.com/quicksend/quicksend/pkg/logx"
)

// Service owns the extraction pipeline. Stateless; one model call per
// request, no retry or repair of malformed model output.
type Service struct {
	model     llm.ChatModel
	cfg       config.OpenAIConfig
	bannerURL string
}

// NewService creates a new release-notes service. bannerURL is the
// default banner used when a request carries no override.
func NewService(model llm.ChatModel, cfg config.OpenAIConfig, bannerURL string) *Service {
	return &Service{
		model:     model,
		cfg:       cfg,
		bannerURL: bannerURL,
	}
}

// Generate extracts highlights from the raw changelog and renders the
// email. A transport failure and a malformed model payload surface as
// distinct error codes; neither produces any HTML.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	raw := strings.TrimSpace(req.RawNotes)
	if raw == "" {
		return nil, notesErrors.New(ErrMissingRawNotes)
	}

	if s.cfg.APIKey == "" {
		return nil, notesErrors.New(ErrMissingAPIKey)
	}

	messages := []llm.Message{
		llm.NewSystemMessage(systemPrompt),
		llm.NewUserMessage(userPromptPrefix + raw),
	}

	resp, err := s.model.Chat(ctx, messages,
		llm.WithModel(s.cfg.Model),
		llm.WithTemperature(s.cfg.Temperature),
		llm.WithJSONResponseFormat(),
	)
	if err != nil {
		logx.WithError(err).Error("release notes extraction failed")
		return nil, notesErrors.NewWithCause(ErrExtractionFailed, err).
			WithDetail("detail", err.Error())
	}

	content := resp.Content()
	if content == "" {
		return nil, notesErrors.New(ErrEmptyCompletion)
	}

	notes, err := parseNotes(content)
	if err != nil {
		return nil, notesErrors.NewWithCause(ErrBadPayload, err)
	}

	banner := req.BannerURL
	if banner == "" {
		banner = s.bannerURL
	}

	html, err := RenderEmail(notes, banner)
	if err != nil {
		return nil, notesErrors.NewWithCause(ErrRenderFailed, err)
	}

	logx.WithFields(logx.Fields{
		"notes":  len(notes),
		"tokens": resp.Usage.TotalTokens,
	}).Info("release notes generated")

	return &GenerateResponse{
		Notes: notes,
		HTML:  html,
	}, nil
}

// parseNotes is the schema boundary for model output: parse-or-reject,
// never repair. Duplicate platform entries are preserved; emoji and
// label are always overwritten from the platform.
func parseNotes(content string) ([]ReleaseNote, error) {
	var payload struct {
		Notes *[]ReleaseNote `json:"notes"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("payload is not valid JSON: %w", err)
	}
	if payload.Notes == nil {
		return nil, fmt.Errorf("payload has no notes field")
	}

	notes := *payload.Notes
	for i := range notes {
		if !notes[i].Platform.Valid() {
			return nil, fmt.Errorf("unknown platform %q at index %d", notes[i].Platform, i)
		}
		notes[i].Normalize()
	}
	return notes, nil
}
