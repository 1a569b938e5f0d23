package llm

import (
	"context"
	"strings"
	"time"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	DefaultModel     = "gpt-4.1"
	DefaultMaxTokens = 1800
	DefaultTimeout   = 60 * time.Second
)

// OpenAIConfig holds the knobs for the OpenAI-backed generator.
type OpenAIConfig struct {
	APIKey    string
	Model     string
	BaseURL   string
	MaxTokens int
	Timeout   time.Duration
}

type chatModel interface {
	GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error)
}

// OpenAIGenerator calls the chat completions API through langchaingo.
type OpenAIGenerator struct {
	model     chatModel
	maxTokens int
	timeout   time.Duration
}

func NewOpenAIGenerator(cfg OpenAIConfig) (*OpenAIGenerator, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNotConfigured
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	opts := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithModel(model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}

	client, err := openai.New(opts...)
	if err != nil {
		return nil, GenerationError{Provider: "openai", Err: err}
	}
	return newOpenAIGenerator(client, cfg), nil
}

func newOpenAIGenerator(m chatModel, cfg OpenAIConfig) *OpenAIGenerator {
	g := &OpenAIGenerator{model: m, maxTokens: cfg.MaxTokens, timeout: cfg.Timeout}
	if g.maxTokens <= 0 {
		g.maxTokens = DefaultMaxTokens
	}
	if g.timeout <= 0 {
		g.timeout = DefaultTimeout
	}
	return g
}

func (g *OpenAIGenerator) GenerateItinerary(ctx context.Context, req models.TripRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, SystemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, BuildPrompt(req)),
	}
	resp, err := g.model.GenerateContent(ctx, messages,
		llms.WithMaxTokens(g.maxTokens),
		llms.WithTemperature(0.4),
		llms.WithJSONMode(),
	)
	if err != nil {
		return "", GenerationError{Provider: "openai", Err: err}
	}
	if resp == nil || len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Content) == "" {
		return "", domain.MalformedDraftError{Msg: "model returned an empty response"}
	}
	return resp.Choices[0].Content, nil
}
