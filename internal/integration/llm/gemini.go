package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/leandroquiroga/interview-platform-ai/internal/config"
)

// GeminiClient calls the Gemini API through the official genai SDK
type GeminiClient struct {
	cli     *genai.Client
	model   string
	timeout time.Duration
	genCfg  *genai.GenerateContentConfig
}

type GeminiOption func(*genai.ClientConfig)

// WithBaseURL points the client at another API host
func WithBaseURL(url string) GeminiOption {
	return func(c *genai.ClientConfig) {
		c.HTTPOptions.BaseURL = url
	}
}

func NewGeminiClient(ctx context.Context, cfg config.GeminiConfig, opts ...GeminiOption) (*GeminiClient, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	for _, opt := range opts {
		opt(clientCfg)
	}

	cli, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	genCfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(cfg.Temperature),
	}
	if cfg.MaxOutputTokens > 0 {
		genCfg.MaxOutputTokens = cfg.MaxOutputTokens
	}

	return &GeminiClient{
		cli:     cli,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		genCfg:  genCfg,
	}, nil
}

func (g *GeminiClient) Name() string {
	return "gemini:" + g.model
}

// Generate sends prompt as a single user turn and returns the text of the first candidate
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Role: "user", Parts: []*genai.Part{{Text: prompt}}}},
		g.genCfg,
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := candidateText(resp)
	if text == "" {
		return "", ErrEmptyCompletion
	}

	ctxzap.Debug(ctx, "gemini answered",
		zap.String("model", g.model),
		zap.Duration("duration", time.Since(start)),
		zap.Int("result_length", len(text)),
	)

	return text, nil
}

func candidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	c := resp.Candidates[0]
	if c == nil || c.Content == nil {
		return ""
	}

	var b strings.Builder
	for _, p := range c.Content.Parts {
		if p != nil && !p.Thought {
			b.WriteString(p.Text)
		}
	}
	return b.String()
}
