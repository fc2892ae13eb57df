package llm

import (
	"context"
	"errors"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/leandroquiroga/interview-platform-ai/internal/config"
	"github.com/leandroquiroga/interview-platform-ai/internal/integration/common"
	pkghttp "github.com/leandroquiroga/interview-platform-ai/pkg/http"
)

var ErrEmptyCompletion = errors.New("generation returned no text")

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// Connector calls a generation gateway speaking {prompt} -> {text} over HTTP
type Connector struct {
	config    config.LLMConnectorConfig
	connector *pkghttp.Connector
}

func NewConnector(cfg config.LLMConnectorConfig, logger *zap.Logger) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
	}
}

func (c *Connector) Name() string {
	return "http"
}

// Generate performs a single round-trip; it never retries
func (c *Connector) Generate(ctx context.Context, prompt string) (string, error) {
	ctxzap.Debug(ctx, "generating via LLM gateway", zap.Int("prompt_length", len(prompt)))

	var resp generateResponse
	err := c.connector.DoRequest(ctx, http.MethodPost, c.config.GenerateEndpoint, &generateRequest{Prompt: prompt}, &resp)
	if err != nil {
		return "", err
	}

	if resp.Text == "" {
		return "", ErrEmptyCompletion
	}

	ctxzap.Debug(ctx, "LLM gateway answered", zap.Int("result_length", len(resp.Text)))

	return resp.Text, nil
}
