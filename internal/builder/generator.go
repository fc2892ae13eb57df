package builder

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/leandroquiroga/interview-platform-ai/internal/config"
	"github.com/leandroquiroga/interview-platform-ai/internal/integration/llm"
	"github.com/leandroquiroga/interview-platform-ai/internal/usecase/interview"
)

// setupGenerator picks the generation backend named by the configuration
func setupGenerator(ctx context.Context, cfg *config.Config, logger *zap.Logger) (interview.Generator, error) {
	var (
		gen interview.Generator
		err error
	)

	switch provider := cfg.LLMProvider(); provider {
	case config.ProviderMock:
		gen = llm.NewMockConnector(logger)
	case config.ProviderHTTP:
		gen = llm.NewConnector(cfg.LLMConnectorCfg, logger)
	case config.ProviderGemini:
		gen, err = llm.NewGeminiClient(ctx, cfg.GeminiCfg)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", provider)
	}

	logger.Info("Generation backend selected", zap.String("generator", gen.Name()))

	return gen, nil
}
