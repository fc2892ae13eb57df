package interview

import (
	"context"

	"github.com/leandroquiroga/interview-platform-ai/internal/entity"
	"github.com/leandroquiroga/interview-platform-ai/internal/pkg/formatter"
)

// Generator is a single blocking round-trip to a text-generation model
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

type FormatterFactory interface {
	Create(format entity.ResultFormat) (formatter.Formatter, error)
}
