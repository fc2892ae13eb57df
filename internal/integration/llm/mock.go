package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

var (
	amountRe = regexp.MustCompile(`Prepare (\d+) questions`)
	roleRe   = regexp.MustCompile(`The job role is ([^\n]+)\.`)
)

// MockConnector answers without a model, honoring the amount and the
// element shape requested by the prompt
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Name() string {
	return "mock"
}

func (m *MockConnector) Generate(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating via LLM")

	amount := 3
	if match := amountRe.FindStringSubmatch(prompt); match != nil {
		if n, err := strconv.Atoi(match[1]); err == nil && n > 0 {
			amount = n
		}
	}

	role := "software engineer"
	if match := roleRe.FindStringSubmatch(prompt); match != nil {
		role = match[1]
	}

	withAnswers := strings.Contains(prompt, `"question" and "answer"`)

	items := make([]any, 0, amount)
	for i := 1; i <= amount; i++ {
		question := fmt.Sprintf("Mock question %d for the %s position: describe a recent challenge you solved.", i, role)
		if withAnswers {
			items = append(items, map[string]string{
				"question": question,
				"answer":   fmt.Sprintf("Mock answer %d: explain the context, the action taken and the measurable result.", i),
			})
			continue
		}
		items = append(items, question)
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return "", err
	}

	ctxzap.Info(ctx, "[MOCK] generated", zap.Int("count", amount), zap.Bool("with_answers", withAnswers))
	return string(raw), nil
}
