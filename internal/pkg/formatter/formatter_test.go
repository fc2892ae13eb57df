package formatter_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leandroquiroga/interview-platform-ai/internal/entity"
	"github.com/leandroquiroga/interview-platform-ai/internal/pkg/formatter"
)

func sampleInterview() *entity.Interview {
	return &entity.Interview{
		ID:        "iv-1",
		Role:      "Frontend Developer",
		Level:     "Junior",
		Type:      "technical",
		Techstack: []string{"React", "CSS"},
		Questions: []entity.GeneratedQuestion{
			entity.NewQuestion("What is the virtual DOM?"),
			entity.NewQuestionWithAnswer("What is specificity?", "How the browser ranks selectors."),
		},
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestFactory_Create(t *testing.T) {
	t.Parallel()

	f := formatter.NewFactory()

	for format, ext := range map[entity.ResultFormat]string{
		entity.FormatMarkdown: ".md",
		entity.FormatDOCX:     ".docx",
		entity.FormatPDF:      ".pdf",
	} {
		fm, err := f.Create(format)
		require.NoError(t, err)
		assert.Equal(t, ext, fm.FileExtension())
	}

	_, err := f.Create("html")
	assert.ErrorIs(t, err, entity.ErrInvalidParameter)
}

func TestMarkdownFormatter(t *testing.T) {
	t.Parallel()

	out, err := formatter.NewMarkdownFormatter().Format(sampleInterview())
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "# Technical interview: Frontend Developer")
	assert.Contains(t, text, "- Tech stack: React, CSS")
	assert.Contains(t, text, "1. What is the virtual DOM?")
	assert.Contains(t, text, "2. What is specificity?")
	assert.Contains(t, text, "> How the browser ranks selectors.")
}

func TestPDFFormatter(t *testing.T) {
	t.Parallel()

	out, err := formatter.NewPDFFormatter().Format(sampleInterview())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestFilename(t *testing.T) {
	t.Parallel()

	name := formatter.Filename(sampleInterview(), formatter.NewPDFFormatter())
	assert.Equal(t, "frontend-developer-junior-technical.pdf", name)

	assert.Equal(t, "interview.md", formatter.Filename(&entity.Interview{}, formatter.NewMarkdownFormatter()))
}
