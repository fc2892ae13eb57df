package formatter

import (
	"bytes"
	"fmt"

	"github.com/leandroquiroga/interview-platform-ai/internal/entity"
)

const (
	markdownContentType   = "text/markdown; charset=utf-8"
	markdownFileExtension = ".md"
)

type MarkdownFormatter struct{}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

func (mf *MarkdownFormatter) Format(iv *entity.Interview) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n\n", title(iv))
	for _, line := range details(iv) {
		fmt.Fprintf(&buf, "- %s\n", line)
	}

	buf.WriteString("\n## Questions\n\n")
	for i, q := range iv.Questions {
		fmt.Fprintf(&buf, "%d. %s\n", i+1, q.Question)
		if q.Answer != nil {
			fmt.Fprintf(&buf, "\n   > %s\n\n", *q.Answer)
		}
	}

	return buf.Bytes(), nil
}

func (mf *MarkdownFormatter) ContentType() string {
	return markdownContentType
}

func (mf *MarkdownFormatter) FileExtension() string {
	return markdownFileExtension
}
