package formatter

import (
	"fmt"
	"strings"

	"github.com/leandroquiroga/interview-platform-ai/internal/entity"
)

// Formatter renders an interview into a downloadable document
type Formatter interface {
	Format(iv *entity.Interview) ([]byte, error)
	ContentType() string
	FileExtension() string
}

type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Create(format entity.ResultFormat) (Formatter, error) {
	switch format {
	case entity.FormatMarkdown:
		return NewMarkdownFormatter(), nil
	case entity.FormatDOCX:
		return NewDOCXFormatter(), nil
	case entity.FormatPDF:
		return NewPDFFormatter(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", entity.ErrInvalidParameter, format)
	}
}

func title(iv *entity.Interview) string {
	return fmt.Sprintf("%s interview: %s", capitalize(iv.Type), iv.Role)
}

// summary lines shared by every format
func details(iv *entity.Interview) []string {
	lines := []string{
		"Level: " + iv.Level,
		"Tech stack: " + strings.Join(iv.Techstack, ", "),
		"Created: " + iv.CreatedAt.UTC().Format("2006-01-02 15:04 MST"),
	}
	return lines
}

func capitalize(s string) string {
	if s == "" {
		return "Mock"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Filename builds a download name such as "frontend-junior-technical.pdf"
func Filename(iv *entity.Interview, f Formatter) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{iv.Role, iv.Level, iv.Type} {
		if p = strings.Join(strings.Fields(strings.ToLower(p)), "-"); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		parts = append(parts, "interview")
	}
	return strings.Join(parts, "-") + f.FileExtension()
}
