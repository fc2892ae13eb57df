package formatter

import (
	"bytes"
	"fmt"

	"github.com/unidoc/unioffice/document"

	"github.com/leandroquiroga/interview-platform-ai/internal/entity"
)

const (
	docxContentType   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	docxFileExtension = ".docx"
)

type DOCXFormatter struct{}

func NewDOCXFormatter() *DOCXFormatter {
	return &DOCXFormatter{}
}

func (df *DOCXFormatter) Format(iv *entity.Interview) ([]byte, error) {
	doc := document.New()
	defer doc.Close()

	titlePar := doc.AddParagraph()
	titlePar.SetStyle("Heading1")
	titlePar.AddRun().AddText(title(iv))

	for _, line := range details(iv) {
		doc.AddParagraph().AddRun().AddText(line)
	}

	doc.AddParagraph()

	for i, q := range iv.Questions {
		questionRun := doc.AddParagraph().AddRun()
		questionRun.Properties().SetBold(true)
		questionRun.AddText(fmt.Sprintf("%d. %s", i+1, q.Question))

		if q.Answer != nil {
			answerRun := doc.AddParagraph().AddRun()
			answerRun.Properties().SetItalic(true)
			answerRun.AddText(*q.Answer)
		}
	}

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (df *DOCXFormatter) ContentType() string {
	return docxContentType
}

func (df *DOCXFormatter) FileExtension() string {
	return docxFileExtension
}
