// Package prompt builds the instruction sent to the generation model.
//
// Build is pure: identical requests always produce identical prompts, and
// the output-format clause is worded the same way for every request so the
// question parser can rely on it.
package prompt

import (
	"fmt"
	"strings"

	"github.com/leandroquiroga/interview-platform-ai/internal/entity"
)

const (
	questionsOnlyFormat = `Return ONLY a raw JSON array of strings, one string per question, ` +
		`without code fences, markdown or any other text before or after it. ` +
		`Example: ["Question 1", "Question 2", "Question 3"]`

	questionsWithAnswersFormat = `Return ONLY a raw JSON array of objects, each object having exactly two string keys ` +
		`"question" and "answer", without code fences, markdown or any other text before or after it. ` +
		`Example: [{"question": "Question 1", "answer": "Answer 1"}]`

	detailedStyle = "Make every question detailed: give enough context about the scenario so the candidate " +
		"understands what is being evaluated."

	conciseStyle = "Keep every item short and direct, suitable for being read aloud by a voice assistant. " +
		`Do not use "/" or "*" characters, markdown fences or any other special characters that could break speech synthesis.`
)

// Build assembles the prompt clauses in a fixed order, skipping any
// clause whose value is empty.
func Build(req *entity.InterviewRequest) string {
	clauses := []string{
		header(req),
		optional("The job role is %s.", strings.TrimSpace(req.Role)),
		optional("The candidate experience level is %s.", strings.TrimSpace(req.Level)),
		optional("The tech stack used in the job is: %s.", strings.Join(entity.SplitTechstack(req.Techstack), ", ")),
		focus(req.Type),
		style(req.QuestionStyle),
		format(req.Mode),
	}

	var b strings.Builder
	for _, c := range clauses {
		if c == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(c)
	}

	return b.String()
}

func header(req *entity.InterviewRequest) string {
	language := strings.TrimSpace(req.Language)
	if language == "" {
		language = entity.DefaultLanguage
	}

	if req.Mode.HasAnswers() {
		return fmt.Sprintf("Prepare %d questions for a job interview, with a model answer for each, written in %s.",
			req.Amount, language)
	}
	return fmt.Sprintf("Prepare %d questions for a job interview, written in %s.", req.Amount, language)
}

func optional(tmpl, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf(tmpl, value)
}

func focus(t entity.InterviewType) string {
	switch t {
	case entity.InterviewTypeTechnical:
		return "The focus of the questions should lean towards technical questions."
	case entity.InterviewTypeBehavioral:
		return "The focus of the questions should lean towards behavioral questions."
	case entity.InterviewTypeMixed:
		return "The questions should balance technical and behavioral topics."
	default:
		return ""
	}
}

func style(s entity.QuestionStyle) string {
	if s == entity.QuestionStyleDetailed {
		return detailedStyle
	}
	return conciseStyle
}

func format(m entity.GenerationMode) string {
	if m.HasAnswers() {
		return questionsWithAnswersFormat
	}
	return questionsOnlyFormat
}
