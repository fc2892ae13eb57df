package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// GenerationMode selects the shape the model is asked to produce
type GenerationMode string

const (
	// ModeQuestionsOnly produces an array of plain question strings
	ModeQuestionsOnly GenerationMode = "questions"
	// ModeQuestionsWithAnswers produces an array of {question, answer} pairs
	ModeQuestionsWithAnswers GenerationMode = "questions_with_answers"
)

func (m GenerationMode) HasAnswers() bool {
	return m == ModeQuestionsWithAnswers
}

type InterviewType string

const (
	InterviewTypeTechnical  InterviewType = "technical"
	InterviewTypeBehavioral InterviewType = "behavioral"
	InterviewTypeMixed      InterviewType = "mixed"
)

// ParseInterviewType accepts the canonical names plus the spellings the
// frontend is known to send ("Mix", "behavioural").
func ParseInterviewType(s string) (InterviewType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "technical":
		return InterviewTypeTechnical, nil
	case "behavioral", "behavioural":
		return InterviewTypeBehavioral, nil
	case "mixed", "mix":
		return InterviewTypeMixed, nil
	default:
		return "", fmt.Errorf("%w: unknown interview type %q", ErrInvalidParameter, s)
	}
}

type QuestionStyle string

const (
	QuestionStyleConcise  QuestionStyle = "concise"
	QuestionStyleDetailed QuestionStyle = "detailed"
)

// ParseQuestionStyle defaults to concise for an empty value
func ParseQuestionStyle(s string) (QuestionStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "concise":
		return QuestionStyleConcise, nil
	case "detailed":
		return QuestionStyleDetailed, nil
	default:
		return "", fmt.Errorf("%w: unknown question style %q", ErrInvalidParameter, s)
	}
}

const DefaultLanguage = "English"

// InterviewRequest is the validated, ephemeral input of the generation pipeline
type InterviewRequest struct {
	Role          string
	Level         string
	Techstack     string // comma-separated, as submitted
	Type          InterviewType
	Amount        int
	UserID        string
	Language      string
	QuestionStyle QuestionStyle
	Mode          GenerationMode
}

// SplitTechstack turns "React, CSS,,Go " into ["React" "CSS" "Go"].
func SplitTechstack(techstack string) []string {
	parts := strings.Split(techstack, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// GeneratedQuestion is either a bare question (Answer == nil) or a
// question/answer pair. It is stored in the same JSON shape the model
// was asked to produce: a string, or an object with two keys.
type GeneratedQuestion struct {
	Question string
	Answer   *string
}

func NewQuestion(text string) GeneratedQuestion {
	return GeneratedQuestion{Question: text}
}

func NewQuestionWithAnswer(question, answer string) GeneratedQuestion {
	return GeneratedQuestion{Question: question, Answer: &answer}
}

type questionAnswerPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (q GeneratedQuestion) MarshalJSON() ([]byte, error) {
	if q.Answer == nil {
		return json.Marshal(q.Question)
	}
	return json.Marshal(questionAnswerPair{Question: q.Question, Answer: *q.Answer})
}

func (q *GeneratedQuestion) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*q = NewQuestion(text)
		return nil
	}

	var pair questionAnswerPair
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	*q = NewQuestionWithAnswer(pair.Question, pair.Answer)
	return nil
}

// Interview is the persisted interview record
type Interview struct {
	ID                string              `json:"id"`
	Role              string              `json:"role"`
	Level             string              `json:"level"`
	Techstack         []string            `json:"techstack"`
	Type              string              `json:"type"`
	Questions         []GeneratedQuestion `json:"questions"`
	UserID            string              `json:"userId"`
	Finalized         bool                `json:"finalized"`
	CoverImage        string              `json:"coverImage"`
	CreatedAt         time.Time           `json:"createdAt"`
	HasAnswerExamples bool                `json:"hasAnswerExamples"`
}
