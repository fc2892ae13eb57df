package entity

import (
	"encoding/json"
	"time"
)

type ResultFormat string

const (
	FormatMarkdown ResultFormat = "markdown"
	FormatDOCX     ResultFormat = "docx"
	FormatPDF      ResultFormat = "pdf"
)

func (f ResultFormat) IsValid() bool {
	switch f {
	case FormatMarkdown, FormatDOCX, FormatPDF:
		return true
	default:
		return false
	}
}

// GenerateInterviewBody is the raw JSON body of both generation endpoints.
// Amount and Techstack stay raw so that the validator can tell a
// missing field apart from a field of the wrong JSON type.
type GenerateInterviewBody struct {
	Type          string          `json:"type"`
	Role          string          `json:"role"`
	Level         string          `json:"level"`
	Techstack     json.RawMessage `json:"techstack"`
	Amount        json.RawMessage `json:"amount"`
	UserID        string          `json:"userid"`
	Language      string          `json:"language,omitempty"`
	QuestionStyle string          `json:"questionStyle,omitempty"`
}

type ListInterviewsRequest struct {
	UserID string
	Skip   int
	Limit  int
}

func (lr *ListInterviewsRequest) Normalize() {
	if lr.Limit <= 0 {
		lr.Limit = 10
	}
	if lr.Skip < 0 {
		lr.Skip = 0
	}

	lr.Limit = min(lr.Limit, 100)
}

type ListInterviewsResponse struct {
	Interviews []*InterviewSummary `json:"interviews"`
}

type InterviewSummary struct {
	ID         string   `json:"id"`
	Role       string   `json:"role"`
	Level      string   `json:"level"`
	Type       string   `json:"type"`
	Techstack  []string `json:"techstack"`
	CoverImage string   `json:"coverImage"`
	CreatedAt  string   `json:"createdAt"`
}

type InterviewDetailResponse struct {
	ID                string              `json:"id"`
	Role              string              `json:"role"`
	Level             string              `json:"level"`
	Type              string              `json:"type"`
	Techstack         []string            `json:"techstack"`
	Questions         []GeneratedQuestion `json:"questions"`
	Finalized         bool                `json:"finalized"`
	HasAnswerExamples bool                `json:"hasAnswerExamples"`
	CoverImage        string              `json:"coverImage"`
	CreatedAt         string              `json:"createdAt"`
}

// QuestionSetDTO is one entry of the role-scoped question query
type QuestionSetDTO struct {
	InterviewID  string              `json:"interviewId"`
	Role         string              `json:"role"`
	Seniority    string              `json:"seniority"`
	Technologies []string            `json:"technologies"`
	QuestionType string              `json:"questionType"`
	Questions    []GeneratedQuestion `json:"questions"`
	CreatedAt    string              `json:"createdAt"`
}

type ExportInterviewRequest struct {
	InterviewID string
	UserID      string
	Format      ResultFormat
}

type ExportInterviewResponse struct {
	Filename    string
	ContentType string
	Content     []byte
}

// FormatTimestamp renders t the way every DTO exposes timestamps
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
