package validator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/leandroquiroga/interview-platform-ai/internal/entity"
)

// ValidateGenerateInterview checks the body of a generation request and
// converts it into a pipeline request for mode.
func (v *Validator) ValidateGenerateInterview(body *entity.GenerateInterviewBody, mode entity.GenerationMode) (*entity.InterviewRequest, error) {
	required := []struct {
		field string
		value string
	}{
		{"type", body.Type},
		{"role", body.Role},
		{"level", body.Level},
		{"userid", body.UserID},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, missing(r.field)
		}
	}
	if isAbsent(body.Techstack) {
		return nil, missing("techstack")
	}
	if isAbsent(body.Amount) {
		return nil, missing("amount")
	}

	techstack, err := parseTechstack(body.Techstack)
	if err != nil {
		return nil, err
	}

	amount, err := parseAmount(body.Amount)
	if err != nil {
		return nil, err
	}

	interviewType, err := entity.ParseInterviewType(body.Type)
	if err != nil {
		return nil, invalidParameter("type", "must be one of technical, behavioral, mixed")
	}

	style, err := entity.ParseQuestionStyle(body.QuestionStyle)
	if err != nil {
		return nil, invalidParameter("questionStyle", "must be concise or detailed")
	}

	if mode.HasAnswers() {
		if key := entity.NormalizeRole(body.Role); !key.IsValid() {
			return nil, invalidParameter("role", fmt.Sprintf("%q is not one of %s", key, strings.Join(entity.RoleKeyNames(), ", ")))
		}
	}

	language := strings.TrimSpace(body.Language)
	if language == "" {
		language = entity.DefaultLanguage
	}

	return &entity.InterviewRequest{
		Role:          strings.TrimSpace(body.Role),
		Level:         strings.TrimSpace(body.Level),
		Techstack:     techstack,
		Type:          interviewType,
		Amount:        amount,
		UserID:        strings.TrimSpace(body.UserID),
		Language:      language,
		QuestionStyle: style,
		Mode:          mode,
	}, nil
}

// ValidateRoleQuery normalizes role and checks it against the role set
func (v *Validator) ValidateRoleQuery(role, userID string) (entity.RoleKey, error) {
	if strings.TrimSpace(userID) == "" {
		return "", missing("userId")
	}
	if strings.TrimSpace(role) == "" {
		return "", missing("role")
	}

	key := entity.NormalizeRole(role)
	if !key.IsValid() {
		return "", invalidParameter("role", fmt.Sprintf("%q is not one of %s", key, strings.Join(entity.RoleKeyNames(), ", ")))
	}

	return key, nil
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// parseTechstack requires a JSON string with at least one non-empty entry
func parseTechstack(raw json.RawMessage) (string, error) {
	var techstack string
	if err := json.Unmarshal(raw, &techstack); err != nil {
		return "", invalidFormat("techstack", "must be a comma-separated string")
	}
	if len(entity.SplitTechstack(techstack)) == 0 {
		return "", missing("techstack")
	}
	return techstack, nil
}

// parseAmount accepts a JSON integer or a numeric string
func parseAmount(raw json.RawMessage) (int, error) {
	var text string
	switch trimmed := bytes.TrimSpace(raw); trimmed[0] {
	case '"':
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return 0, invalidFormat("amount", "must be a positive integer")
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return 0, missing("amount")
		}
	default:
		text = string(trimmed)
	}

	amount, err := strconv.Atoi(text)
	if err != nil {
		return 0, invalidFormat("amount", "must be a positive integer")
	}
	if amount <= 0 {
		return 0, invalidParameter("amount", "must be a positive integer")
	}

	return amount, nil
}
