package validator_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leandroquiroga/interview-platform-ai/internal/entity"
	"github.com/leandroquiroga/interview-platform-ai/internal/pkg/validator"
)

func decodeBody(t *testing.T, raw string) *entity.GenerateInterviewBody {
	t.Helper()
	var body entity.GenerateInterviewBody
	require.NoError(t, json.Unmarshal([]byte(raw), &body))
	return &body
}

func TestValidateGenerateInterview_Valid(t *testing.T) {
	t.Parallel()

	v := validator.New()
	body := decodeBody(t, `{"type":"Technical","role":"frontend","level":"junior","techstack":"React,CSS","amount":"3","userid":"u1"}`)

	req, err := v.ValidateGenerateInterview(body, entity.ModeQuestionsOnly)
	require.NoError(t, err)

	assert.Equal(t, entity.InterviewTypeTechnical, req.Type)
	assert.Equal(t, 3, req.Amount)
	assert.Equal(t, "React,CSS", req.Techstack)
	assert.Equal(t, "u1", req.UserID)
	assert.Equal(t, entity.DefaultLanguage, req.Language)
	assert.Equal(t, entity.QuestionStyleConcise, req.QuestionStyle)
	assert.Equal(t, entity.ModeQuestionsOnly, req.Mode)
}

func TestValidateGenerateInterview_NumericAmountAndOptionals(t *testing.T) {
	t.Parallel()

	v := validator.New()
	body := decodeBody(t, `{"type":"mix","role":"Backend","level":"senior","techstack":"Go","amount":5,"userid":"u1","language":"Español","questionStyle":"detailed"}`)

	req, err := v.ValidateGenerateInterview(body, entity.ModeQuestionsWithAnswers)
	require.NoError(t, err)

	assert.Equal(t, 5, req.Amount)
	assert.Equal(t, entity.InterviewTypeMixed, req.Type)
	assert.Equal(t, "Español", req.Language)
	assert.Equal(t, entity.QuestionStyleDetailed, req.QuestionStyle)
}

func TestValidateGenerateInterview_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		mode    entity.GenerationMode
		wantErr error
		field   string
	}{
		{"missing type", `{"role":"r","level":"l","techstack":"Go","amount":1,"userid":"u"}`, entity.ModeQuestionsOnly, entity.ErrMissingField, "type"},
		{"missing userid", `{"type":"technical","role":"r","level":"l","techstack":"Go","amount":1}`, entity.ModeQuestionsOnly, entity.ErrMissingField, "userid"},
		{"null techstack", `{"type":"technical","role":"r","level":"l","techstack":null,"amount":1,"userid":"u"}`, entity.ModeQuestionsOnly, entity.ErrMissingField, "techstack"},
		{"missing amount", `{"type":"technical","role":"r","level":"l","techstack":"Go","userid":"u"}`, entity.ModeQuestionsOnly, entity.ErrMissingField, "amount"},
		{"empty amount string", `{"type":"technical","role":"r","level":"l","techstack":"Go","amount":" ","userid":"u"}`, entity.ModeQuestionsOnly, entity.ErrMissingField, "amount"},
		{"blank techstack", `{"type":"technical","role":"r","level":"l","techstack":" , ","amount":1,"userid":"u"}`, entity.ModeQuestionsOnly, entity.ErrMissingField, "techstack"},
		{"array techstack", `{"type":"technical","role":"r","level":"l","techstack":["Go"],"amount":1,"userid":"u"}`, entity.ModeQuestionsOnly, entity.ErrInvalidFormat, "techstack"},
		{"zero amount", `{"type":"technical","role":"r","level":"l","techstack":"Go","amount":"0","userid":"u"}`, entity.ModeQuestionsOnly, entity.ErrInvalidParameter, "amount"},
		{"negative amount", `{"type":"technical","role":"r","level":"l","techstack":"Go","amount":-2,"userid":"u"}`, entity.ModeQuestionsOnly, entity.ErrInvalidParameter, "amount"},
		{"fractional amount", `{"type":"technical","role":"r","level":"l","techstack":"Go","amount":2.5,"userid":"u"}`, entity.ModeQuestionsOnly, entity.ErrInvalidFormat, "amount"},
		{"word amount", `{"type":"technical","role":"r","level":"l","techstack":"Go","amount":"three","userid":"u"}`, entity.ModeQuestionsOnly, entity.ErrInvalidFormat, "amount"},
		{"unknown type", `{"type":"trivia","role":"r","level":"l","techstack":"Go","amount":1,"userid":"u"}`, entity.ModeQuestionsOnly, entity.ErrInvalidParameter, "type"},
		{"unknown style", `{"type":"technical","role":"r","level":"l","techstack":"Go","amount":1,"userid":"u","questionStyle":"long"}`, entity.ModeQuestionsOnly, entity.ErrInvalidParameter, "questionStyle"},
		{"role outside set in answers mode", `{"type":"technical","role":"Frontend Developer","level":"l","techstack":"Go","amount":1,"userid":"u"}`, entity.ModeQuestionsWithAnswers, entity.ErrInvalidParameter, "role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := validator.New()
			req, err := v.ValidateGenerateInterview(decodeBody(t, tt.body), tt.mode)
			require.Error(t, err)
			assert.Nil(t, req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, entity.IsValidation(err))

			var fe *validator.FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.field, fe.Field)
		})
	}
}

func TestValidateGenerateInterview_AnyRoleInQuestionsMode(t *testing.T) {
	t.Parallel()

	v := validator.New()
	body := decodeBody(t, `{"type":"technical","role":"Data Scientist","level":"l","techstack":"Python","amount":2,"userid":"u"}`)

	_, err := v.ValidateGenerateInterview(body, entity.ModeQuestionsOnly)
	assert.NoError(t, err)
}

func TestValidateRoleQuery(t *testing.T) {
	t.Parallel()

	v := validator.New()

	key, err := v.ValidateRoleQuery("AI Engineer", "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAIEngineer, key)

	_, err = v.ValidateRoleQuery("Frontend Developer", "u1")
	assert.ErrorIs(t, err, entity.ErrInvalidParameter)
	assert.Contains(t, err.Error(), "frontend_developer")

	_, err = v.ValidateRoleQuery("frontend", "")
	assert.ErrorIs(t, err, entity.ErrMissingField)
}
