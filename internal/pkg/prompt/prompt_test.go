package prompt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leandroquiroga/interview-platform-ai/internal/entity"
	"github.com/leandroquiroga/interview-platform-ai/internal/pkg/prompt"
)

func baseRequest() *entity.InterviewRequest {
	return &entity.InterviewRequest{
		Role:          "Frontend Developer",
		Level:         "junior",
		Techstack:     "React, CSS",
		Type:          entity.InterviewTypeTechnical,
		Amount:        3,
		UserID:        "u1",
		Language:      "English",
		QuestionStyle: entity.QuestionStyleConcise,
		Mode:          entity.ModeQuestionsOnly,
	}
}

func TestBuild_Deterministic(t *testing.T) {
	t.Parallel()

	first := prompt.Build(baseRequest())
	second := prompt.Build(baseRequest())
	assert.Equal(t, first, second)
}

func TestBuild_ClauseOrder(t *testing.T) {
	t.Parallel()

	lines := strings.Split(prompt.Build(baseRequest()), "\n")
	require.Len(t, lines, 7)

	assert.Contains(t, lines[0], "Prepare 3 questions")
	assert.Contains(t, lines[0], "English")
	assert.Contains(t, lines[1], "Frontend Developer")
	assert.Contains(t, lines[2], "junior")
	assert.Contains(t, lines[3], "React, CSS")
	assert.Contains(t, lines[4], "technical")
	assert.Contains(t, lines[5], "voice assistant")
	assert.Contains(t, lines[6], "raw JSON array of strings")
}

func TestBuild_OmitsEmptyTechstack(t *testing.T) {
	t.Parallel()

	req := baseRequest()
	req.Techstack = " , "

	out := prompt.Build(req)
	assert.NotContains(t, out, "tech stack")
	assert.Len(t, strings.Split(out, "\n"), 6)
}

func TestBuild_OmitsEmptyRoleAndLevel(t *testing.T) {
	t.Parallel()

	req := baseRequest()
	req.Role = ""
	req.Level = "  "

	out := prompt.Build(req)
	assert.NotContains(t, out, "job role")
	assert.NotContains(t, out, "experience level")
}

func TestBuild_StyleOnlyChangesStyleClause(t *testing.T) {
	t.Parallel()

	concise := strings.Split(prompt.Build(baseRequest()), "\n")

	req := baseRequest()
	req.QuestionStyle = entity.QuestionStyleDetailed
	detailed := strings.Split(prompt.Build(req), "\n")

	require.Len(t, detailed, len(concise))
	for i := range concise {
		if i == 5 {
			assert.NotEqual(t, concise[i], detailed[i])
			continue
		}
		assert.Equal(t, concise[i], detailed[i])
	}
	assert.Contains(t, detailed[5], "context")
}

func TestBuild_ConciseForbidsSpeechBreakingCharacters(t *testing.T) {
	t.Parallel()

	out := prompt.Build(baseRequest())
	assert.Contains(t, out, `"/"`)
	assert.Contains(t, out, `"*"`)
	assert.Contains(t, out, "markdown fences")
}

func TestBuild_QuestionsWithAnswersFormat(t *testing.T) {
	t.Parallel()

	req := baseRequest()
	req.Mode = entity.ModeQuestionsWithAnswers
	req.Language = "Español"

	out := prompt.Build(req)
	assert.Contains(t, out, "with a model answer for each")
	assert.Contains(t, out, "Español")
	assert.Contains(t, out, `"question" and "answer"`)
	assert.NotContains(t, out, "array of strings")
}

func TestBuild_DefaultLanguage(t *testing.T) {
	t.Parallel()

	req := baseRequest()
	req.Language = ""

	assert.Contains(t, prompt.Build(req), "written in English")
}

func TestBuild_FocusByType(t *testing.T) {
	t.Parallel()

	tests := map[entity.InterviewType]string{
		entity.InterviewTypeTechnical:  "technical questions",
		entity.InterviewTypeBehavioral: "behavioral questions",
		entity.InterviewTypeMixed:      "balance technical and behavioral",
	}

	for typ, want := range tests {
		req := baseRequest()
		req.Type = typ
		assert.Contains(t, prompt.Build(req), want, string(typ))
	}
}
