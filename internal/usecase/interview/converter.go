package interview

import "github.com/leandroquiroga/interview-platform-ai/internal/entity"

func toSummary(iv *entity.Interview) *entity.InterviewSummary {
	return &entity.InterviewSummary{
		ID:         iv.ID,
		Role:       iv.Role,
		Level:      iv.Level,
		Type:       iv.Type,
		Techstack:  iv.Techstack,
		CoverImage: iv.CoverImage,
		CreatedAt:  entity.FormatTimestamp(iv.CreatedAt),
	}
}

func toDetail(iv *entity.Interview) *entity.InterviewDetailResponse {
	return &entity.InterviewDetailResponse{
		ID:                iv.ID,
		Role:              iv.Role,
		Level:             iv.Level,
		Type:              iv.Type,
		Techstack:         iv.Techstack,
		Questions:         iv.Questions,
		Finalized:         iv.Finalized,
		HasAnswerExamples: iv.HasAnswerExamples,
		CoverImage:        iv.CoverImage,
		CreatedAt:         entity.FormatTimestamp(iv.CreatedAt),
	}
}

// toQuestionSetDTO reports the role group the set is filed under, not the submitted free text
func toQuestionSetDTO(role entity.RoleKey, iv *entity.Interview) *entity.QuestionSetDTO {
	return &entity.QuestionSetDTO{
		InterviewID:  iv.ID,
		Role:         string(role),
		Seniority:    iv.Level,
		Technologies: iv.Techstack,
		QuestionType: iv.Type,
		Questions:    iv.Questions,
		CreatedAt:    entity.FormatTimestamp(iv.CreatedAt),
	}
}
