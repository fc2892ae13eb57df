package interview

import (
	"context"

	"github.com/leandroquiroga/interview-platform-ai/internal/entity"
)

type InterviewUsecase interface {
	Generate(ctx context.Context, body *entity.GenerateInterviewBody, mode entity.GenerationMode) (*entity.Interview, error)
	ListQuestionSets(ctx context.Context, role, userID string) ([]*entity.QuestionSetDTO, error)
	ListInterviews(ctx context.Context, req *entity.ListInterviewsRequest) (*entity.ListInterviewsResponse, error)
	GetInterview(ctx context.Context, id, userID string) (*entity.InterviewDetailResponse, error)
	ExportInterview(ctx context.Context, req *entity.ExportInterviewRequest) (*entity.ExportInterviewResponse, error)
}
