package interview

import (
	"time"

	"github.com/leandroquiroga/interview-platform-ai/internal/entity"
)

// AssembleInterview builds the record persisted for a successful generation.
// It is pure: the cover image and the clock are supplied by the caller.
func AssembleInterview(questions []entity.GeneratedQuestion, req *entity.InterviewRequest, coverImage string, now time.Time) *entity.Interview {
	return &entity.Interview{
		Role:              req.Role,
		Level:             req.Level,
		Techstack:         entity.SplitTechstack(req.Techstack),
		Type:              string(req.Type),
		Questions:         questions,
		UserID:            req.UserID,
		Finalized:         true,
		CoverImage:        coverImage,
		CreatedAt:         now.UTC(),
		HasAnswerExamples: req.Mode.HasAnswers(),
	}
}
