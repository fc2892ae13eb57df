package repository

import (
	"context"
	"fmt"

	"github.com/leandroquiroga/interview-platform-ai/internal/entity"
)

// QuestionSetRepository persists question-and-answer sets grouped by role
type QuestionSetRepository interface {
	Create(ctx context.Context, role entity.RoleKey, iv *entity.Interview) (*entity.Interview, error)
	ListByRole(ctx context.Context, role entity.RoleKey, userID string) ([]*entity.Interview, error)
}

var _ QuestionSetRepository = &QuestionSetPostgres{}

type QuestionSetPostgres struct {
	db DBTX
}

func NewQuestionSetPostgres(db DBTX) *QuestionSetPostgres {
	return &QuestionSetPostgres{db: db}
}

func (r *QuestionSetPostgres) Create(ctx context.Context, role entity.RoleKey, iv *entity.Interview) (*entity.Interview, error) {
	id, idStr, err := ensureID(iv.ID)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO interview_question_sets (role_key, `+interviewColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+interviewColumns,
		string(role), id, iv.UserID, iv.Role, iv.Level, iv.Type, nonNil(iv.Techstack), iv.Questions,
		iv.Finalized, iv.CoverImage, iv.HasAnswerExamples, iv.CreatedAt,
	)

	created, err := scanInterview(row)
	if err != nil {
		return nil, fmt.Errorf("create question set %s: %w", idStr, err)
	}

	return created, nil
}

// ListByRole returns the sets with answer examples stored for role and userID, newest first
func (r *QuestionSetPostgres) ListByRole(ctx context.Context, role entity.RoleKey, userID string) ([]*entity.Interview, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+interviewColumns+`
		FROM interview_question_sets
		WHERE role_key = $1 AND user_id = $2 AND has_answer_examples
		ORDER BY created_at DESC, id`,
		string(role), userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list question sets: %w", err)
	}

	result, err := collectInterviews(rows)
	if err != nil {
		return nil, fmt.Errorf("scan question sets: %w", err)
	}

	return result, nil
}
