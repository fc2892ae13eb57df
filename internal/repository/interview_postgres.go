package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/leandroquiroga/interview-platform-ai/internal/entity"
)

// InterviewRepository persists generated interviews
type InterviewRepository interface {
	Create(ctx context.Context, iv *entity.Interview) (*entity.Interview, error)
	Get(ctx context.Context, id string) (*entity.Interview, error)
	ListByUser(ctx context.Context, userID string, skip, limit int) ([]*entity.Interview, error)
}

var _ InterviewRepository = &InterviewPostgres{}

type InterviewPostgres struct {
	db DBTX
}

func NewInterviewPostgres(db DBTX) *InterviewPostgres {
	return &InterviewPostgres{db: db}
}

// Create stores iv, assigning a fresh id when iv.ID is empty
func (r *InterviewPostgres) Create(ctx context.Context, iv *entity.Interview) (*entity.Interview, error) {
	id, idStr, err := ensureID(iv.ID)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO interviews (`+interviewColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+interviewColumns,
		id, iv.UserID, iv.Role, iv.Level, iv.Type, nonNil(iv.Techstack), iv.Questions,
		iv.Finalized, iv.CoverImage, iv.HasAnswerExamples, iv.CreatedAt,
	)

	created, err := scanInterview(row)
	if err != nil {
		return nil, fmt.Errorf("create interview %s: %w", idStr, err)
	}

	return created, nil
}

// Get returns entity.ErrInterviewNotFound for unknown and non-UUID ids
func (r *InterviewPostgres) Get(ctx context.Context, id string) (*entity.Interview, error) {
	pgID, err := toUUID(id)
	if err != nil {
		return nil, entity.ErrInterviewNotFound
	}

	row := r.db.QueryRow(ctx, `SELECT `+interviewColumns+` FROM interviews WHERE id = $1`, pgID)

	iv, err := scanInterview(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrInterviewNotFound
		}
		return nil, fmt.Errorf("get interview: %w", err)
	}

	return iv, nil
}

// ListByUser returns the newest interviews of userID first
func (r *InterviewPostgres) ListByUser(ctx context.Context, userID string, skip, limit int) ([]*entity.Interview, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+interviewColumns+`
		FROM interviews
		WHERE user_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`,
		userID, limit, skip,
	)
	if err != nil {
		return nil, fmt.Errorf("list interviews: %w", err)
	}

	result, err := collectInterviews(rows)
	if err != nil {
		return nil, fmt.Errorf("scan interviews: %w", err)
	}

	return result, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
