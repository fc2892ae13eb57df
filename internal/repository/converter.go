package repository

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/leandroquiroga/interview-platform-ai/internal/entity"
)

const interviewColumns = `id, user_id, role, level, type, techstack, questions, finalized, cover_image, has_answer_examples, created_at`

const userColumns = `id, name, email, password_hash, sessions_revoked_at, created_at`

func toUUID(id string) (pgtype.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return pgtype.UUID{}, fmt.Errorf("parse id %q: %w", id, err)
	}
	return pgtype.UUID{Bytes: parsed, Valid: true}, nil
}

func fromUUID(id pgtype.UUID) string {
	return uuid.UUID(id.Bytes).String()
}

func ensureID(id string) (pgtype.UUID, string, error) {
	if id == "" {
		id = uuid.NewString()
	}
	pgID, err := toUUID(id)
	return pgID, id, err
}

func scanInterview(row pgx.Row) (*entity.Interview, error) {
	var (
		id        pgtype.UUID
		createdAt pgtype.Timestamptz
		iv        entity.Interview
	)

	err := row.Scan(
		&id,
		&iv.UserID,
		&iv.Role,
		&iv.Level,
		&iv.Type,
		&iv.Techstack,
		&iv.Questions,
		&iv.Finalized,
		&iv.CoverImage,
		&iv.HasAnswerExamples,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	iv.ID = fromUUID(id)
	iv.CreatedAt = createdAt.Time.UTC()
	if iv.Techstack == nil {
		iv.Techstack = []string{}
	}

	return &iv, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		id        pgtype.UUID
		revokedAt pgtype.Timestamptz
		createdAt pgtype.Timestamptz
		user      entity.User
	)

	err := row.Scan(&id, &user.Name, &user.Email, &user.PasswordHash, &revokedAt, &createdAt)
	if err != nil {
		return nil, err
	}

	user.ID = fromUUID(id)
	user.CreatedAt = createdAt.Time.UTC()
	if revokedAt.Valid {
		t := revokedAt.Time.UTC()
		user.SessionsRevokedAt = &t
	}

	return &user, nil
}

func collectInterviews(rows pgx.Rows) ([]*entity.Interview, error) {
	defer rows.Close()

	result := make([]*entity.Interview, 0)
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, iv)
	}

	return result, rows.Err()
}
