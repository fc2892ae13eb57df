package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/leandroquiroga/interview-platform-ai/internal/entity"
)

// UserRepository persists accounts
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	RevokeSessions(ctx context.Context, id string, at time.Time) error
}

var _ UserRepository = &UserPostgres{}

type UserPostgres struct {
	db DBTX
}

func NewUserPostgres(db DBTX) *UserPostgres {
	return &UserPostgres{db: db}
}

// Create returns entity.ErrUserExists when the email is taken
func (r *UserPostgres) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	id, _, err := ensureID(user.ID)
	if err != nil {
		return nil, err
	}

	createdAt := user.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO users (id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userColumns,
		id, user.Name, strings.ToLower(user.Email), user.PasswordHash, createdAt,
	)

	created, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, entity.ErrUserExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return created, nil
}

func (r *UserPostgres) GetByID(ctx context.Context, id string) (*entity.User, error) {
	pgID, err := toUUID(id)
	if err != nil {
		return nil, entity.ErrUserNotFound
	}

	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, pgID)
}

func (r *UserPostgres) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email)
}

// RevokeSessions invalidates every session issued to id up to at
func (r *UserPostgres) RevokeSessions(ctx context.Context, id string, at time.Time) error {
	pgID, err := toUUID(id)
	if err != nil {
		return entity.ErrUserNotFound
	}

	tag, err := r.db.Exec(ctx, `UPDATE users SET sessions_revoked_at = $2 WHERE id = $1`, pgID, at)
	if err != nil {
		return fmt.Errorf("revoke sessions: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrUserNotFound
	}

	return nil
}

func (r *UserPostgres) getOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return user, nil
}
