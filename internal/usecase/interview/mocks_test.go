package interview_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/leandroquiroga/interview-platform-ai/internal/entity"
)

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Name() string {
	return "stub"
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type mockInterviewRepo struct {
	mock.Mock
}

// Create echoes iv back unless an error is configured
func (m *mockInterviewRepo) Create(ctx context.Context, iv *entity.Interview) (*entity.Interview, error) {
	args := m.Called(ctx, iv)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	return iv, nil
}

func (m *mockInterviewRepo) Get(ctx context.Context, id string) (*entity.Interview, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Interview), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInterviewRepo) ListByUser(ctx context.Context, userID string, skip, limit int) ([]*entity.Interview, error) {
	args := m.Called(ctx, userID, skip, limit)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Interview), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockQuestionSetRepo struct {
	mock.Mock
}

func (m *mockQuestionSetRepo) Create(ctx context.Context, role entity.RoleKey, iv *entity.Interview) (*entity.Interview, error) {
	args := m.Called(ctx, role, iv)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	return iv, nil
}

func (m *mockQuestionSetRepo) ListByRole(ctx context.Context, role entity.RoleKey, userID string) ([]*entity.Interview, error) {
	args := m.Called(ctx, role, userID)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Interview), args.Error(1)
	}
	return nil, args.Error(1)
}
