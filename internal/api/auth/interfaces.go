package auth

import (
	"context"
	"net/http"

	"github.com/leandroquiroga/interview-platform-ai/internal/entity"
)

type AuthUsecase interface {
	SignUp(ctx context.Context, req *entity.SignUpRequest) (*entity.User, error)
	SignIn(ctx context.Context, req *entity.SignInRequest) (*entity.SignInResult, error)
	SignOut(ctx context.Context, userID string) error
}

type CookieWriter interface {
	SetCookie(w http.ResponseWriter, value string)
	ClearCookie(w http.ResponseWriter)
}
