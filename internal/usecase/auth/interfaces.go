package auth

import "github.com/leandroquiroga/interview-platform-ai/internal/pkg/session"

type SessionCodec interface {
	Issue(userID string) (string, *session.Claims, error)
	Verify(value string) (*session.Claims, error)
}
