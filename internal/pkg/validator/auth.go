package validator

import (
	"strings"

	"github.com/leandroquiroga/interview-platform-ai/internal/entity"
)

func (v *Validator) ValidateSignUp(req *entity.SignUpRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	return v.validateStruct(req)
}

func (v *Validator) ValidateSignIn(req *entity.SignInRequest) error {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	return v.validateStruct(req)
}
