package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leandroquiroga/interview-platform-ai/internal/entity"
	"github.com/leandroquiroga/interview-platform-ai/internal/pkg/validator"
)

func TestValidateSignUp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     entity.SignUpRequest
		wantErr error
		field   string
	}{
		{"valid", entity.SignUpRequest{Name: "Ada", Email: " Ada@Example.com ", Password: "secret1"}, nil, ""},
		{"short name", entity.SignUpRequest{Name: "Al", Email: "al@example.com", Password: "secret1"}, entity.ErrInvalidParameter, "name"},
		{"bad email", entity.SignUpRequest{Name: "Ada", Email: "not-an-email", Password: "secret1"}, entity.ErrInvalidFormat, "email"},
		{"short password", entity.SignUpRequest{Name: "Ada", Email: "ada@example.com", Password: "12345"}, entity.ErrInvalidParameter, "password"},
		{"missing email", entity.SignUpRequest{Name: "Ada", Password: "secret1"}, entity.ErrMissingField, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := tt.req
			err := validator.New().ValidateSignUp(&req)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, "ada@example.com", req.Email)
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
			var fe *validator.FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.field, fe.Field)
		})
	}
}

func TestValidateSignIn(t *testing.T) {
	t.Parallel()

	v := validator.New()

	req := entity.SignInRequest{Email: "ADA@example.com", Password: "x"}
	require.NoError(t, v.ValidateSignIn(&req))
	assert.Equal(t, "ada@example.com", req.Email)

	err := v.ValidateSignIn(&entity.SignInRequest{Email: "ada@example.com"})
	assert.ErrorIs(t, err, entity.ErrMissingField)
}
