package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/leandroquiroga/interview-platform-ai/internal/api/middleware"
	"github.com/leandroquiroga/interview-platform-ai/internal/entity"
	"github.com/leandroquiroga/interview-platform-ai/internal/pkg/logger"
	"github.com/leandroquiroga/interview-platform-ai/internal/pkg/response"
)

const maxBodyBytes = 16 << 10

type Handler struct {
	usecase AuthUsecase
	cookies CookieWriter
}

func NewHandler(usecase AuthUsecase, cookies CookieWriter) *Handler {
	return &Handler{
		usecase: usecase,
		cookies: cookies,
	}
}

// SignUp handles POST /api/auth/sign-up
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "SignUp")

	var req entity.SignUpRequest
	if err := decode(w, r, &req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	user, err := h.usecase.SignUp(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Created(w, user.ToResponse())
}

// SignIn handles POST /api/auth/sign-in
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "SignIn")

	var req entity.SignInRequest
	if err := decode(w, r, &req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	result, err := h.usecase.SignIn(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.cookies.SetCookie(w, result.Token)
	response.Success(w, result.User.ToResponse())
}

// SignOut handles POST /api/auth/sign-out
func (h *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "SignOut")

	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		h.respondError(ctx, w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	if err := h.usecase.SignOut(ctx, user.ID); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.cookies.ClearCookie(w)
	response.Message(w, http.StatusOK, "signed out")
}

// Me handles GET /api/auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.respondError(r.Context(), w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	response.Success(w, user.ToResponse())
}

func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		ctxzap.Warn(ctx, message, zap.Int("status", status), zap.Error(err))
	} else {
		ctxzap.Warn(ctx, message, zap.Int("status", status))
	}
	response.Error(w, status, message)
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case entity.IsValidation(err):
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, entity.ErrUserExists):
		h.respondError(ctx, w, http.StatusConflict, "an account with this email already exists", err)
	case errors.Is(err, entity.ErrInvalidCredentials):
		h.respondError(ctx, w, http.StatusUnauthorized, "invalid email or password", err)
	case errors.Is(err, entity.ErrUnauthenticated), errors.Is(err, entity.ErrInvalidSession):
		h.respondError(ctx, w, http.StatusUnauthorized, "authentication required", err)
	default:
		ctxzap.Error(ctx, "auth request failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
