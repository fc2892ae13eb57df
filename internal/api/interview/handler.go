package interview

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/leandroquiroga/interview-platform-ai/internal/api/middleware"
	"github.com/leandroquiroga/interview-platform-ai/internal/entity"
	"github.com/leandroquiroga/interview-platform-ai/internal/pkg/logger"
	"github.com/leandroquiroga/interview-platform-ai/internal/pkg/response"
)

const maxBodyBytes = 64 << 10

type Handler struct {
	usecase InterviewUsecase
}

func NewHandler(usecase InterviewUsecase) *Handler {
	return &Handler{
		usecase: usecase,
	}
}

// Ready handles GET /api/vapi/generate
func (h *Handler) Ready(w http.ResponseWriter, _ *http.Request) {
	response.Message(w, http.StatusOK, "Interview generation service ready to use")
}

// Generate handles POST /api/vapi/generate
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateInterview")
	h.generate(ctx, w, r, entity.ModeQuestionsOnly)
}

// GenerateQuestions handles POST /api/vapi/questions
func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateQuestions")
	h.generate(ctx, w, r, entity.ModeQuestionsWithAnswers)
}

func (h *Handler) generate(ctx context.Context, w http.ResponseWriter, r *http.Request, mode entity.GenerationMode) {
	var body entity.GenerateInterviewBody
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	iv, err := h.usecase.Generate(ctx, &body, mode)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "generation request served", zap.String("interview_id", iv.ID))

	if mode.HasAnswers() {
		response.Message(w, http.StatusOK, "Questions generated successfully")
		return
	}
	response.JSON(w, http.StatusOK, response.Envelope{Success: true})
}

// ListQuestionSets handles GET /api/vapi/questions/interview/{role}
func (h *Handler) ListQuestionSets(w http.ResponseWriter, r *http.Request) {
	role := chi.URLParam(r, "role")
	userID := r.URL.Query().Get("userId")

	ctx := logger.AddFields(r.Context(),
		zap.String("action", "ListQuestionSets"),
		zap.String("role", role),
		zap.String("user_id", userID),
	)

	sets, err := h.usecase.ListQuestionSets(ctx, role, userID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "question sets listed", zap.Int("count", len(sets)))

	response.Success(w, sets)
}

// ListInterviews handles GET /api/interviews
func (h *Handler) ListInterviews(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListInterviews")

	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		h.respondError(ctx, w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	resp, err := h.usecase.ListInterviews(ctx, &entity.ListInterviewsRequest{
		UserID: user.ID,
		Skip:   skip,
		Limit:  limit,
	})
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "interviews listed", zap.Int("count", len(resp.Interviews)))

	response.Success(w, resp)
}

// GetInterview handles GET /api/interviews/{interview_id}
func (h *Handler) GetInterview(w http.ResponseWriter, r *http.Request) {
	interviewID := chi.URLParam(r, "interview_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("interview_id", interviewID),
		zap.String("action", "GetInterview"),
	)

	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		h.respondError(ctx, w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	detail, err := h.usecase.GetInterview(ctx, interviewID, user.ID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, detail)
}

// ExportInterview handles GET /api/interviews/{interview_id}/export
func (h *Handler) ExportInterview(w http.ResponseWriter, r *http.Request) {
	interviewID := chi.URLParam(r, "interview_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("interview_id", interviewID),
		zap.String("action", "ExportInterview"),
	)

	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		h.respondError(ctx, w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	format := entity.ResultFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = entity.FormatMarkdown
	}
	if !format.IsValid() {
		h.respondError(ctx, w, http.StatusBadRequest, "format must be one of markdown, docx, pdf", nil)
		return
	}

	result, err := h.usecase.ExportInterview(ctx, &entity.ExportInterviewRequest{
		InterviewID: interviewID,
		UserID:      user.ID,
		Format:      format,
	})
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Attachment(w, result.Filename, result.ContentType, result.Content)
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	fields := []zap.Field{zap.Int("status", status)}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}

	if status >= http.StatusInternalServerError {
		ctxzap.Error(ctx, message, fields...)
	} else {
		ctxzap.Warn(ctx, message, fields...)
	}

	response.Error(w, status, message)
}

// handleUsecaseError maps domain errors to a status and a caller-safe message
func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case entity.IsValidation(err):
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, entity.ErrInterviewNotFound):
		h.respondError(ctx, w, http.StatusNotFound, "interview not found", err)
	case errors.Is(err, entity.ErrGenerationFailure):
		h.respondError(ctx, w, http.StatusInternalServerError, "failed to generate interview questions", err)
	case errors.Is(err, entity.ErrMalformedGenerationOutput):
		h.respondError(ctx, w, http.StatusInternalServerError, "generated questions could not be processed", err)
	case errors.Is(err, entity.ErrPersistenceFailure):
		h.respondError(ctx, w, http.StatusInternalServerError, "failed to save interview", err)
	default:
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
