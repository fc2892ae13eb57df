package interview

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/leandroquiroga/interview-platform-ai/internal/entity"
	"github.com/leandroquiroga/interview-platform-ai/internal/pkg/cover"
	"github.com/leandroquiroga/interview-platform-ai/internal/pkg/formatter"
	"github.com/leandroquiroga/interview-platform-ai/internal/pkg/logger"
	"github.com/leandroquiroga/interview-platform-ai/internal/pkg/metrics"
	"github.com/leandroquiroga/interview-platform-ai/internal/pkg/prompt"
	"github.com/leandroquiroga/interview-platform-ai/internal/pkg/questionparser"
	"github.com/leandroquiroga/interview-platform-ai/internal/pkg/validator"
	"github.com/leandroquiroga/interview-platform-ai/internal/repository"
)

// InterviewUsecase runs the generation pipeline and serves stored interviews
type InterviewUsecase struct {
	interviewRepo   repository.InterviewRepository
	questionSetRepo repository.QuestionSetRepository
	generator       Generator
	covers          cover.Picker
	formatters      FormatterFactory
	validator       *validator.Validator
	metrics         *metrics.Metrics
	now             func() time.Time
}

type Option func(*InterviewUsecase)

// WithClock replaces time.Now for the createdAt stamp
func WithClock(now func() time.Time) Option {
	return func(uc *InterviewUsecase) {
		uc.now = now
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(uc *InterviewUsecase) {
		uc.metrics = m
	}
}

func NewUsecase(
	interviewRepo repository.InterviewRepository,
	questionSetRepo repository.QuestionSetRepository,
	generator Generator,
	covers cover.Picker,
	formatters FormatterFactory,
	validator *validator.Validator,
	opts ...Option,
) *InterviewUsecase {
	uc := &InterviewUsecase{
		interviewRepo:   interviewRepo,
		questionSetRepo: questionSetRepo,
		generator:       generator,
		covers:          covers,
		formatters:      formatters,
		validator:       validator,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Generate validates body, asks the model for questions and persists the result.
// Each stage runs once; a failure at any stage ends the request.
func (uc *InterviewUsecase) Generate(ctx context.Context, body *entity.GenerateInterviewBody, mode entity.GenerationMode) (*entity.Interview, error) {
	modeLabel := string(mode)

	req, err := uc.validator.ValidateGenerateInterview(body, mode)
	if err != nil {
		uc.metrics.ObserveGeneration(modeLabel, metrics.OutcomeValidationError)
		return nil, err
	}

	ctx = logger.AddFields(ctx,
		zap.String("user_id", req.UserID),
		zap.String("mode", modeLabel),
		zap.Int("requested", req.Amount),
	)

	questions, err := uc.generate(ctx, req)
	if err != nil {
		return nil, err
	}

	iv := AssembleInterview(questions, req, uc.covers.Pick(), uc.now())

	var saved *entity.Interview
	if mode.HasAnswers() {
		saved, err = uc.questionSetRepo.Create(ctx, entity.NormalizeRole(req.Role), iv)
	} else {
		saved, err = uc.interviewRepo.Create(ctx, iv)
	}
	if err != nil {
		uc.metrics.ObserveGeneration(modeLabel, metrics.OutcomePersistenceError)
		ctxzap.Error(ctx, "generated interview dropped", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", entity.ErrPersistenceFailure, err)
	}

	uc.metrics.ObserveGeneration(modeLabel, metrics.OutcomeSuccess)
	uc.metrics.AddGeneratedQuestions(modeLabel, len(saved.Questions))

	ctxzap.Info(ctx, "interview generated",
		zap.String("interview_id", saved.ID),
		zap.Int("questions", len(saved.Questions)),
	)

	return saved, nil
}

// generate covers the prompt, model and parse stages
func (uc *InterviewUsecase) generate(ctx context.Context, req *entity.InterviewRequest) ([]entity.GeneratedQuestion, error) {
	modeLabel := string(req.Mode)

	text := prompt.Build(req)

	start := time.Now()
	raw, err := uc.generator.Generate(ctx, text)
	uc.metrics.ObserveGenerationDuration(modeLabel, time.Since(start))
	if err != nil {
		uc.metrics.ObserveGeneration(modeLabel, metrics.OutcomeGenerationError)
		ctxzap.Error(ctx, "generation call failed",
			zap.String("generator", uc.generator.Name()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", entity.ErrGenerationFailure, err)
	}

	questions, err := questionparser.Parse(raw, req.Mode)
	if err != nil {
		uc.metrics.ObserveGeneration(modeLabel, metrics.OutcomeMalformedOutput)
		fields := []zap.Field{logger.RawOutput("raw_output", raw), zap.Error(err)}
		if perr, ok := questionparser.AsError(err); ok {
			fields = append(fields, zap.String("phase", string(perr.Phase)), zap.Int("index", perr.Index))
		}
		ctxzap.Warn(ctx, "malformed generation output", fields...)
		return nil, err
	}

	if len(questions) != req.Amount {
		uc.metrics.ObserveCountMismatch(modeLabel)
		ctxzap.Warn(ctx, "generated question count differs from requested",
			zap.Int("requested", req.Amount),
			zap.Int("received", len(questions)),
		)
	}

	return questions, nil
}

// ListQuestionSets returns the stored question-and-answer sets of userID for role
func (uc *InterviewUsecase) ListQuestionSets(ctx context.Context, role, userID string) ([]*entity.QuestionSetDTO, error) {
	key, err := uc.validator.ValidateRoleQuery(role, userID)
	if err != nil {
		return nil, err
	}

	sets, err := uc.questionSetRepo.ListByRole(ctx, key, userID)
	if err != nil {
		return nil, fmt.Errorf("list question sets: %w", err)
	}

	result := make([]*entity.QuestionSetDTO, 0, len(sets))
	for _, s := range sets {
		result = append(result, toQuestionSetDTO(key, s))
	}

	ctxzap.Debug(ctx, "question sets listed",
		zap.String("role_key", string(key)),
		zap.Int("count", len(result)),
	)

	return result, nil
}

func (uc *InterviewUsecase) ListInterviews(ctx context.Context, req *entity.ListInterviewsRequest) (*entity.ListInterviewsResponse, error) {
	req.Normalize()

	interviews, err := uc.interviewRepo.ListByUser(ctx, req.UserID, req.Skip, req.Limit)
	if err != nil {
		return nil, fmt.Errorf("list interviews: %w", err)
	}

	summaries := make([]*entity.InterviewSummary, 0, len(interviews))
	for _, iv := range interviews {
		summaries = append(summaries, toSummary(iv))
	}

	return &entity.ListInterviewsResponse{Interviews: summaries}, nil
}

func (uc *InterviewUsecase) GetInterview(ctx context.Context, id, userID string) (*entity.InterviewDetailResponse, error) {
	iv, err := uc.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	return toDetail(iv), nil
}

func (uc *InterviewUsecase) ExportInterview(ctx context.Context, req *entity.ExportInterviewRequest) (*entity.ExportInterviewResponse, error) {
	f, err := uc.formatters.Create(req.Format)
	if err != nil {
		return nil, err
	}

	iv, err := uc.getOwned(ctx, req.InterviewID, req.UserID)
	if err != nil {
		return nil, err
	}

	content, err := f.Format(iv)
	if err != nil {
		return nil, fmt.Errorf("format interview as %s: %w", req.Format, err)
	}

	ctxzap.Info(ctx, "interview exported",
		zap.String("interview_id", iv.ID),
		zap.String("format", string(req.Format)),
		zap.Int("size", len(content)),
	)

	return &entity.ExportInterviewResponse{
		Filename:    formatter.Filename(iv, f),
		ContentType: f.ContentType(),
		Content:     content,
	}, nil
}

// getOwned hides interviews of other users behind ErrInterviewNotFound
func (uc *InterviewUsecase) getOwned(ctx context.Context, id, userID string) (*entity.Interview, error) {
	iv, err := uc.interviewRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrInterviewNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get interview: %w", err)
	}

	if iv.UserID != userID {
		return nil, entity.ErrInterviewNotFound
	}

	return iv, nil
}
