package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dharunks/insightiq/internal/apperr"
	"github.com/dharunks/insightiq/internal/dto"
	"github.com/dharunks/insightiq/internal/metrics"
	"github.com/dharunks/insightiq/internal/model"
	"github.com/dharunks/insightiq/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// InterviewService drives the interview lifecycle: draft creation with a
// fixed question sequence, the start transition, response submission with
// analysis, and completion with the score rollup. All operations are scoped
// to the owning user.
type InterviewService interface {
	Create(req dto.InterviewCreateDTO) (*dto.InterviewDetailDTO, error)
	Get(userID, interviewID uint) (*dto.InterviewDetailDTO, error)
	List(userID uint) ([]dto.InterviewSummaryDTO, error)
	Start(userID, interviewID uint) (*dto.InterviewDetailDTO, error)
	// SubmitResponse persists the raw response first, then asks the analyzer
	// to score it. When the analyzer fails, the returned DTO still carries the
	// stored response and the error is returned alongside it so the caller
	// can report a partial success.
	SubmitResponse(ctx context.Context, userID, interviewID, questionID uint, input ResponseInput) (*dto.QuestionResultDTO, error)
	Complete(ctx context.Context, userID, interviewID uint) (*dto.InterviewDetailDTO, error)
}

type interviewService struct {
	interviewRepo  repository.InterviewRepository
	questionRepo   repository.QuestionRepository
	userRepo       repository.UserRepository
	questionBank   QuestionBankService
	analyzer       ResponseAnalyzer
	aggregator     ScoreAggregatorService
	profileService ProfileService
	badgeService   BadgeService
	leaderboard    LeaderboardService
}

func NewInterviewService(
	interviewRepo repository.InterviewRepository,
	questionRepo repository.QuestionRepository,
	userRepo repository.UserRepository,
	questionBank QuestionBankService,
	analyzer ResponseAnalyzer,
	aggregator ScoreAggregatorService,
	profileService ProfileService,
	badgeService BadgeService,
	leaderboard LeaderboardService,
) InterviewService {
	return &interviewService{
		interviewRepo:  interviewRepo,
		questionRepo:   questionRepo,
		userRepo:       userRepo,
		questionBank:   questionBank,
		analyzer:       analyzer,
		aggregator:     aggregator,
		profileService: profileService,
		badgeService:   badgeService,
		leaderboard:    leaderboard,
	}
}

func (s *interviewService) Create(req dto.InterviewCreateDTO) (*dto.InterviewDetailDTO, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperr.Validationf("title must not be empty")
	}
	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperr.NotFoundError{Resource: "user", ID: req.UserID}
		}
		return nil, &apperr.PersistenceError{Err: err}
	}

	questions, err := s.questionBank.Generate(req.Type, req.Difficulty, req.QuestionCount)
	if err != nil {
		return nil, err
	}

	interview := model.Interview{
		UserID:     req.UserID,
		Title:      strings.TrimSpace(req.Title),
		Type:       req.Type,
		Difficulty: req.Difficulty,
		Status:     model.StatusDraft,
		Questions:  questions,
	}
	if err := s.interviewRepo.Create(&interview); err != nil {
		return nil, &apperr.PersistenceError{Err: fmt.Errorf("creating interview: %w", err)}
	}
	metrics.IncInterviewsCreated()
	log.Info().
		Uint("interviewID", interview.ID).
		Uint("userID", interview.UserID).
		Str("type", string(interview.Type)).
		Int("questions", len(interview.Questions)).
		Msg("Created interview draft")

	return toInterviewDetail(&interview)
}

func (s *interviewService) Get(userID, interviewID uint) (*dto.InterviewDetailDTO, error) {
	interview, err := s.ownedInterview(userID, interviewID)
	if err != nil {
		return nil, err
	}
	return toInterviewDetail(interview)
}

func (s *interviewService) List(userID uint) ([]dto.InterviewSummaryDTO, error) {
	interviews, err := s.interviewRepo.ListByUser(userID)
	if err != nil {
		return nil, &apperr.PersistenceError{Err: err}
	}

	summaries := make([]dto.InterviewSummaryDTO, 0, len(interviews))
	for _, iv := range interviews {
		summary := dto.InterviewSummaryDTO{
			ID:            iv.ID,
			Title:         iv.Title,
			Type:          iv.Type,
			Difficulty:    iv.Difficulty,
			Status:        iv.Status,
			QuestionCount: len(iv.Questions),
			CompletedAt:   iv.CompletedAt,
			CreatedAt:     iv.CreatedAt,
		}
		if iv.OverallAnalysis != nil {
			summary.Grade = iv.OverallAnalysis.Grade
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *interviewService) Start(userID, interviewID uint) (*dto.InterviewDetailDTO, error) {
	interview, err := s.ownedInterview(userID, interviewID)
	if err != nil {
		return nil, err
	}

	ok, err := s.interviewRepo.MarkInProgress(interviewID, time.Now())
	if err != nil {
		return nil, &apperr.PersistenceError{Err: fmt.Errorf("starting interview: %w", err)}
	}
	if !ok {
		// Lost the conditional update; reload so the error names the state
		// the interview is actually in.
		if current, err := s.interviewRepo.FindByID(interviewID); err == nil {
			interview = current
		}
		return nil, &apperr.InvalidStateError{
			Op:       "start interview",
			Current:  string(interview.Status),
			Required: string(model.StatusDraft),
		}
	}
	log.Info().Uint("interviewID", interviewID).Msg("Interview started")

	started, err := s.ownedInterview(userID, interviewID)
	if err != nil {
		return nil, err
	}
	return toInterviewDetail(started)
}

func (s *interviewService) SubmitResponse(ctx context.Context, userID, interviewID, questionID uint, input ResponseInput) (*dto.QuestionResultDTO, error) {
	interview, err := s.ownedInterview(userID, interviewID)
	if err != nil {
		return nil, err
	}
	if interview.Status != model.StatusInProgress {
		return nil, &apperr.InvalidStateError{
			Op:       "submit response",
			Current:  string(interview.Status),
			Required: string(model.StatusInProgress),
		}
	}

	var question *model.Question
	for i := range interview.Questions {
		if interview.Questions[i].ID == questionID {
			question = &interview.Questions[i]
			break
		}
	}
	if question == nil {
		return nil, &apperr.NotFoundError{Resource: "question", ID: questionID}
	}
	if strings.TrimSpace(input.Text) == "" && !input.HasMedia() {
		return nil, apperr.Validationf("response must include text or a media recording")
	}

	now := time.Now()
	question.ResponseText = optionalString(input.Text)
	question.AudioURL = input.AudioURL
	question.VideoURL = input.VideoURL
	question.ResponseDuration = optionalFloat(input.Duration)
	question.RespondedAt = &now
	question.Analysis = nil

	// The raw response is durable before the analyzer ever runs, so a slow
	// or failing analyzer can never lose the user's answer.
	if err := s.questionRepo.UpdateResponse(question); err != nil {
		return nil, &apperr.PersistenceError{Err: fmt.Errorf("storing response: %w", err)}
	}

	result := &dto.QuestionResultDTO{Question: toQuestionDTO(*question)}

	// No locks held across this call; it may take up to the analyzer timeout.
	analysis, analyzeErr := s.analyzer.Analyze(ctx, question.Text, input)
	if analyzeErr != nil {
		log.Warn().Err(analyzeErr).
			Uint("interviewID", interviewID).
			Uint("questionID", questionID).
			Msg("Response stored but analysis failed")
		result.AnalyzerError = analyzeErr.Error()
		return result, analyzeErr
	}

	question.Analysis = analysis
	if err := s.questionRepo.UpdateAnalysis(question); err != nil {
		return nil, &apperr.PersistenceError{Err: fmt.Errorf("storing analysis: %w", err)}
	}

	result.Question.Analysis = analysis
	result.Analysis = analysis
	return result, nil
}

func (s *interviewService) Complete(ctx context.Context, userID, interviewID uint) (*dto.InterviewDetailDTO, error) {
	interview, err := s.ownedInterview(userID, interviewID)
	if err != nil {
		return nil, err
	}

	overall := s.aggregator.Aggregate(interview.Questions)
	feedback := s.aggregator.BuildFeedback(interview.Questions, overall)

	now := time.Now()
	duration := 0
	if interview.StartedAt != nil {
		duration = int(now.Sub(*interview.StartedAt).Seconds())
	}

	ok, err := s.interviewRepo.MarkCompleted(interviewID, now, duration, &overall, &feedback)
	if err != nil {
		return nil, &apperr.PersistenceError{Err: fmt.Errorf("completing interview: %w", err)}
	}
	if !ok {
		// The rollup computed above is discarded; a completed interview's
		// stored analysis is immutable.
		if current, err := s.interviewRepo.FindByID(interviewID); err == nil {
			interview = current
		}
		return nil, &apperr.InvalidStateError{
			Op:       "complete interview",
			Current:  string(interview.Status),
			Required: string(model.StatusInProgress),
		}
	}
	metrics.IncInterviewsCompleted()
	log.Info().
		Uint("interviewID", interviewID).
		Uint("userID", userID).
		Str("grade", overall.Grade).
		Int("answered", overall.AnsweredQuestions).
		Msg("Interview completed")

	s.runCompletionFollowups(ctx, userID)

	completed, err := s.ownedInterview(userID, interviewID)
	if err != nil {
		return nil, err
	}
	return toInterviewDetail(completed)
}

// runCompletionFollowups refreshes the stats projection, evaluates badges and
// updates the leaderboard. The interview is already completed at this point,
// so every failure here is logged and swallowed.
func (s *interviewService) runCompletionFollowups(ctx context.Context, userID uint) {
	stats, completed, err := s.profileService.RefreshStats(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to refresh stats after completion")
		return
	}

	if awarded, err := s.badgeService.AwardBadges(userID, stats, completed); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to evaluate badges after completion")
	} else if len(awarded) > 0 {
		names := make([]string, 0, len(awarded))
		for _, b := range awarded {
			names = append(names, b.Name)
		}
		log.Info().Uint("userID", userID).Strs("badges", names).Msg("Awarded badges")
	}

	if err := s.leaderboard.Record(ctx, userID, stats); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to update leaderboard")
	}
}

// ownedInterview loads an interview with its ordered questions and enforces
// ownership. Someone else's interview reads as not found rather than
// forbidden, so IDs never leak across users.
func (s *interviewService) ownedInterview(userID, interviewID uint) (*model.Interview, error) {
	interview, err := s.interviewRepo.FindByIDWithQuestions(interviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperr.NotFoundError{Resource: "interview", ID: interviewID}
		}
		return nil, &apperr.PersistenceError{Err: err}
	}
	if interview.UserID != userID {
		return nil, &apperr.NotFoundError{Resource: "interview", ID: interviewID}
	}
	return interview, nil
}

func toInterviewDetail(interview *model.Interview) (*dto.InterviewDetailDTO, error) {
	var detail dto.InterviewDetailDTO
	if err := copier.Copy(&detail, interview); err != nil {
		return nil, fmt.Errorf("error preparing interview response: %w", err)
	}
	return &detail, nil
}

func toQuestionDTO(q model.Question) dto.QuestionDTO {
	return dto.QuestionDTO{
		ID:               q.ID,
		InterviewID:      q.InterviewID,
		Text:             q.Text,
		Category:         q.Category,
		OrderInInterview: q.OrderInInterview,
		ResponseText:     q.ResponseText,
		AudioURL:         q.AudioURL,
		VideoURL:         q.VideoURL,
		ResponseDuration: q.ResponseDuration,
		RespondedAt:      q.RespondedAt,
		Analysis:         q.Analysis,
	}
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func optionalFloat(f float64) *float64 {
	if f <= 0 {
		return nil
	}
	return &f
}
