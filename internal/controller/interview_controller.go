package controller

import (
	"net/http"
	"strconv"

	"github.com/dharunks/insightiq/internal/apperr"
	"github.com/dharunks/insightiq/internal/dto"
	"github.com/dharunks/insightiq/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type InterviewController struct {
	interviewService service.InterviewService
	mediaService     service.MediaService
}

func NewInterviewController(is service.InterviewService, ms service.MediaService) *InterviewController {
	return &InterviewController{interviewService: is, mediaService: ms}
}

// CreateInterview godoc
// @Summary Create a new interview draft
// @Description Creates a draft interview with a randomly selected, ordered question sequence for the given type and difficulty.
// @Tags interviews
// @Accept json
// @Produce json
// @Param interview body dto.InterviewCreateDTO true "Interview configuration"
// @Success 201 {object} dto.InterviewDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or configuration"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interviews [post]
func (c *InterviewController) CreateInterview(ctx *gin.Context) {
	var req dto.InterviewCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind InterviewCreateDTO")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	detail, err := c.interviewService.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, detail)
}

// ListInterviews godoc
// @Summary List a user's interviews
// @Description Returns summaries of all interviews belonging to the user, newest first.
// @Tags interviews
// @Produce json
// @Param user_id query int true "User ID (temporary, until token auth)"
// @Success 200 {array} dto.InterviewSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid user_id"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interviews [get]
func (c *InterviewController) ListInterviews(ctx *gin.Context) {
	userID, ok := queryUserID(ctx)
	if !ok {
		return
	}
	summaries, err := c.interviewService.List(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summaries)
}

// GetInterview godoc
// @Summary Get an interview with its questions
// @Description Returns the full interview, including each question's response and analysis when present.
// @Tags interviews
// @Produce json
// @Param id path int true "Interview ID"
// @Param user_id query int true "User ID (temporary, until token auth)"
// @Success 200 {object} dto.InterviewDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interviews/{id} [get]
func (c *InterviewController) GetInterview(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	userID, ok := queryUserID(ctx)
	if !ok {
		return
	}
	detail, err := c.interviewService.Get(userID, id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// StartInterview godoc
// @Summary Start a draft interview
// @Description Transitions the interview from draft to in_progress and stamps the start time. Fails if the interview is not in draft.
// @Tags interviews
// @Produce json
// @Param id path int true "Interview ID"
// @Param user_id query int true "User ID (temporary, until token auth)"
// @Success 200 {object} dto.InterviewDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Interview is not in draft"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interviews/{id}/start [put]
func (c *InterviewController) StartInterview(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	userID, ok := queryUserID(ctx)
	if !ok {
		return
	}
	detail, err := c.interviewService.Start(userID, id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// SubmitResponse godoc
// @Summary Submit a response to a question
// @Description Stores the response (text and/or uploaded audio/video) and runs analysis on it. When the analyzer fails, the response is still stored and a 207 is returned with the analyzer error.
// @Tags interviews
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Interview ID"
// @Param question_id path int true "Question ID"
// @Param user_id query int true "User ID (temporary, until token auth)"
// @Param text formData string false "Response transcript"
// @Param duration formData number false "Spoken duration in seconds"
// @Param audio formData file false "Audio recording"
// @Param video formData file false "Video recording"
// @Success 200 {object} dto.QuestionResultDTO "Response stored and analyzed"
// @Success 207 {object} dto.QuestionResultDTO "Response stored but analysis failed"
// @Failure 400 {object} dto.ErrorResponse "Invalid input or interview not in progress"
// @Failure 404 {object} dto.ErrorResponse "Interview or question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interviews/{id}/questions/{question_id}/response [put]
func (c *InterviewController) SubmitResponse(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	questionID, ok := pathID(ctx, "question_id")
	if !ok {
		return
	}
	userID, ok := queryUserID(ctx)
	if !ok {
		return
	}

	input := service.ResponseInput{Text: ctx.PostForm("text")}
	if durStr := ctx.PostForm("duration"); durStr != "" {
		dur, err := strconv.ParseFloat(durStr, 64)
		if err != nil || dur < 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid duration value"})
			return
		}
		input.Duration = dur
	}

	if file, err := ctx.FormFile("audio"); err == nil {
		url, storeErr := c.mediaService.Store(file)
		if storeErr != nil {
			log.Error().Err(storeErr).Msg("Failed to store audio upload")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to store audio recording"})
			return
		}
		input.AudioURL = &url
	}
	if file, err := ctx.FormFile("video"); err == nil {
		url, storeErr := c.mediaService.Store(file)
		if storeErr != nil {
			log.Error().Err(storeErr).Msg("Failed to store video upload")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to store video recording"})
			return
		}
		input.VideoURL = &url
	}

	result, err := c.interviewService.SubmitResponse(ctx.Request.Context(), userID, id, questionID, input)
	if err != nil {
		if apperr.IsAnalyzer(err) && result != nil {
			ctx.JSON(http.StatusMultiStatus, result)
			return
		}
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// CompleteInterview godoc
// @Summary Complete an in-progress interview
// @Description Aggregates the per-question analyses into the overall score and feedback, then finalizes the interview. Stats, badges and the leaderboard are refreshed afterwards.
// @Tags interviews
// @Produce json
// @Param id path int true "Interview ID"
// @Param user_id query int true "User ID (temporary, until token auth)"
// @Success 200 {object} dto.InterviewDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Interview is not in progress"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interviews/{id}/complete [put]
func (c *InterviewController) CompleteInterview(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	userID, ok := queryUserID(ctx)
	if !ok {
		return
	}
	detail, err := c.interviewService.Complete(ctx.Request.Context(), userID, id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}
