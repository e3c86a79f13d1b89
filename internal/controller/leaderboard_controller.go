package controller

import (
	"net/http"
	"strconv"

	"github.com/dharunks/insightiq/internal/dto"
	"github.com/dharunks/insightiq/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type LeaderboardController struct {
	leaderboard service.LeaderboardService
}

func NewLeaderboardController(lb service.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{leaderboard: lb}
}

// GetLeaderboard godoc
// @Summary Get the top-ranked users
// @Description Returns users ranked by their combined confidence and clarity score. Requires redis; returns 503 when the leaderboard is disabled.
// @Tags leaderboard
// @Produce json
// @Param limit query int false "Number of entries to return (default 10)"
// @Success 200 {array} dto.LeaderboardEntryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid limit format"
// @Failure 503 {object} dto.ErrorResponse "Leaderboard is disabled"
// @Router /leaderboard [get]
func (c *LeaderboardController) GetLeaderboard(ctx *gin.Context) {
	if !c.leaderboard.Enabled() {
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Message: "Leaderboard is not available"})
		return
	}

	limit := 10
	if raw := ctx.Query("limit"); raw != "" {
		val, err := strconv.Atoi(raw)
		if err != nil || val < 1 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid limit format"})
			return
		}
		limit = val
	}

	entries, err := c.leaderboard.Top(ctx.Request.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read leaderboard")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve leaderboard"})
		return
	}
	ctx.JSON(http.StatusOK, entries)
}
