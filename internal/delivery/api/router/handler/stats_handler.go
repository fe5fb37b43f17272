package handler

import (
	"net/http"

	"schoolhub/internal/delivery/api/response"
	"schoolhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StatsHandler serves the aggregate member counts.
type StatsHandler struct {
	statsUC usecase.StatsUsecase
}

// NewStatsHandler is the constructor for StatsHandler.
func NewStatsHandler(statsUC usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{statsUC: statsUC}
}

// StatsResponse is the data of GET /auth/stats.
type StatsResponse struct {
	TotalStudents int64 `json:"totalStudents"`
	TotalTeachers int64 `json:"totalTeachers"`
	TotalParents  int64 `json:"totalParents"`
}

// GetStats handles GET /auth/stats.
func (h *StatsHandler) GetStats(c echo.Context) error {
	stats, err := h.statsUC.GetStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &StatsResponse{
		TotalStudents: stats.TotalStudents,
		TotalTeachers: stats.TotalTeachers,
		TotalParents:  stats.TotalParents,
	}, "stats success")
}
