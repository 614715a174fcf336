package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hosammostafait/AICareerAdvisor/pkg/generation/repository"
)

const defaultRecent = 20

type StatsCtrl struct{ repo repository.GenerationRepository }

func NewStatsCtrl(repo repository.GenerationRepository) *StatsCtrl { return &StatsCtrl{repo: repo} }

// Stats returns outcome counts and the most recent attempts. ?recent=N
// changes how many attempts are listed (max 200).
func (h *StatsCtrl) Stats(c echo.Context) error {
	limit := defaultRecent
	if v := c.QueryParam("recent"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid recent"})
		}
		limit = min(n, 200)
	}

	counts, err := h.repo.CountByOutcome()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	recent, err := h.repo.Recent(limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	var total int64
	for _, n := range counts {
		total += n
	}
	return c.JSON(http.StatusOK, echo.Map{
		"total":      total,
		"by_outcome": counts,
		"recent":     recent,
	})
}
