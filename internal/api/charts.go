package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/2nist/Band-Manager/internal/charts"
	"github.com/2nist/Band-Manager/internal/constants"
	"github.com/2nist/Band-Manager/internal/service"
)

// GetCharts returns the weekly chart rankings for a career. Concurrent polls
// for the same career and week share one computation.
func (h *CareerHandler) GetCharts(c *gin.Context) {
	code := normalizeCareerCode(c.Param("careerCode"))
	if !careerCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidCareerCode})
		return
	}
	career, err := service.GetCareer(h.repo, code, sessionEmail(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	ch, err := charts.Compute(career)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchCharts})
		return
	}
	c.JSON(http.StatusOK, ch)
}
