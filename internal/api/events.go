package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/2nist/Band-Manager/internal/constants"
	"github.com/2nist/Band-Manager/internal/service"
)

// GetEvent returns the event awaiting a choice, or an empty object when the
// career has no pending event.
func (h *CareerHandler) GetEvent(c *gin.Context) {
	code := normalizeCareerCode(c.Param("careerCode"))
	if !careerCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidCareerCode})
		return
	}
	ev, err := service.GetPendingEvent(h.repo, code, sessionEmail(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	if ev == nil {
		c.JSON(http.StatusOK, gin.H{"event": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": ev})
}

type resolveEventRequest struct {
	ChoiceID string `json:"choice_id"`
}

// ResolveEvent applies the chosen option of the pending event and returns
// the updated career.
func (h *CareerHandler) ResolveEvent(c *gin.Context) {
	code := normalizeCareerCode(c.Param("careerCode"))
	if !careerCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidCareerCode})
		return
	}
	var req resolveEventRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ChoiceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	career, err := service.ResolveEvent(h.repo, code, sessionEmail(c), req.ChoiceID, h.rand)
	if err != nil {
		serviceError(c, err)
		return
	}
	out, err := MarshalForContext(c, career)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEncodeCareer})
		return
	}
	c.JSON(http.StatusOK, out)
}
