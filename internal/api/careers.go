package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/2nist/Band-Manager/internal/constants"
	"github.com/2nist/Band-Manager/internal/service"
)

type createCareerRequest struct {
	BandName   string `json:"band_name"`
	Genre      string `json:"genre"`
	Difficulty string `json:"difficulty"`
}

// CreateCareer starts a new band career for the authenticated account.
func (h *CareerHandler) CreateCareer(c *gin.Context) {
	var req createCareerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	career, err := service.CreateCareer(h.repo, h.content, sessionEmail(c), req.BandName, req.Genre, req.Difficulty, h.rand)
	if err != nil {
		serviceError(c, err)
		return
	}
	out, err := MarshalForContext(c, career)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEncodeCareer})
		return
	}
	c.JSON(http.StatusCreated, out)
}

// ListCareers returns the account's careers, most recently played first.
func (h *CareerHandler) ListCareers(c *gin.Context) {
	careers, err := service.ListCareers(h.repo, sessionEmail(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchCareers})
		return
	}
	out, err := MarshalForContext(c, careers)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEncodeCareer})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetCareer returns one career by its shareable code.
func (h *CareerHandler) GetCareer(c *gin.Context) {
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
	out, err := MarshalForContext(c, career)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEncodeCareer})
		return
	}
	c.JSON(http.StatusOK, out)
}

// DeleteCareer removes a career permanently.
func (h *CareerHandler) DeleteCareer(c *gin.Context) {
	code := normalizeCareerCode(c.Param("careerCode"))
	if !careerCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidCareerCode})
		return
	}
	if err := service.DeleteCareer(h.repo, code, sessionEmail(c)); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
