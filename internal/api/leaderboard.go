package api

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/2nist/Band-Manager/internal/constants"
)

// ListLeaderboard returns the top profiles by peak fame, limited to 10 by
// default.
func (h *CareerHandler) ListLeaderboard(c *gin.Context) {
	limit := 10
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	profiles, err := h.repo.GetTopProfiles(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchBoard})
		return
	}
	out, err := MarshalForContext(c, profiles)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchBoard})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetProfile returns the authenticated account's aggregate stats.
func (h *CareerHandler) GetProfile(c *gin.Context) {
	p, err := h.repo.GetProfileByEmail(sessionEmail(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchProfile})
		return
	}
	out, err := MarshalForContext(c, p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchProfile})
		return
	}
	c.JSON(http.StatusOK, out)
}

var displayNameRegex = regexp.MustCompile(`^[\p{L}\p{M}\p{N}.'\- ]{3,40}$`)

// UpdateProfile updates the account's display name.
func (h *CareerHandler) UpdateProfile(c *gin.Context) {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	trimmed := strings.TrimSpace(body.Name)
	if !displayNameRegex.MatchString(trimmed) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: "Invalid display name"})
		return
	}
	if err := h.repo.UpsertProfile(sessionEmail(c), trimmed); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchProfile})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
