package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/2nist/Band-Manager/internal/constants"
	"github.com/2nist/Band-Manager/internal/keys"
	"github.com/2nist/Band-Manager/internal/service"
)

type saveCareerRequest struct {
	Name string `json:"name"`
}

// SaveCareer snapshots a career into a named slot.
func (h *CareerHandler) SaveCareer(c *gin.Context) {
	code := normalizeCareerCode(c.Param("careerCode"))
	if !careerCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidCareerCode})
		return
	}
	var req saveCareerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	slot, err := service.SaveCareer(h.repo, code, sessionEmail(c), req.Name)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, slot)
}

// ListSaves returns the account's save slots.
func (h *CareerHandler) ListSaves(c *gin.Context) {
	slots, err := service.ListSaves(h.repo, sessionEmail(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedSaveCareer})
		return
	}
	c.JSON(http.StatusOK, slots)
}

// LoadSave restores a snapshot as a brand-new career.
func (h *CareerHandler) LoadSave(c *gin.Context) {
	key := keys.SlotKeyFromName(c.Param("slotKey"))
	career, err := service.LoadCareer(h.repo, sessionEmail(c), key)
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

// DeleteSave removes a save slot.
func (h *CareerHandler) DeleteSave(c *gin.Context) {
	key := keys.SlotKeyFromName(c.Param("slotKey"))
	if err := service.DeleteSave(h.repo, sessionEmail(c), key); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
