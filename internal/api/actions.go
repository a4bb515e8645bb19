package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/2nist/Band-Manager/internal/constants"
	"github.com/2nist/Band-Manager/internal/game"
	"github.com/2nist/Band-Manager/internal/logging"
	"github.com/2nist/Band-Manager/internal/service"
)

type actionRequest struct {
	Type       string   `json:"type"`
	Venue      string   `json:"venue,omitempty"`
	Tour       string   `json:"tour,omitempty"`
	AlbumName  string   `json:"album_name,omitempty"`
	SongTitles []string `json:"song_titles,omitempty"`
	MemberUUID string   `json:"member_uuid,omitempty"`
	Target     string   `json:"target,omitempty"`
}

// PerformAction dispatches one career action. Week-consuming actions advance
// the simulation; purchases and roster moves apply instantly.
func (h *CareerHandler) PerformAction(c *gin.Context) {
	code := normalizeCareerCode(c.Param("careerCode"))
	if !careerCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidCareerCode})
		return
	}
	var req actionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	email := sessionEmail(c)

	var (
		career *game.CareerState
		err    error
	)
	switch req.Type {
	case "write_song":
		career, err = service.WriteSong(h.repo, h.content, code, email, h.rand)
	case "record_album":
		career, err = service.RecordAlbum(h.repo, h.content, code, email, req.AlbumName, req.SongTitles, h.rand)
	case "gig":
		career, err = service.BookGig(h.repo, h.content, code, email, req.Venue, h.rand)
	case "tour":
		career, err = service.StartTour(h.repo, h.content, code, email, req.Tour, h.rand)
	case "rehearse":
		career, err = service.Rehearse(h.repo, h.content, code, email, h.rand)
	case "rest":
		career, err = service.Rest(h.repo, h.content, code, email, h.rand)
	case "train":
		career, err = service.Train(h.repo, h.content, code, email, h.rand)
	case "promote":
		career, err = service.Promote(h.repo, h.content, code, email, h.rand)
	case "upgrade":
		career, err = service.Upgrade(h.repo, h.content, code, email, req.Target)
	case "hire_member":
		career, err = service.HireMember(h.repo, h.content, code, email, h.rand)
	case "fire_member":
		career, err = service.FireMember(h.repo, code, email, req.MemberUUID)
	default:
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownAction})
		return
	}
	if err != nil {
		serviceError(c, err)
		return
	}

	logging.Info("action performed", logging.Fields{
		constants.LogFieldCareerCode: code,
		constants.LogFieldAction:     req.Type,
		constants.LogFieldWeek:       career.Week,
	})
	out, err := MarshalForContext(c, career)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEncodeCareer})
		return
	}
	c.JSON(http.StatusOK, out)
}
