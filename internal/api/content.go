package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetContent returns the static content tables the client renders its
// storefronts from: venues, tours, upgrade tiers, staff rates and genres.
// Event templates stay server-side so upcoming story beats aren't spoiled.
func (h *CareerHandler) GetContent(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"studio_tiers":    h.content.StudioTiers,
		"transport_tiers": h.content.TransportTiers,
		"gear_tiers":      h.content.GearTiers,
		"venues":          h.content.Venues,
		"tours":           h.content.Tours,
		"staff":           h.content.Staff,
		"genres":          h.content.Genres,
	})
}
