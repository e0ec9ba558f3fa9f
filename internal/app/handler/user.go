package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type preferencesDTO struct {
	Theme string `json:"theme" binding:"required"`
}

// SetPreferences godoc
// @Summary      Save user preferences
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body preferencesDTO true "Preferences"
// @Success      200 {object} map[string]any
// @Failure      400 {object} map[string]any
// @Router       /user/preferences [post]
func (h *Handler) SetPreferences(c *gin.Context) {
	var in preferencesDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		respond(c, false, "theme is required", nil)
		return
	}
	if err := h.Preferences.SetTheme(in.Theme); err != nil {
		logrus.Warnf("rejected theme %q", in.Theme)
		respond(c, false, "theme must be light or dark", nil)
		return
	}
	respond(c, true, "Preferences saved", gin.H{"theme": h.Preferences.Theme()})
}

// Health godoc
// @Summary      Health check
// @Tags         Service
// @Produce      json
// @Success      200 {object} map[string]any
// @Router       /health [get]
func (h *Handler) Health(c *gin.Context) {
	respond(c, true, "ok", gin.H{"status": "ok"})
}

// Test godoc
// @Summary      Debug endpoint
// @Tags         Service
// @Produce      json
// @Success      200 {object} map[string]any
// @Router       /test [get]
func (h *Handler) Test(c *gin.Context) {
	c.JSON(200, gin.H{
		"message":   "Backend is working!",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
