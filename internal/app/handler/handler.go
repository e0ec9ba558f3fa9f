package handler

import (
	"net/http"

	"github.com/Ninja-cloud-sorce/back-end/internal/app/repository"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	Preferences  *repository.Preferences
	MaxPDFSizeMB int
}

func NewHandler(prefs *repository.Preferences, maxPDFSizeMB int) *Handler {
	return &Handler{
		Preferences:  prefs,
		MaxPDFSizeMB: maxPDFSizeMB,
	}
}

// respond writes the uniform API envelope: success is HTTP 200, any
// handled failure is HTTP 400. Internal faults that escape a handler
// are the recovery middleware's problem and come back as 500.
func respond(c *gin.Context, success bool, message string, data any) {
	status := http.StatusOK
	if !success {
		status = http.StatusBadRequest
	}
	if data == nil {
		data = gin.H{}
	}
	c.JSON(status, gin.H{"success": success, "message": message, "data": data})
}
