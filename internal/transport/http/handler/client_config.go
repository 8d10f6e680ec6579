package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ClientConfigHandler hands the browser client its API base URL as a tiny
// script, so the static pages need no per-deployment edits.
type ClientConfigHandler struct {
	backendBaseURL string
}

func NewClientConfigHandler(backendBaseURL string) *ClientConfigHandler {
	return &ClientConfigHandler{backendBaseURL: backendBaseURL}
}

func (h *ClientConfigHandler) Script(c *gin.Context) {
	c.Header("Content-Type", "application/javascript")
	c.String(http.StatusOK, fmt.Sprintf("window.API_BASE = %q;\n", h.backendBaseURL))
}
