package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"mailsmith/internal/compose"
	"mailsmith/internal/transport/http/response"
)

// Composer is the pipeline surface the AI endpoints need. Both the combined
// and the decomposed call shapes go through the same implementation.
type Composer interface {
	Classify(ctx context.Context, prompt string) (string, error)
	Generate(ctx context.Context, assistant, prompt string) (compose.DraftContent, error)
	Compose(ctx context.Context, prompt string) (compose.Result, error)
}

type AIHandler struct {
	pipeline Composer
}

type ComposeRequest struct {
	Prompt string `json:"prompt"`
}

type GenerateRequest struct {
	Assistant string `json:"assistant"`
	Prompt    string `json:"prompt"`
}

func NewAIHandler(pipeline Composer) *AIHandler {
	return &AIHandler{pipeline: pipeline}
}

// Compose runs both stages and returns {assistant, subject, body}.
func (h *AIHandler) Compose(c *gin.Context) {
	var req ComposeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		response.Error(c, http.StatusBadRequest, "prompt is required")
		return
	}

	result, err := h.pipeline.Compose(c.Request.Context(), req.Prompt)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, composeErrorMessage(err))
		return
	}
	response.OK(c, result)
}

// Route is the decomposed first stage: classification only.
func (h *AIHandler) Route(c *gin.Context) {
	var req ComposeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		response.Error(c, http.StatusBadRequest, "prompt is required")
		return
	}

	assistant, err := h.pipeline.Classify(c.Request.Context(), req.Prompt)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, composeErrorMessage(err))
		return
	}
	response.OK(c, gin.H{"assistant": assistant})
}

// Generate is the decomposed second stage for callers that already hold an
// assistant tag. Unknown tags generate as sales, mirroring the pipeline.
func (h *AIHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		response.Error(c, http.StatusBadRequest, "prompt is required")
		return
	}

	content, err := h.pipeline.Generate(c.Request.Context(), req.Assistant, req.Prompt)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, composeErrorMessage(err))
		return
	}
	response.OK(c, content)
}

func composeErrorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return "Compose failed"
	}
	return err.Error()
}
