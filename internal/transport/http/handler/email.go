package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"mailsmith/internal/model"
	"mailsmith/internal/transport/http/response"
)

// DraftStore is the persistence surface the email endpoints need.
type DraftStore interface {
	Create(draft *model.Draft) error
	ListNewestFirst() ([]model.Draft, error)
}

type EmailHandler struct {
	store DraftStore
}

type CreateDraftRequest struct {
	To      string `json:"to"`
	CC      string `json:"cc"`
	BCC     string `json:"bcc"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func NewEmailHandler(store DraftStore) *EmailHandler {
	return &EmailHandler{store: store}
}

// List returns every draft, newest first. An empty store is a 200 with an
// empty array, not an error.
func (h *EmailHandler) List(c *gin.Context) {
	drafts, err := h.store.ListNewestFirst()
	if err != nil {
		log.Printf("list drafts failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "Failed to get emails")
		return
	}
	if drafts == nil {
		drafts = []model.Draft{}
	}
	response.OK(c, drafts)
}

// Create validates the one required field and inserts the draft. Recipients
// are free text; no structural validation happens here or in the store.
func (h *EmailHandler) Create(c *gin.Context) {
	var req CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if req.Subject == "" {
		response.Error(c, http.StatusBadRequest, "subject is required")
		return
	}

	draft := &model.Draft{
		To:      req.To,
		CC:      req.CC,
		BCC:     req.BCC,
		Subject: req.Subject,
		Body:    req.Body,
	}
	if err := h.store.Create(draft); err != nil {
		log.Printf("insert draft failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "Failed to insert email")
		return
	}

	response.Created(c, draft)
}
