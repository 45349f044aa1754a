package handler

import (
	"net/http"
	"strconv"

	"asha/internal/models"
	"asha/internal/repository"
	"asha/internal/service"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactRepo *repository.ContactRepository
	forwardSvc  *service.ForwardService
}

func NewContactHandler(contactRepo *repository.ContactRepository, forwardSvc *service.ForwardService) *ContactHandler {
	return &ContactHandler{contactRepo: contactRepo, forwardSvc: forwardSvc}
}

type contactRequest struct {
	Name    string `json:"name" binding:"required,max=120"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"max=200"`
	Message string `json:"message" binding:"required,max=4000"`
}

// Create stores a contact message and forwards it to the configured webhook.
func (h *ContactHandler) Create(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.contactRepo.Create(m); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save message"})
		return
	}
	if err := h.forwardSvc.ForwardContact(c.Request.Context(), m); err == nil {
		m.Forwarded = true
		_ = h.contactRepo.Update(m)
	}
	c.JSON(http.StatusCreated, gin.H{
		"status":  "ok",
		"message": "Thanks for reaching out. We will get back to you shortly.",
	})
}

func (h *ContactHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	messages, err := h.contactRepo.List(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
