package handler

import (
	"net/http"
	"strconv"

	"asha/internal/domain"
	"asha/internal/models"
	"asha/internal/repository"
	"asha/internal/service"

	"github.com/gin-gonic/gin"
)

type VolunteerHandler struct {
	volunteerRepo *repository.VolunteerRepository
	forwardSvc    *service.ForwardService
}

func NewVolunteerHandler(volunteerRepo *repository.VolunteerRepository, forwardSvc *service.ForwardService) *VolunteerHandler {
	return &VolunteerHandler{volunteerRepo: volunteerRepo, forwardSvc: forwardSvc}
}

type volunteerRequest struct {
	Name     string `json:"name" binding:"required,max=120"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"max=20"`
	City     string `json:"city" binding:"max=120"`
	Interest string `json:"interest" binding:"max=120"`
	Message  string `json:"message" binding:"max=2000"`
}

// Create stores a volunteer application and forwards it to the configured
// spreadsheet webhook. The forward is best effort; the visitor gets a success
// response once the application is stored.
func (h *VolunteerHandler) Create(c *gin.Context) {
	var req volunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	v := &models.Volunteer{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		City:     req.City,
		Interest: req.Interest,
		Message:  req.Message,
		Status:   domain.VolunteerStatusNew,
	}
	if err := h.volunteerRepo.Create(v); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save application"})
		return
	}
	if err := h.forwardSvc.ForwardVolunteer(c.Request.Context(), v); err == nil {
		v.Forwarded = true
		_ = h.volunteerRepo.Update(v)
	}
	c.JSON(http.StatusCreated, gin.H{
		"status":  "ok",
		"message": "Thank you for signing up! Our team will reach out soon.",
	})
}

// List shows applications to CMS users.
func (h *VolunteerHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	volunteers, err := h.volunteerRepo.List(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"volunteers": volunteers})
}

// UpdateStatus lets CMS users track outreach.
func (h *VolunteerHandler) UpdateStatus(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req struct {
		Status string `json:"status" binding:"required,oneof=NEW CONTACTED"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	v, err := h.volunteerRepo.GetByID(uint(id))
	if err != nil || v == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "application not found"})
		return
	}
	v.Status = req.Status
	if err := h.volunteerRepo.Update(v); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, v)
}
