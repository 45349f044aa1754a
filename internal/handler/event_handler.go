package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"asha/internal/models"
	"asha/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EventHandler struct {
	eventRepo *repository.EventRepository
}

func NewEventHandler(eventRepo *repository.EventRepository) *EventHandler {
	return &EventHandler{eventRepo: eventRepo}
}

// ListUpcoming returns published events that have not ended.
func (h *EventHandler) ListUpcoming(c *gin.Context) {
	events, err := h.eventRepo.ListUpcoming()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (h *EventHandler) GetPublic(c *gin.Context) {
	e, err := h.eventRepo.GetBySlug(c.Param("slug"))
	if err != nil || !e.Published {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *EventHandler) ListAll(c *gin.Context) {
	events, err := h.eventRepo.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

type eventRequest struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Slug        string  `json:"slug" binding:"required,max=200"`
	Description string  `json:"description"`
	Location    string  `json:"location" binding:"max=255"`
	StartsAt    string  `json:"starts_at" binding:"required"` // RFC 3339
	EndsAt      *string `json:"ends_at"`
	ImageURL    string  `json:"image_url"`
	Published   bool    `json:"published"`
}

func (h *EventHandler) Create(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid starts_at (use RFC 3339)"})
		return
	}
	e := &models.Event{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    startsAt,
		ImageURL:    req.ImageURL,
		Published:   req.Published,
	}
	if req.EndsAt != nil {
		endsAt, err := time.Parse(time.RFC3339, *req.EndsAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ends_at (use RFC 3339)"})
			return
		}
		e.EndsAt = &endsAt
	}
	if existing, _ := h.eventRepo.GetBySlug(req.Slug); existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "slug already in use"})
		return
	}
	if err := h.eventRepo.Create(e); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *EventHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	e, err := h.eventRepo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	var req struct {
		Title       *string `json:"title"`
		Slug        *string `json:"slug"`
		Description *string `json:"description"`
		Location    *string `json:"location"`
		StartsAt    *string `json:"starts_at"`
		EndsAt      *string `json:"ends_at"`
		ImageURL    *string `json:"image_url"`
		Published   *bool   `json:"published"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title != nil {
		e.Title = *req.Title
	}
	if req.Slug != nil {
		e.Slug = *req.Slug
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Location != nil {
		e.Location = *req.Location
	}
	if req.StartsAt != nil {
		startsAt, err := time.Parse(time.RFC3339, *req.StartsAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid starts_at (use RFC 3339)"})
			return
		}
		e.StartsAt = startsAt
	}
	if req.EndsAt != nil {
		endsAt, err := time.Parse(time.RFC3339, *req.EndsAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ends_at (use RFC 3339)"})
			return
		}
		e.EndsAt = &endsAt
	}
	if req.ImageURL != nil {
		e.ImageURL = *req.ImageURL
	}
	if req.Published != nil {
		e.Published = *req.Published
	}
	if err := h.eventRepo.Update(e); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *EventHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.eventRepo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
