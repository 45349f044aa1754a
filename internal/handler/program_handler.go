package handler

import (
	"errors"
	"net/http"
	"strconv"

	"asha/internal/models"
	"asha/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProgramHandler struct {
	programRepo *repository.ProgramRepository
}

func NewProgramHandler(programRepo *repository.ProgramRepository) *ProgramHandler {
	return &ProgramHandler{programRepo: programRepo}
}

// ListPublic returns published programs for the site.
func (h *ProgramHandler) ListPublic(c *gin.Context) {
	programs, err := h.programRepo.ListPublished()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"programs": programs})
}

// GetPublic returns one published program by slug.
func (h *ProgramHandler) GetPublic(c *gin.Context) {
	p, err := h.programRepo.GetBySlug(c.Param("slug"))
	if err != nil || !p.Published {
		c.JSON(http.StatusNotFound, gin.H{"error": "program not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListAll returns all programs, drafts included (CMS).
func (h *ProgramHandler) ListAll(c *gin.Context) {
	programs, err := h.programRepo.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"programs": programs})
}

type programRequest struct {
	Title        string `json:"title" binding:"required,max=200"`
	Slug         string `json:"slug" binding:"required,max=200"`
	Summary      string `json:"summary" binding:"max=500"`
	Body         string `json:"body"`
	Category     string `json:"category" binding:"max=80"`
	ImageURL     string `json:"image_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	Published    bool   `json:"published"`
	SortOrder    int    `json:"sort_order"`
}

func (h *ProgramHandler) Create(c *gin.Context) {
	var req programRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if existing, _ := h.programRepo.GetBySlug(req.Slug); existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "slug already in use"})
		return
	}
	p := &models.Program{
		Title:        req.Title,
		Slug:         req.Slug,
		Summary:      req.Summary,
		Body:         req.Body,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
		ThumbnailURL: req.ThumbnailURL,
		Published:    req.Published,
		SortOrder:    req.SortOrder,
	}
	if err := h.programRepo.Create(p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProgramHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	p, err := h.programRepo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "program not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	var req struct {
		Title        *string `json:"title"`
		Slug         *string `json:"slug"`
		Summary      *string `json:"summary"`
		Body         *string `json:"body"`
		Category     *string `json:"category"`
		ImageURL     *string `json:"image_url"`
		ThumbnailURL *string `json:"thumbnail_url"`
		Published    *bool   `json:"published"`
		SortOrder    *int    `json:"sort_order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Slug != nil {
		p.Slug = *req.Slug
	}
	if req.Summary != nil {
		p.Summary = *req.Summary
	}
	if req.Body != nil {
		p.Body = *req.Body
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.ImageURL != nil {
		p.ImageURL = *req.ImageURL
	}
	if req.ThumbnailURL != nil {
		p.ThumbnailURL = *req.ThumbnailURL
	}
	if req.Published != nil {
		p.Published = *req.Published
	}
	if req.SortOrder != nil {
		p.SortOrder = *req.SortOrder
	}
	if err := h.programRepo.Update(p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProgramHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.programRepo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
