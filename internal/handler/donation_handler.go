package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"asha/internal/models"
	"asha/internal/repository"
	"asha/internal/service"
	"asha/internal/ws"

	"github.com/gin-gonic/gin"
)

// DonationHandler exposes the two-endpoint payment core: mint an order, then
// authenticate the completion the checkout widget hands back.
type DonationHandler struct {
	svc          *service.DonationService
	donationRepo *repository.DonationRepository
	auditRepo    *repository.AuditLogRepository
	feed         *ws.FeedHub
}

func NewDonationHandler(svc *service.DonationService, donationRepo *repository.DonationRepository, auditRepo *repository.AuditLogRepository, feed *ws.FeedHub) *DonationHandler {
	return &DonationHandler{svc: svc, donationRepo: donationRepo, auditRepo: auditRepo, feed: feed}
}

type createOrderRequest struct {
	Amount      float64 `json:"amount"` // rupees; validated in the service
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
}

// CreateOrder mints a Razorpay order for the requested rupee amount.
func (h *DonationHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrAmountRequired.Error()})
		return
	}
	order, err := h.svc.CreateOrder(req.Amount, req.Category, req.Subcategory)
	if err != nil {
		if errors.Is(err, service.ErrAmountRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[DONATION] create order failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

type verifyRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	RedirectBase      string `json:"redirectBase"`
}

// Verify authenticates a claimed payment completion and returns the redirect
// target. A bad signature is a handled outcome (200, ok:false), never a 5xx,
// so the client can route the donor to the failure page instead of crashing.
func (h *DonationHandler) Verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrMissingPaymentFields.Error()})
		return
	}
	result, err := h.svc.Verify(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, req.RedirectBase)
	if err != nil {
		if errors.Is(err, service.ErrMissingPaymentFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[DONATION] verify unavailable: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if result.OK {
		if d := h.svc.MarkCompleted(req.RazorpayOrderID, req.RazorpayPaymentID); d != nil {
			if h.feed != nil && d.CompletedAt != nil {
				h.feed.Publish(d.AmountPaise, d.Category, *d.CompletedAt)
			}
			h.audit(c, "donation_completed", req.RazorpayOrderID)
		}
	} else {
		log.Printf("[DONATION] signature mismatch order=%s payment=%s", req.RazorpayOrderID, req.RazorpayPaymentID)
	}
	c.JSON(http.StatusOK, gin.H{"ok": result.OK, "redirect": result.Redirect})
}

// Stats is a public widget feed: total raised and completed-donation count.
func (h *DonationHandler) Stats(c *gin.Context) {
	total, count, err := h.donationRepo.Totals()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stats unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total_paise": total,
		"count":       count,
	})
}

// List shows donation bookkeeping rows to CMS users.
func (h *DonationHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	donations, err := h.donationRepo.List(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"donations": donations})
}

func (h *DonationHandler) audit(c *gin.Context, action, resourceID string) {
	if h.auditRepo == nil {
		return
	}
	_ = h.auditRepo.Create(&models.AuditLog{
		Action:     action,
		Resource:   "donation",
		ResourceID: resourceID,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})
}
