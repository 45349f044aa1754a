package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"math"
	"net/url"
	"strings"
	"time"

	"asha/internal/domain"
	"asha/internal/models"
	"asha/internal/repository"
	"asha/pkg/razorpay"

	"github.com/google/uuid"
)

var (
	ErrAmountRequired       = errors.New("Amount (in INR) is required")
	ErrMissingPaymentFields = errors.New("Missing payment fields")
	ErrSecretNotConfigured  = errors.New("payment verification not configured")
)

// DonationService owns the payment lifecycle: minting gateway orders and
// authenticating payment completions. Razorpay is the system of record for
// transactions; the local donations table is bookkeeping only and is never
// consulted when deciding whether a signature is valid.
type DonationService struct {
	gateway      razorpay.Gateway
	keySecret    string
	redirectBase string
	donationRepo *repository.DonationRepository
}

// NewDonationService wires the service. donationRepo may be nil (no bookkeeping).
func NewDonationService(gateway razorpay.Gateway, keySecret, redirectBase string, donationRepo *repository.DonationRepository) *DonationService {
	if redirectBase == "" {
		redirectBase = "/donate"
	}
	return &DonationService{
		gateway:      gateway,
		keySecret:    keySecret,
		redirectBase: redirectBase,
		donationRepo: donationRepo,
	}
}

// CreateOrder mints a Razorpay order for amountINR rupees. The paise amount is
// round(amount*100), rounding half away from zero; donors type rupee amounts
// with at most two decimals, so halves at the paise level do not occur in
// practice but the rule is fixed either way.
//
// A failed call is reported immediately; the caller may simply try again, which
// produces a new order. Abandoned orders are orphaned at the gateway and never
// verified.
func (s *DonationService) CreateOrder(amountINR float64, category, subcategory string) (map[string]interface{}, error) {
	if math.IsNaN(amountINR) || math.IsInf(amountINR, 0) || amountINR <= 0 {
		return nil, ErrAmountRequired
	}
	paise := int64(math.Round(amountINR * 100))
	if paise <= 0 {
		return nil, ErrAmountRequired
	}
	receipt := "don_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:20]
	data := map[string]interface{}{
		"amount":   paise,
		"currency": "INR",
		"receipt":  receipt,
		"notes": map[string]interface{}{
			"category":    category,
			"subcategory": subcategory,
		},
	}
	order, err := s.gateway.CreateOrder(data)
	if err != nil {
		return nil, fmt.Errorf("razorpay order: %w", err)
	}
	if s.donationRepo != nil {
		orderID, _ := order["id"].(string)
		d := &models.Donation{
			OrderID:     orderID,
			Receipt:     receipt,
			AmountPaise: paise,
			Currency:    "INR",
			Category:    category,
			Subcategory: subcategory,
			Status:      domain.DonationCreated,
		}
		if err := s.donationRepo.Create(d); err != nil {
			// Bookkeeping only; the order is live at the gateway regardless.
			log.Printf("[DONATION] record order %s: %v", orderID, err)
		}
	}
	return order, nil
}

// VerificationResult is the outcome of a completion check. Redirect is a
// relative URL the client should navigate to; OK false is a handled outcome,
// not an error.
type VerificationResult struct {
	OK       bool   `json:"ok"`
	Redirect string `json:"redirect"`
}

// Verify authenticates a claimed payment completion. A completion is genuine
// iff hex(HMAC-SHA256(secret, orderID+"|"+paymentID)) equals the submitted
// signature; the comparison is constant-time. Pure and idempotent: no state is
// read or written, and identical inputs always produce identical results.
//
// The gateway is not contacted to double-check captured state; a correctly
// signed payload is trusted as-is, so a replayed signature for an order that
// was later refunded at the gateway still verifies.
func (s *DonationService) Verify(orderID, paymentID, signature, redirectBase string) (*VerificationResult, error) {
	if orderID == "" || paymentID == "" || signature == "" {
		return nil, ErrMissingPaymentFields
	}
	if s.keySecret == "" {
		return nil, ErrSecretNotConfigured
	}
	mac := hmac.New(sha256.New, []byte(s.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	base := redirectBase
	if base == "" {
		base = s.redirectBase
	}
	if hmac.Equal([]byte(expected), []byte(signature)) {
		q := url.Values{}
		q.Set("order", orderID)
		q.Set("payment", paymentID)
		return &VerificationResult{OK: true, Redirect: base + "/success?" + q.Encode()}, nil
	}
	q := url.Values{}
	q.Set("order", orderID)
	return &VerificationResult{OK: false, Redirect: base + "/failed?" + q.Encode()}, nil
}

// MarkCompleted records a verified payment against the bookkeeping row.
// Best effort and idempotent: a row already COMPLETED is left alone, and a
// missing row (e.g. server restarted between order and verify) is not an error.
// Returns the donation when a row was newly completed.
func (s *DonationService) MarkCompleted(orderID, paymentID string) *models.Donation {
	if s.donationRepo == nil {
		return nil
	}
	d, err := s.donationRepo.GetByOrderID(orderID)
	if err != nil || d == nil {
		return nil
	}
	if d.Status == domain.DonationCompleted {
		return nil
	}
	now := time.Now()
	d.Status = domain.DonationCompleted
	d.PaymentID = paymentID
	d.CompletedAt = &now
	if err := s.donationRepo.Update(d); err != nil {
		log.Printf("[DONATION] mark completed %s: %v", orderID, err)
		return nil
	}
	return d
}
