package handler

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"asha/internal/service"

	"github.com/gin-gonic/gin"
)

const testSecret = "test_key_secret"

type fakeGateway struct {
	nextID string
	err    error
}

func (g *fakeGateway) CreateOrder(data map[string]interface{}) (map[string]interface{}, error) {
	if g.err != nil {
		return nil, g.err
	}
	id := g.nextID
	if id == "" {
		id = "order_fake1"
	}
	return map[string]interface{}{
		"id":       id,
		"entity":   "order",
		"amount":   data["amount"],
		"currency": "INR",
		"receipt":  data["receipt"],
		"status":   "created",
	}, nil
}

func newTestRouter(gw *fakeGateway, secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewDonationService(gw, secret, "", nil)
	h := NewDonationHandler(svc, nil, nil, nil)
	r := gin.New()
	r.POST("/api/donations/order", h.CreateOrder)
	r.POST("/api/donations/verify", h.Verify)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signFor(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestCreateOrderEndpoint(t *testing.T) {
	r := newTestRouter(&fakeGateway{}, testSecret)
	w := postJSON(t, r, "/api/donations/order", gin.H{"amount": 499.00, "category": "Education"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Order map[string]interface{} `json:"order"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Order["id"] == "" {
		t.Error("order id missing")
	}
	if amt, _ := resp.Order["amount"].(float64); int64(amt) != 49900 {
		t.Errorf("amount = %v, want 49900 paise", resp.Order["amount"])
	}
	if resp.Order["currency"] != "INR" {
		t.Errorf("currency = %v", resp.Order["currency"])
	}
}

func TestCreateOrderEndpointRejectsMissingAmount(t *testing.T) {
	r := newTestRouter(&fakeGateway{}, testSecret)
	for _, body := range []gin.H{{}, {"amount": 0}, {"amount": -5}} {
		w := postJSON(t, r, "/api/donations/order", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %v: status = %d, want 400", body, w.Code)
		}
		if !strings.Contains(w.Body.String(), "Amount (in INR) is required") {
			t.Errorf("body %v: message = %s", body, w.Body.String())
		}
	}
}

func TestCreateOrderEndpointGatewayDown(t *testing.T) {
	r := newTestRouter(&fakeGateway{err: fmt.Errorf("connection refused")}, testSecret)
	w := postJSON(t, r, "/api/donations/order", gin.H{"amount": 100})
	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", w.Code)
	}
}

func TestVerifyEndpointValid(t *testing.T) {
	r := newTestRouter(&fakeGateway{}, testSecret)
	w := postJSON(t, r, "/api/donations/verify", gin.H{
		"razorpay_order_id":   "order_abc",
		"razorpay_payment_id": "pay_xyz",
		"razorpay_signature":  signFor("order_abc", "pay_xyz"),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		OK       bool   `json:"ok"`
		Redirect string `json:"redirect"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.OK {
		t.Fatal("valid completion rejected")
	}
	if resp.Redirect != "/donate/success?order=order_abc&payment=pay_xyz" {
		t.Errorf("redirect = %q", resp.Redirect)
	}
}

func TestVerifyEndpointBadSignature(t *testing.T) {
	r := newTestRouter(&fakeGateway{}, testSecret)
	w := postJSON(t, r, "/api/donations/verify", gin.H{
		"razorpay_order_id":   "order_abc",
		"razorpay_payment_id": "pay_xyz",
		"razorpay_signature":  "0000000000000000000000000000000000000000000000000000000000000000",
	})
	// A forged completion is a handled outcome, not an HTTP error.
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		OK       bool   `json:"ok"`
		Redirect string `json:"redirect"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.OK {
		t.Fatal("forged completion accepted")
	}
	if resp.Redirect != "/donate/failed?order=order_abc" {
		t.Errorf("redirect = %q", resp.Redirect)
	}
}

func TestVerifyEndpointMissingFields(t *testing.T) {
	r := newTestRouter(&fakeGateway{}, testSecret)
	w := postJSON(t, r, "/api/donations/verify", gin.H{
		"razorpay_payment_id": "pay_xyz",
		"razorpay_signature":  "sig",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Missing payment fields") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestVerifyEndpointFailsClosedWithoutSecret(t *testing.T) {
	r := newTestRouter(&fakeGateway{}, "")
	w := postJSON(t, r, "/api/donations/verify", gin.H{
		"razorpay_order_id":   "order_abc",
		"razorpay_payment_id": "pay_xyz",
		"razorpay_signature":  "deadbeef",
	})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

// Full flow: mint an order for 300 rupees, simulate the gateway completing it,
// verify, and check the redirect carries both identifiers unmodified.
func TestDonationFlowEndToEnd(t *testing.T) {
	r := newTestRouter(&fakeGateway{nextID: "order_e2e"}, testSecret)

	w := postJSON(t, r, "/api/donations/order", gin.H{
		"amount":      300,
		"category":    "Education",
		"subcategory": "Children Learning Pack",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("order status = %d, body = %s", w.Code, w.Body.String())
	}
	var orderResp struct {
		Order map[string]interface{} `json:"order"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &orderResp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	orderID, _ := orderResp.Order["id"].(string)
	if orderID != "order_e2e" {
		t.Fatalf("order id = %q", orderID)
	}
	if amt, _ := orderResp.Order["amount"].(float64); int64(amt) != 30000 {
		t.Fatalf("amount = %v, want 30000", orderResp.Order["amount"])
	}

	// The widget would hand these back after the donor pays.
	paymentID := "pay_e2e001"
	w = postJSON(t, r, "/api/donations/verify", gin.H{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
		"razorpay_signature":  signFor(orderID, paymentID),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("verify status = %d, body = %s", w.Code, w.Body.String())
	}
	var verifyResp struct {
		OK       bool   `json:"ok"`
		Redirect string `json:"redirect"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &verifyResp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !verifyResp.OK {
		t.Fatal("end-to-end verification failed")
	}
	if !strings.Contains(verifyResp.Redirect, "order=order_e2e") || !strings.Contains(verifyResp.Redirect, "payment=pay_e2e001") {
		t.Errorf("redirect = %q, want both identifiers", verifyResp.Redirect)
	}
}
