package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"math"
	"reflect"
	"testing"
)

// captureGateway records the order payload instead of calling Razorpay.
type captureGateway struct {
	lastData map[string]interface{}
	calls    int
	err      error
}

func (g *captureGateway) CreateOrder(data map[string]interface{}) (map[string]interface{}, error) {
	g.calls++
	g.lastData = data
	if g.err != nil {
		return nil, g.err
	}
	return map[string]interface{}{
		"id":       "order_test123",
		"entity":   "order",
		"amount":   data["amount"],
		"currency": "INR",
		"receipt":  data["receipt"],
		"status":   "created",
	}, nil
}

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestCreateOrderPaiseConversion(t *testing.T) {
	cases := []struct {
		amount float64
		paise  int64
	}{
		{499.00, 49900},
		{300, 30000},
		{1, 100},
		{0.01, 1},
		{10.555, 1056}, // round half away from zero
		{249.99, 24999},
	}
	for _, tc := range cases {
		gw := &captureGateway{}
		svc := NewDonationService(gw, "secret", "", nil)
		order, err := svc.CreateOrder(tc.amount, "Education", "")
		if err != nil {
			t.Fatalf("CreateOrder(%v): %v", tc.amount, err)
		}
		got, ok := gw.lastData["amount"].(int64)
		if !ok || got != tc.paise {
			t.Errorf("amount %v: gateway got %v paise, want %d", tc.amount, gw.lastData["amount"], tc.paise)
		}
		if cur := gw.lastData["currency"]; cur != "INR" {
			t.Errorf("currency = %v, want INR", cur)
		}
		if order["id"] == "" {
			t.Errorf("order id missing")
		}
	}
}

func TestCreateOrderRejectsInvalidAmount(t *testing.T) {
	for _, amount := range []float64{0, -5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		gw := &captureGateway{}
		svc := NewDonationService(gw, "secret", "", nil)
		_, err := svc.CreateOrder(amount, "", "")
		if !errors.Is(err, ErrAmountRequired) {
			t.Errorf("CreateOrder(%v) err = %v, want ErrAmountRequired", amount, err)
		}
		if gw.calls != 0 {
			t.Errorf("CreateOrder(%v) reached the gateway", amount)
		}
	}
}

func TestCreateOrderNotesCarryCategory(t *testing.T) {
	gw := &captureGateway{}
	svc := NewDonationService(gw, "secret", "", nil)
	if _, err := svc.CreateOrder(300, "Education", "Children Learning Pack"); err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	notes, ok := gw.lastData["notes"].(map[string]interface{})
	if !ok {
		t.Fatalf("notes missing: %v", gw.lastData)
	}
	if notes["category"] != "Education" || notes["subcategory"] != "Children Learning Pack" {
		t.Errorf("notes = %v", notes)
	}
}

func TestCreateOrderGatewayFailure(t *testing.T) {
	gw := &captureGateway{err: errors.New("BAD_REQUEST_ERROR: key invalid")}
	svc := NewDonationService(gw, "secret", "", nil)
	if _, err := svc.CreateOrder(100, "", ""); err == nil {
		t.Fatal("expected error from gateway failure")
	}
}

func TestVerifyValidSignature(t *testing.T) {
	const secret = "test_key_secret"
	svc := NewDonationService(&captureGateway{}, secret, "", nil)

	sig := sign(secret, "order_abc", "pay_xyz")
	res, err := svc.Verify("order_abc", "pay_xyz", sig, "")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !res.OK {
		t.Fatal("valid signature rejected")
	}
	want := "/donate/success?order=order_abc&payment=pay_xyz"
	if res.Redirect != want {
		t.Errorf("redirect = %q, want %q", res.Redirect, want)
	}
}

func TestVerifyTamperedSignature(t *testing.T) {
	const secret = "test_key_secret"
	svc := NewDonationService(&captureGateway{}, secret, "", nil)

	sig := sign(secret, "order_abc", "pay_xyz")
	// flip one character
	tampered := []byte(sig)
	if tampered[0] == 'a' {
		tampered[0] = 'b'
	} else {
		tampered[0] = 'a'
	}
	res, err := svc.Verify("order_abc", "pay_xyz", string(tampered), "")
	if err != nil {
		t.Fatalf("Verify must not error on a bad signature: %v", err)
	}
	if res.OK {
		t.Fatal("tampered signature accepted")
	}
	want := "/donate/failed?order=order_abc"
	if res.Redirect != want {
		t.Errorf("redirect = %q, want %q", res.Redirect, want)
	}
}

func TestVerifyIdempotent(t *testing.T) {
	const secret = "s3cret"
	svc := NewDonationService(&captureGateway{}, secret, "", nil)
	sig := sign(secret, "order_1", "pay_1")

	first, err1 := svc.Verify("order_1", "pay_1", sig, "")
	second, err2 := svc.Verify("order_1", "pay_1", sig, "")
	if err1 != nil || err2 != nil {
		t.Fatalf("Verify errors: %v, %v", err1, err2)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ: %+v vs %+v", first, second)
	}
}

func TestVerifyMissingFields(t *testing.T) {
	// Secret deliberately empty: missing fields must be rejected before any
	// HMAC work, so the configuration error must not surface here.
	svc := NewDonationService(&captureGateway{}, "", "", nil)
	cases := [][3]string{
		{"", "pay_xyz", "sig"},
		{"order_abc", "", "sig"},
		{"order_abc", "pay_xyz", ""},
		{"", "", ""},
	}
	for _, tc := range cases {
		if _, err := svc.Verify(tc[0], tc[1], tc[2], ""); !errors.Is(err, ErrMissingPaymentFields) {
			t.Errorf("Verify(%q,%q,%q) err = %v, want ErrMissingPaymentFields", tc[0], tc[1], tc[2], err)
		}
	}
}

func TestVerifyFailsClosedWithoutSecret(t *testing.T) {
	svc := NewDonationService(&captureGateway{}, "", "", nil)
	res, err := svc.Verify("order_abc", "pay_xyz", "deadbeef", "")
	if !errors.Is(err, ErrSecretNotConfigured) {
		t.Fatalf("err = %v, want ErrSecretNotConfigured", err)
	}
	if res != nil {
		t.Errorf("result must be nil when unconfigured, got %+v", res)
	}
}

func TestVerifyRedirectBaseOverride(t *testing.T) {
	const secret = "k"
	svc := NewDonationService(&captureGateway{}, secret, "/donate", nil)
	sig := sign(secret, "order_abc", "pay_xyz")

	res, err := svc.Verify("order_abc", "pay_xyz", sig, "/give")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	want := "/give/success?order=order_abc&payment=pay_xyz"
	if res.Redirect != want {
		t.Errorf("redirect = %q, want %q", res.Redirect, want)
	}
}
