package razorpay

import (
	"errors"
	"testing"
)

func TestStubGatewayEchoesOrderFields(t *testing.T) {
	gw := &StubGateway{}
	order, err := gw.CreateOrder(map[string]interface{}{
		"amount":   int64(49900),
		"currency": "INR",
		"receipt":  "don_abc",
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if order["amount"] != int64(49900) || order["receipt"] != "don_abc" {
		t.Errorf("order = %v", order)
	}
	id, _ := order["id"].(string)
	if id == "" {
		t.Error("order id missing")
	}
}

func TestStubGatewayError(t *testing.T) {
	gw := &StubGateway{Err: errors.New("gateway down")}
	if _, err := gw.CreateOrder(map[string]interface{}{"amount": int64(100)}); err == nil {
		t.Fatal("expected error")
	}
}
