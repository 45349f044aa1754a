package razorpay

import (
	"fmt"
	"time"
)

// StubGateway mints fake orders without talking to Razorpay. Used in
// development when no keys are configured, and in tests.
type StubGateway struct {
	// Err, when set, is returned from every call (simulates gateway outage).
	Err error
}

func (s *StubGateway) CreateOrder(data map[string]interface{}) (map[string]interface{}, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	order := map[string]interface{}{
		"id":       fmt.Sprintf("order_stub%d", time.Now().UnixNano()),
		"entity":   "order",
		"currency": "INR",
		"status":   "created",
	}
	for _, k := range []string{"amount", "receipt", "notes"} {
		if v, ok := data[k]; ok {
			order[k] = v
		}
	}
	return order, nil
}
