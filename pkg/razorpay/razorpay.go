package razorpay

import (
	rzp "github.com/razorpay/razorpay-go"
)

// Gateway is the slice of the Razorpay API the donation flow needs. Handlers
// and services depend on this interface so tests can swap in a stub.
type Gateway interface {
	CreateOrder(data map[string]interface{}) (map[string]interface{}, error)
}

// Client wraps the official Razorpay SDK.
type Client struct {
	rz *rzp.Client
}

// NewClient builds a Gateway from the key pair. keySecret authenticates
// server-side API calls and must never reach the browser.
func NewClient(keyID, keySecret string) *Client {
	return &Client{rz: rzp.NewClient(keyID, keySecret)}
}

// CreateOrder creates an order with the Razorpay Orders API. data carries
// amount (paise), currency, receipt and notes; the second argument to the SDK
// call is optional headers, not needed here.
func (c *Client) CreateOrder(data map[string]interface{}) (map[string]interface{}, error) {
	return c.rz.Order.Create(data, nil)
}
