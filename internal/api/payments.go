// ABOUTME: Payment records and revenue statistics

package api

import "context"

// Payment is one payment transaction forwarded by the payment provider.
type Payment struct {
	ID              string  `json:"_id"`
	User            UserRef `json:"userId"`
	PlanType        string  `json:"planType"`
	Amount          float64 `json:"amount"`
	Status          string  `json:"status"`
	Method          string  `json:"method,omitempty"`
	RazorpayOrderID string  `json:"razorpayOrderId,omitempty"`
	CreatedAt       string  `json:"createdAt,omitempty"`
}

// PaymentStats summarizes payment volume and revenue.
type PaymentStats struct {
	TotalPayments int           `json:"totalPayments"`
	TotalRevenue  float64       `json:"totalRevenue"`
	PlanStats     []PlanRevenue `json:"planStats,omitempty"`
}

// PlanRevenue is revenue attributed to one plan type.
type PlanRevenue struct {
	PlanType string  `json:"_id"`
	Count    int     `json:"count"`
	Revenue  float64 `json:"revenue"`
}

// ListPayments returns all payment records.
func (c *Client) ListPayments(ctx context.Context) ([]Payment, error) {
	body, err := c.get(ctx, "/admin/payments")
	if err != nil {
		return nil, err
	}
	return decodeList[Payment](body, "payments")
}

// PaymentStats returns aggregated payment metrics.
func (c *Client) PaymentStats(ctx context.Context) (*PaymentStats, error) {
	body, err := c.get(ctx, "/admin/payment-stats")
	if err != nil {
		return nil, err
	}
	return decodeObject[PaymentStats](body, "stats")
}
