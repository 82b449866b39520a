// ABOUTME: Subscription plan CRUD against /admin/subscriptions

package api

import "context"

// Plan is a purchasable subscription plan.
type Plan struct {
	ID          string  `json:"_id"`
	PlanType    string  `json:"planType"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// PlanInput is the create/update payload for a subscription plan.
type PlanInput struct {
	PlanType    string  `json:"planType"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// ListPlans returns all subscription plans.
func (c *Client) ListPlans(ctx context.Context) ([]Plan, error) {
	body, err := c.get(ctx, "/admin/subscriptions")
	if err != nil {
		return nil, err
	}
	return decodeList[Plan](body, "subscriptions", "plans")
}

// CreatePlan adds a new subscription plan.
func (c *Client) CreatePlan(ctx context.Context, input PlanInput) error {
	_, err := c.post(ctx, "/admin/subscriptions", input)
	return err
}

// UpdatePlan replaces the plan with the given id.
func (c *Client) UpdatePlan(ctx context.Context, id string, input PlanInput) error {
	_, err := c.put(ctx, "/admin/subscriptions/"+id, input)
	return err
}

// DeletePlan removes the plan with the given id.
func (c *Client) DeletePlan(ctx context.Context, id string) error {
	return c.delete(ctx, "/admin/subscriptions/"+id)
}
