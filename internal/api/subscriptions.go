// ABOUTME: User subscriptions, trial management, and subscription analytics

package api

import (
	"context"
	"encoding/json"
	"fmt"
)

// UserRef is a reference to a platform user. The backend sometimes returns
// a bare id string and sometimes a populated user object.
type UserRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UnmarshalJSON accepts either form of the reference.
func (u *UserRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*u = UserRef{ID: id}
		return nil
	}

	type alias UserRef
	var populated alias
	if err := json.Unmarshal(data, &populated); err != nil {
		return fmt.Errorf("user reference is neither a string nor an object")
	}
	*u = UserRef(populated)
	return nil
}

// Subscription is one user's subscription record.
type Subscription struct {
	ID            string  `json:"_id"`
	User          UserRef `json:"userId"`
	PlanType      string  `json:"planType"`
	Status        string  `json:"status"` // trial, active, expired, cancelled
	PaymentStatus string  `json:"paymentStatus,omitempty"`
	TrialEndDate  string  `json:"trialEndDate,omitempty"`
	EndDate       string  `json:"endDate,omitempty"`
	CreatedAt     string  `json:"createdAt,omitempty"`
}

// SubscriptionAnalytics summarizes subscription activity.
type SubscriptionAnalytics struct {
	TotalSubscriptions   int             `json:"totalSubscriptions"`
	ActiveSubscriptions  int             `json:"activeSubscriptions"`
	TrialSubscriptions   int             `json:"trialSubscriptions"`
	PlanDistribution     []PlanBucket    `json:"planDistribution,omitempty"`
	MonthlySubscriptions []MonthlyBucket `json:"monthlySubscriptions,omitempty"`
}

// PlanBucket counts subscriptions per plan type.
type PlanBucket struct {
	PlanType string `json:"_id"`
	Count    int    `json:"count"`
}

// MonthlyBucket counts subscriptions started in a given month.
type MonthlyBucket struct {
	Month string `json:"_id"`
	Count int    `json:"count"`
}

// TrialActionExtend and TrialActionEnd are the accepted trial actions.
const (
	TrialActionExtend = "extend"
	TrialActionEnd    = "end"
)

// ListSubscriptions returns all user subscriptions.
func (c *Client) ListSubscriptions(ctx context.Context) ([]Subscription, error) {
	body, err := c.get(ctx, "/admin/user-subscriptions")
	if err != nil {
		return nil, err
	}
	return decodeList[Subscription](body, "subscriptions")
}

// SubscriptionAnalytics returns aggregated subscription metrics.
func (c *Client) SubscriptionAnalytics(ctx context.Context) (*SubscriptionAnalytics, error) {
	body, err := c.get(ctx, "/admin/subscription-analytics")
	if err != nil {
		return nil, err
	}
	return decodeObject[SubscriptionAnalytics](body, "analytics")
}

// ManageTrial extends or ends a user's trial period.
func (c *Client) ManageTrial(ctx context.Context, userID, action string, days int) error {
	if action != TrialActionExtend && action != TrialActionEnd {
		return fmt.Errorf("invalid trial action %q (must be %s or %s)", action, TrialActionExtend, TrialActionEnd)
	}
	_, err := c.put(ctx, "/admin/manage-trial/"+userID, map[string]any{
		"action": action,
		"days":   days,
	})
	return err
}
