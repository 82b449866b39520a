// ABOUTME: Legal content pages (privacy policy, terms, refund policy)
// ABOUTME: Each page keeps a version history; one revision is active at a time

package api

import (
	"context"
	"fmt"
)

// PolicyType selects which legal page an operation targets.
type PolicyType string

const (
	PolicyPrivacy PolicyType = "privacy-policy"
	PolicyTerms   PolicyType = "terms-conditions"
	PolicyRefund  PolicyType = "return-refund"
)

// ParsePolicyType maps the user-facing names to a PolicyType.
func ParsePolicyType(s string) (PolicyType, error) {
	switch s {
	case "privacy", "privacy-policy":
		return PolicyPrivacy, nil
	case "terms", "terms-conditions":
		return PolicyTerms, nil
	case "refund", "return-refund":
		return PolicyRefund, nil
	default:
		return "", fmt.Errorf("unknown policy type %q (privacy, terms, or refund)", s)
	}
}

// Policy is one revision of a legal content page.
type Policy struct {
	ID        string `json:"_id"`
	Content   string `json:"content"`
	Version   string `json:"version"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// ListPolicies returns all revisions of a legal page, newest first per the
// backend's ordering.
func (c *Client) ListPolicies(ctx context.Context, t PolicyType) ([]Policy, error) {
	body, err := c.get(ctx, "/content/admin/"+string(t))
	if err != nil {
		return nil, err
	}
	return decodeList[Policy](body, "policies")
}

// ActivePolicy returns the revision currently served to end users, or the
// most recent one when none is flagged active. Returns nil when the page
// has no revisions yet.
func (c *Client) ActivePolicy(ctx context.Context, t PolicyType) (*Policy, error) {
	policies, err := c.ListPolicies(ctx, t)
	if err != nil {
		return nil, err
	}
	if len(policies) == 0 {
		return nil, nil
	}
	for i := range policies {
		if policies[i].IsActive {
			return &policies[i], nil
		}
	}
	return &policies[0], nil
}

// PublishPolicy uploads a new revision of a legal page.
func (c *Client) PublishPolicy(ctx context.Context, t PolicyType, content, version string) error {
	_, err := c.post(ctx, "/content/admin/"+string(t), map[string]string{
		"content": content,
		"version": version,
	})
	return err
}
