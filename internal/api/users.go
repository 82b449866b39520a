// ABOUTME: Platform user administration against /admin/users

package api

import "context"

// PlatformUser is an end user of the learning platform, as listed by the
// admin API. Distinct from User, which is the console operator's identity.
type PlatformUser struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// ListUsers returns all platform users.
func (c *Client) ListUsers(ctx context.Context) ([]PlatformUser, error) {
	body, err := c.get(ctx, "/admin/users")
	if err != nil {
		return nil, err
	}
	return decodeList[PlatformUser](body, "users")
}

// SetUserRole changes a user's role ("user" or "admin").
func (c *Client) SetUserRole(ctx context.Context, id, role string) error {
	_, err := c.put(ctx, "/admin/users/"+id+"/role", map[string]string{"role": role})
	return err
}
