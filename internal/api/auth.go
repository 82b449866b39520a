// ABOUTME: Authentication endpoints: login and token verification
// ABOUTME: Login bypasses the eviction path since a 401 there means bad credentials

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
)

// RoleAdmin is the only role allowed to hold a console session.
const RoleAdmin = "admin"

// User is the authenticated principal returned by the login endpoint.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// LoginResult is the credential/identity pair issued on successful login.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Login exchanges credentials for a token and identity. The token is not
// retained here; callers decide whether the session may be kept.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if c.baseURL == "" {
		return nil, protocolError("API base URL is not configured")
	}

	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, protocolError("failed to encode credentials")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(payload))
	if err != nil {
		return nil, protocolError("failed to create login request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.requestError(ctx, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// fall through to decode
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusNotFound:
		return nil, authenticationError(resp.StatusCode, "login rejected")
	case resp.StatusCode >= 500:
		var errBody struct {
			Message string `json:"message"`
		}
		json.NewDecoder(resp.Body).Decode(&errBody)
		return nil, serverError(resp.StatusCode, errBody.Message)
	default:
		var errBody struct {
			Message string `json:"message"`
		}
		json.NewDecoder(resp.Body).Decode(&errBody)
		return nil, authenticationError(resp.StatusCode, errBody.Message)
	}

	var result LoginResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, protocolError("malformed login response")
	}
	if result.Token == "" || result.User.ID == "" {
		return nil, protocolError("login response missing token or user")
	}

	c.log.Debug().Str("user", result.User.Email).Msg("login accepted by backend")
	return &result, nil
}

// Verify probes the backend with the configured token. Returns nil when the
// token is still accepted; a 401 evicts the session like any other call.
func (c *Client) Verify(ctx context.Context) error {
	_, err := c.get(ctx, "/auth/verify")
	return err
}
