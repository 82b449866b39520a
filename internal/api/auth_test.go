// ABOUTME: Tests for login and token verification against a mocked backend
// ABOUTME: Covers credential failures, malformed responses, and success shape

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLogin_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "admin@example.com" {
			t.Errorf("expected email in payload, got %q", body["email"])
		}
		json.NewEncoder(w).Encode(map[string]any{
			"token": "t1",
			"user": map[string]string{
				"id":    "u1",
				"name":  "Ada",
				"email": "admin@example.com",
				"role":  "admin",
			},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	result, err := c.Login(context.Background(), "admin@example.com", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Token != "t1" {
		t.Errorf("expected token t1, got %q", result.Token)
	}
	if result.User.Role != RoleAdmin {
		t.Errorf("expected admin role, got %q", result.User.Role)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	// A 401 during login means wrong credentials, not an expired session,
	// so the eviction hook must stay quiet.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "invalid credentials"})
	}))
	defer server.Close()

	evicted := false
	c := New(server.URL)
	c.SetUnauthorizedHook(func() { evicted = true })

	_, err := c.Login(context.Background(), "admin@example.com", "wrong")
	if !IsAuthentication(err) {
		t.Fatalf("expected authentication error, got %v", err)
	}
	if IsSessionExpired(err) {
		t.Error("login failure must not be reported as session expiry")
	}
	if evicted {
		t.Error("login failure must not trigger session eviction")
	}
}

func TestLogin_UnknownAccount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Login(context.Background(), "nobody@example.com", "x")
	if !IsAuthentication(err) {
		t.Fatalf("expected authentication error, got %v", err)
	}
}

func TestLogin_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Login(context.Background(), "admin@example.com", "secret")
	if !IsServer(err) {
		t.Fatalf("expected server error, got %v", err)
	}
}

func TestLogin_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Login(context.Background(), "admin@example.com", "secret")
	if !IsProtocol(err) {
		t.Fatalf("expected protocol error, got %v", err)
	}
}

func TestLogin_MissingToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"user": map[string]string{"id": "u1", "role": "admin"},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Login(context.Background(), "admin@example.com", "secret")
	if !IsProtocol(err) {
		t.Fatalf("expected protocol error, got %v", err)
	}
}

func TestVerify_AcceptedToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/verify" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer t1" {
			t.Errorf("expected bearer token, got %q", r.Header.Get("Authorization"))
		}
		json.NewEncoder(w).Encode(map[string]any{"valid": true})
	}))
	defer server.Close()

	c := New(server.URL)
	c.SetToken("t1")
	if err := c.Verify(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestVerify_ExpiredToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	c := New(server.URL)
	c.SetToken("stale")
	err := c.Verify(context.Background())
	if !IsSessionExpired(err) {
		t.Fatalf("expected session expired, got %v", err)
	}
}
