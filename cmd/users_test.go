// ABOUTME: Tests for the platform user commands
// ABOUTME: Covers listing and role validation

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brightboard/admin-cli/internal/api"
)

func TestUsersList_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/users" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]api.PlatformUser{
			{ID: "u1", Name: "Ada", Email: "ada@example.com", Role: "admin"},
			{ID: "u2", Name: "Grace", Email: "grace@example.com", Role: "user"},
		})
	}))
	defer server.Close()

	seedAdminSession(t)
	apiURL = server.URL
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	exitCode := runUsersList(context.Background(), &buf)

	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}
	if !bytes.Contains(buf.Bytes(), []byte("grace@example.com")) {
		t.Error("expected user email in output")
	}
	if !bytes.Contains(buf.Bytes(), []byte("2 user(s)")) {
		t.Errorf("expected user count, got %q", buf.String())
	}
}

func TestUsersSetRole_Success(t *testing.T) {
	var got map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/admin/users/u2/role" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"message":"ok"}`))
	}))
	defer server.Close()

	seedAdminSession(t)
	apiURL = server.URL
	userRole = "admin"
	defer func() {
		apiURL = ""
		userRole = ""
	}()

	var buf bytes.Buffer
	exitCode := runUsersSetRole(context.Background(), &buf, "u2")

	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}
	if got["role"] != "admin" {
		t.Errorf("expected role in payload, got %v", got)
	}
}

func TestUsersSetRole_InvalidRole(t *testing.T) {
	seedAdminSession(t)
	userRole = "superuser"
	defer func() { userRole = "" }()

	var buf bytes.Buffer
	exitCode := runUsersSetRole(context.Background(), &buf, "u2")

	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if !bytes.Contains(buf.Bytes(), []byte("invalid role")) {
		t.Errorf("expected validation message, got %q", buf.String())
	}
}
