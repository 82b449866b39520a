// ABOUTME: Tests for the legal content commands
// ABOUTME: Covers policy name parsing, show output, and publishing from a file

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/brightboard/admin-cli/internal/api"
)

func TestPolicyShow_Active(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/content/admin/privacy-policy" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]api.Policy{
			{ID: "p1", Version: "2.0", IsActive: true, Content: "We respect your privacy."},
		})
	}))
	defer server.Close()

	seedAdminSession(t)
	apiURL = server.URL
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	exitCode := runPolicyShow(context.Background(), &buf, "privacy")

	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}
	if !bytes.Contains(buf.Bytes(), []byte("Version 2.0")) {
		t.Errorf("expected version in output, got %q", buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte("We respect your privacy.")) {
		t.Error("expected page content in output")
	}
}

func TestPolicyShow_NoRevisions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	seedAdminSession(t)
	apiURL = server.URL
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	exitCode := runPolicyShow(context.Background(), &buf, "refund")

	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}
	if !bytes.Contains(buf.Bytes(), []byte("No revisions published")) {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestPolicyShow_UnknownName(t *testing.T) {
	seedAdminSession(t)

	var buf bytes.Buffer
	exitCode := runPolicyShow(context.Background(), &buf, "cookies")

	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
}

func TestPolicyPublish_FromFile(t *testing.T) {
	var got map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/content/admin/terms-conditions" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"created"}`))
	}))
	defer server.Close()

	contentFile := filepath.Join(t.TempDir(), "terms.md")
	if err := os.WriteFile(contentFile, []byte("Be nice."), 0644); err != nil {
		t.Fatalf("failed to write content file: %v", err)
	}

	seedAdminSession(t)
	apiURL = server.URL
	policyFile = contentFile
	policyVersion = "3.0"
	defer func() {
		apiURL = ""
		policyFile = ""
		policyVersion = ""
	}()

	var buf bytes.Buffer
	exitCode := runPolicyPublish(context.Background(), &buf, "terms")

	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	if got["content"] != "Be nice." {
		t.Errorf("expected file content in payload, got %q", got["content"])
	}
	if got["version"] != "3.0" {
		t.Errorf("expected version in payload, got %q", got["version"])
	}
}

func TestReadPolicyContent_MissingFile(t *testing.T) {
	_, err := readPolicyContent(filepath.Join(t.TempDir(), "absent.md"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
