package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type validationResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

func postJSON(t *testing.T, handler gin.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST(path, handler)

	req := httptest.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterConfirmPasswordMismatch(t *testing.T) {
	w := postJSON(t, Register(nil), "/auth/register",
		`{"email":"a@b.com","password":"validpass1","confirm_password":"different1"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp validationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid json: %v", err)
	}
	if _, ok := resp.Fields["confirm_password"]; !ok {
		t.Fatalf("expected error attributed to confirm_password, got %v", resp.Fields)
	}
}

func TestRegisterMismatchWinsOverWeakPassword(t *testing.T) {
	// The confirmation check runs before the password policy, so even a
	// clearly weak password reports the mismatch first.
	w := postJSON(t, Register(nil), "/auth/register",
		`{"email":"a@b.com","password":"123","confirm_password":"456"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp validationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid json: %v", err)
	}
	if _, ok := resp.Fields["confirm_password"]; !ok {
		t.Fatalf("expected error attributed to confirm_password, got %v", resp.Fields)
	}
	if _, ok := resp.Fields["password"]; ok {
		t.Fatalf("did not expect a password error alongside the mismatch, got %v", resp.Fields)
	}
}

func TestRegisterMissingFieldsAreAttributed(t *testing.T) {
	w := postJSON(t, Register(nil), "/auth/register", `{}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp validationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid json: %v", err)
	}
	for _, field := range []string{"email", "password", "confirm_password"} {
		if _, ok := resp.Fields[field]; !ok {
			t.Fatalf("expected %s in field errors, got %v", field, resp.Fields)
		}
	}
}

func TestRegisterInvalidEmailAttributed(t *testing.T) {
	w := postJSON(t, Register(nil), "/auth/register",
		`{"email":"not-an-email","password":"validpass1","confirm_password":"validpass1"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp validationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid json: %v", err)
	}
	if _, ok := resp.Fields["email"]; !ok {
		t.Fatalf("expected error attributed to email, got %v", resp.Fields)
	}
}

func TestSnakeCase(t *testing.T) {
	tests := map[string]string{
		"ConfirmPassword": "confirm_password",
		"Email":           "email",
		"Age":             "age",
		"FullName":        "full_name",
	}
	for in, want := range tests {
		if got := snakeCase(in); got != want {
			t.Fatalf("snakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGenerateRefreshString(t *testing.T) {
	token := generateRefreshString()
	if len(token) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(token))
	}
	if token == generateRefreshString() {
		t.Fatal("expected distinct refresh tokens")
	}
}

func TestHashTokenIsStable(t *testing.T) {
	if hashToken("abc") != hashToken("abc") {
		t.Fatal("expected identical hashes for identical input")
	}
	if hashToken("abc") == hashToken("abd") {
		t.Fatal("expected different hashes for different input")
	}
}
