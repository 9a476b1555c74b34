package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestRegisterRoutes(t *testing.T) {
	e := newTestEnv(t)
	r := chi.NewRouter()
	RegisterRoutes(r, e.auth, e.sessions, e.templates, e.itineraries)
	srv := httptest.NewServer(r)
	defer srv.Close()

	do := func(method, path, body string, cookies ...*http.Cookie) *http.Response {
		t.Helper()
		req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
		if err != nil {
			t.Fatalf("failed to build request: %v", err)
		}
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		for _, c := range cookies {
			req.AddCookie(c)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("%s %s failed: %v", method, path, err)
		}
		t.Cleanup(func() { resp.Body.Close() })
		return resp
	}

	t.Run("Health", func(t *testing.T) {
		resp := do("GET", "/health", "")
		b, _ := io.ReadAll(resp.Body)
		if resp.StatusCode != http.StatusOK || string(b) != "OK" {
			t.Errorf("unexpected health response %d %q", resp.StatusCode, b)
		}
	})

	t.Run("RequiresLogin", func(t *testing.T) {
		if resp := do("GET", "/session", ""); resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", resp.StatusCode)
		}
	})

	login := do("POST", "/auth/login", `{"username":"Staff1","password":"pass1"}`)
	if login.StatusCode != http.StatusOK {
		t.Fatalf("login failed with %d", login.StatusCode)
	}
	var cookie *http.Cookie
	for _, c := range login.Cookies() {
		if c.Name == "auth_token" {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("login did not set auth_token")
	}

	t.Run("EditAndGenerate", func(t *testing.T) {
		resp := do("PUT", "/session/participants/adults/count", `{"value":"2"}`, cookie)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		resp = do("PUT", "/session/participants/adults/costPerHead", `{"value":"5000"}`, cookie)
		var view StateView
		if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
			t.Fatalf("invalid state body: %v", err)
		}
		if view.Pricing.PackageAmount != 10000 {
			t.Errorf("expected 10000, got %d", view.Pricing.PackageAmount)
		}

		if resp := do("PUT", "/session/participants/adults/count", `{"value":"-1"}`, cookie); resp.StatusCode != http.StatusUnprocessableEntity {
			t.Errorf("expected 422, got %d", resp.StatusCode)
		}

		resp = do("POST", "/itineraries?format=pdf", "", cookie)
		if resp.StatusCode != http.StatusOK || resp.Header.Get("Content-Type") != "application/pdf" {
			t.Fatalf("unexpected generate response %d %q", resp.StatusCode, resp.Header.Get("Content-Type"))
		}
		if code := resp.Header.Get("X-Booking-Code"); !strings.HasPrefix(code, "ENR") {
			t.Errorf("unexpected booking code %q", code)
		}
		b, _ := io.ReadAll(resp.Body)
		if !strings.HasPrefix(string(b), "%PDF") {
			t.Errorf("body is not a pdf")
		}
	})

	t.Run("DeleteNeedsConfirm", func(t *testing.T) {
		if resp := do("DELETE", "/itineraries/1", "", cookie); resp.StatusCode != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", resp.StatusCode)
		}
		if resp := do("DELETE", "/itineraries/1?confirm=true", "", cookie); resp.StatusCode != http.StatusOK {
			t.Errorf("expected 200, got %d", resp.StatusCode)
		}
	})

	t.Run("Logout", func(t *testing.T) {
		if resp := do("POST", "/auth/logout", "", cookie); resp.StatusCode >= 300 {
			t.Errorf("unexpected logout status %d", resp.StatusCode)
		}
	})
}
