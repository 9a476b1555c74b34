package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/enroute-travel/itinerary-api/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

func TestRefreshMiddleware_SlidingSession(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	handler := NewAuthHandler(cfg, nil, nil)

	signed := func(exp time.Duration) string {
		claims := jwt.MapClaims{
			"sub": "Staff1",
			"sid": "session-1",
			"exp": time.Now().Add(exp).Unix(),
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		tokenString, _ := token.SignedString([]byte(cfg.JWTSecret))
		return tokenString
	}

	serve := func(cookie *http.Cookie) *httptest.ResponseRecorder {
		req, _ := http.NewRequest("GET", "/", nil)
		if cookie != nil {
			req.AddCookie(cookie)
		}
		rr := httptest.NewRecorder()
		nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		handler.RefreshMiddleware(nextHandler).ServeHTTP(rr, req)
		return rr
	}

	t.Run("TokenRenewed", func(t *testing.T) {
		// 11 hours left is less than TokenDuration/2.
		tokenString := signed(11 * time.Hour)
		rr := serve(&http.Cookie{Name: CookieName, Value: tokenString})

		if rr.Code != http.StatusOK {
			t.Errorf("expected status OK, got %v", rr.Code)
		}

		found := false
		for _, c := range rr.Result().Cookies() {
			if c.Name == CookieName {
				found = true
				if c.Value == tokenString {
					t.Errorf("expected new token value, but got the old one")
				}
				id, _, err := handler.parseToken(c.Value)
				if err != nil || id.SessionID != "session-1" {
					t.Errorf("renewed token lost its session: %v", err)
				}
			}
		}
		if !found {
			t.Errorf("expected new auth_token cookie to be set")
		}
	})

	t.Run("TokenNotRenewed", func(t *testing.T) {
		rr := serve(&http.Cookie{Name: CookieName, Value: signed(13 * time.Hour)})
		for _, c := range rr.Result().Cookies() {
			if c.Name == CookieName {
				t.Errorf("did not expect a new auth_token cookie to be set")
			}
		}
	})

	t.Run("InvalidTokenPassesThrough", func(t *testing.T) {
		rr := serve(&http.Cookie{Name: CookieName, Value: "garbage"})
		if rr.Code != http.StatusOK || len(rr.Result().Cookies()) != 0 {
			t.Errorf("expected untouched pass-through, got %d", rr.Code)
		}
	})

	t.Run("NoCookie", func(t *testing.T) {
		if rr := serve(nil); rr.Code != http.StatusOK {
			t.Errorf("expected status OK, got %v", rr.Code)
		}
	})
}
