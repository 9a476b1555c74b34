package auth

import (
	"net/http"
	"time"
)

// RefreshMiddleware reissues the auth cookie once a valid token is more than
// halfway through its lifetime. It never rejects a request; handlers call
// Authorize for that.
func (h *AuthHandler) RefreshMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		id, claims, err := h.parseToken(cookie.Value)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		if exp, ok := claims["exp"].(float64); ok {
			remaining := time.Until(time.Unix(int64(exp), 0))
			if remaining < TokenDuration/2 {
				newToken, err := h.GenerateToken(id.Username, id.SessionID)
				if err == nil {
					http.SetCookie(w, authCookie(newToken, time.Now().Add(TokenDuration)))
				}
			}
		}

		next.ServeHTTP(w, r)
	})
}
