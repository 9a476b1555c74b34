package auth

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/enroute-travel/itinerary-api/internal/config"
	"github.com/enroute-travel/itinerary-api/internal/session"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CookieName    = "auth_token"
	TokenDuration = 24 * time.Hour
)

// Identity is the authenticated caller.
type Identity struct {
	Username  string
	SessionID string
	IsAdmin   bool
}

type AuthHandler struct {
	cfg      *config.Config
	verifier CredentialVerifier
	sessions *session.Manager
	limiter  *LoginLimiter
}

func NewAuthHandler(cfg *config.Config, verifier CredentialVerifier, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		cfg:      cfg,
		verifier: verifier,
		sessions: sessions,
		limiter:  NewLoginLimiter(cfg.LoginRatePerMinute),
	}
}

// AuthInput carries the raw Cookie header of a request.
type AuthInput struct {
	Cookie string `header:"Cookie"`
}

type LoginInput struct {
	Body struct {
		Username string `json:"username" minLength:"1" doc:"Staff username"`
		Password string `json:"password" doc:"Staff password"`
	}
}

type LoginOutput struct {
	SetCookie string `header:"Set-Cookie"`
	Body      struct {
		Username  string `json:"username"`
		IsAdmin   bool   `json:"is_admin"`
		SessionID string `json:"session_id"`
	}
}

func (h *AuthHandler) HandleLogin(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	username := strings.TrimSpace(input.Body.Username)
	if !h.limiter.Allow(username) {
		return nil, huma.Error429TooManyRequests("Too many login attempts, try again later")
	}

	ok, err := h.verifier.Verify(ctx, username, input.Body.Password)
	if err != nil {
		log.Printf("Credential check failed for %s: %v", username, err)
		return nil, huma.Error500InternalServerError("Failed to verify credentials")
	}
	if !ok {
		return nil, huma.Error401Unauthorized("Invalid username or password")
	}

	isAdmin := username == h.cfg.AdminUsername
	sess, err := h.sessions.Open(ctx, username, isAdmin)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to start session: " + err.Error())
	}

	token, err := h.GenerateToken(username, sess.ID)
	if err != nil {
		h.sessions.Close(sess.ID)
		return nil, huma.Error500InternalServerError("Failed to generate token")
	}

	res := &LoginOutput{SetCookie: authCookie(token, time.Now().Add(TokenDuration)).String()}
	res.Body.Username = username
	res.Body.IsAdmin = isAdmin
	res.Body.SessionID = sess.ID
	return res, nil
}

type LogoutOutput struct {
	SetCookie string `header:"Set-Cookie"`
}

// HandleLogout discards the editing session and clears the cookie. It
// succeeds even without a valid token.
func (h *AuthHandler) HandleLogout(ctx context.Context, input *AuthInput) (*LogoutOutput, error) {
	if id, err := h.Authorize(ctx, input.Cookie); err == nil {
		h.sessions.Close(id.SessionID)
	}
	expired := authCookie("", time.Unix(0, 0))
	expired.MaxAge = -1
	return &LogoutOutput{SetCookie: expired.String()}, nil
}

type MeOutput struct {
	Body struct {
		Username string `json:"username"`
		IsAdmin  bool   `json:"is_admin"`
	}
}

func (h *AuthHandler) HandleMe(ctx context.Context, input *AuthInput) (*MeOutput, error) {
	id, err := h.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}
	res := &MeOutput{}
	res.Body.Username = id.Username
	res.Body.IsAdmin = id.IsAdmin
	return res, nil
}

// Authorize validates the auth cookie found in a raw Cookie header.
func (h *AuthHandler) Authorize(ctx context.Context, cookieHeader string) (*Identity, error) {
	req := http.Request{Header: http.Header{"Cookie": {cookieHeader}}}
	cookie, err := req.Cookie(CookieName)
	if err != nil {
		return nil, huma.Error401Unauthorized("Unauthorized: No token found")
	}
	id, _, err := h.parseToken(cookie.Value)
	if err != nil {
		return nil, huma.Error401Unauthorized("Unauthorized: Invalid token")
	}
	return id, nil
}

func (h *AuthHandler) GenerateToken(username, sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": username,
		"sid": sessionID,
		"exp": time.Now().Add(TokenDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}

func (h *AuthHandler) parseToken(tokenString string) (*Identity, jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(h.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, nil, fmt.Errorf("invalid token claims")
	}
	username, _ := claims["sub"].(string)
	sessionID, _ := claims["sid"].(string)
	if username == "" || sessionID == "" {
		return nil, nil, fmt.Errorf("invalid token claims")
	}

	return &Identity{
		Username:  username,
		SessionID: sessionID,
		IsAdmin:   username == h.cfg.AdminUsername,
	}, claims, nil
}

func authCookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Expires:  expires,
		HttpOnly: true,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	}
}
