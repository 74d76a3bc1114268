package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Context keys for storing user information
type contextKey string

const UserIDKey contextKey = "user_id"

const tokenIssuer = "pickme"

// AuthMiddleware enforces bearer-token authentication for protected routes
// Tokens are HS256 JWTs minted at login/registration by this same component
type AuthMiddleware struct {
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(secret []byte, tokenTTL time.Duration) *AuthMiddleware {
	return &AuthMiddleware{secret: secret, tokenTTL: tokenTTL}
}

// Mint issues a signed token for the user
func (m *AuthMiddleware) Mint(userID int64) (string, error) {
	now := time.Now()

	tok, err := jwt.NewBuilder().
		Issuer(tokenIssuer).
		Subject(strconv.FormatInt(userID, 10)).
		IssuedAt(now).
		Expiration(now.Add(m.tokenTTL)).
		Build()
	if err != nil {
		return "", err
	}

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, m.secret))
	if err != nil {
		return "", err
	}

	return string(signed), nil
}

// RequireAuth ensures the request carries a valid bearer token
// On success the authenticated user ID is injected into the request context
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeAuthError(w, "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeAuthError(w, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		tok, err := jwt.Parse([]byte(token),
			jwt.WithKey(jwa.HS256, m.secret),
			jwt.WithIssuer(tokenIssuer),
			jwt.WithValidate(true),
		)
		if err != nil {
			log.Printf("[AUTH_FAILURE] type=verification_failed ip=%s method=%s path=%s error=%v",
				r.RemoteAddr, r.Method, r.URL.Path, err)
			writeAuthError(w, "Invalid or expired token")
			return
		}

		userID, err := strconv.ParseInt(tok.Subject(), 10, 64)
		if err != nil || userID <= 0 {
			writeAuthError(w, "Invalid token subject")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the authenticated user ID from the request context
// Returns 0 when the request is unauthenticated
func GetUserID(r *http.Request) int64 {
	id, _ := r.Context().Value(UserIDKey).(int64)
	return id
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error":   "AuthRequired",
		"message": message,
	}); err != nil {
		log.Printf("Failed to encode auth error: %v", err)
	}
}
