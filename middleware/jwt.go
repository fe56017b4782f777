// auth/jwt.go
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"p9e.in/treeflow/pkg/apperr"
	"p9e.in/treeflow/utils"
)

// Claims are the custom payload of issued tokens.
type Claims struct {
	ID   int64  `json:"id"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// unexported type prevents collisions in context
type ctxKey int

const (
	userClaimsKey ctxKey = iota
)

// Auth signs and verifies HS256 tokens with a shared secret.
type Auth struct {
	secret []byte
	ttl    time.Duration
}

func NewAuth(secret string, ttl time.Duration) *Auth {
	return &Auth{secret: []byte(secret), ttl: ttl}
}

// GenerateToken creates a signed token for the user that expires after the configured TTL.
func (a *Auth) GenerateToken(userID int64, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		ID:   userID,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// ParseToken verifies signature, algorithm and expiry.
func (a *Auth) ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// JWTMiddleware validates the bearer token and stashes the Claims in ctx.
func (a *Auth) JWTMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth == "" {
			apperr.Write(w, apperr.Unauthorized("Token no proporcionado"))
			return
		}
		parts := strings.SplitN(auth, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
			apperr.Write(w, apperr.Unauthorized("Token no proporcionado"))
			return
		}

		claims, err := a.ParseToken(strings.TrimSpace(parts[1]))
		if err != nil {
			e := apperr.Unauthorized("Token inválido")
			if errors.Is(err, jwt.ErrTokenExpired) {
				e = apperr.Unauthorized("Token expirado")
			}
			apperr.Write(w, e)
			return
		}

		ctx := context.WithValue(r.Context(), userClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequirePermission lets the request through when the caller's role grants
// permission. It must run after JWTMiddleware.
func RequirePermission(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := GetClaims(r)
			if claims == nil {
				apperr.Write(w, apperr.Unauthorized("Token no proporcionado"))
				return
			}
			if !utils.RoleAllows(claims.Role, permission) {
				apperr.Write(w, apperr.Forbidden("Permisos insuficientes"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetClaims pulls the *Claims out of the request context (or nil)
func GetClaims(r *http.Request) *Claims {
	if c, ok := r.Context().Value(userClaimsKey).(*Claims); ok {
		return c
	}
	return nil
}

func GetUserID(r *http.Request) int64 {
	if c := GetClaims(r); c != nil {
		return c.ID
	}
	return 0
}

func GetRole(r *http.Request) string {
	if c := GetClaims(r); c != nil {
		return c.Role
	}
	return ""
}
