package middleware

import (
	"context"
	"food-delivery/utils"
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
)

// Key type for context
type contextKey string

const UserContextKey = contextKey("user")
const TokenContextKey = contextKey("token")

// TokenDenylist holds tokens invalidated by sign-out. Set from main; when
// nil, sign-out is not enforced.
var TokenDenylist utils.Denylist

// AuthMiddleware verifies JWT tokens and attaches user information to the context
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Authorization header missing", http.StatusUnauthorized)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			http.Error(w, "Invalid Authorization header format", http.StatusUnauthorized)
			return
		}

		tokenStr := parts[1]
		claims := &utils.Claims{}

		token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
			return utils.JwtKey, nil
		})

		if err != nil || !token.Valid {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		if TokenDenylist != nil && TokenDenylist.IsRevoked(r.Context(), tokenStr) {
			http.Error(w, "Session has been signed out", http.StatusUnauthorized)
			return
		}

		// Attach user information to the request context
		ctx := context.WithValue(r.Context(), UserContextKey, claims)
		ctx = context.WithValue(ctx, TokenContextKey, tokenStr)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminMiddleware ensures that the user has admin privileges
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(UserContextKey).(*utils.Claims)
		if !ok || claims.Role != "admin" {
			http.Error(w, "Forbidden: Admins only", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
