package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/hafiportrait/wedibox-api/internal/pkg/jwt"
	"github.com/hafiportrait/wedibox-api/internal/pkg/response"
)

// AccessTokenHeader carries a guest token issued by verify-code
const AccessTokenHeader = "X-Access-Token"

type contextKey string

const (
	adminClaimsKey contextKey = "admin_claims"
	guestEventKey  contextKey = "guest_event_id"
)

// AdminAuth rejects requests without a valid admin bearer token
func AdminAuth(jwtService *jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				response.Unauthorized(w, "Missing or invalid authorization header")
				return
			}

			claims, err := jwtService.ValidateAdminToken(token)
			if err != nil {
				if err == jwt.ErrExpiredToken {
					response.Unauthorized(w, "Token expired")
				} else {
					response.Unauthorized(w, "Invalid token")
				}
				return
			}

			ctx := context.WithValue(r.Context(), adminClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth attaches admin claims or a guest event id when valid tokens
// are present, and never rejects the request.
func OptionalAuth(jwtService *jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if token, ok := bearerToken(r); ok {
				if claims, err := jwtService.ValidateAdminToken(token); err == nil {
					ctx = context.WithValue(ctx, adminClaimsKey, claims)
				}
			}

			if token := r.Header.Get(AccessTokenHeader); token != "" {
				if claims, err := jwtService.ValidateGuestToken(token); err == nil {
					ctx = context.WithValue(ctx, guestEventKey, claims.EventID)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// GetAdmin returns the admin claims from context, or nil
func GetAdmin(ctx context.Context) *jwt.AdminClaims {
	claims, _ := ctx.Value(adminClaimsKey).(*jwt.AdminClaims)
	return claims
}

// GetAdminID returns the authenticated admin id or uuid.Nil
func GetAdminID(ctx context.Context) uuid.UUID {
	if claims := GetAdmin(ctx); claims != nil {
		return claims.AdminID
	}
	return uuid.Nil
}

// IsAdmin reports whether the request carries admin claims
func IsAdmin(ctx context.Context) bool {
	return GetAdmin(ctx) != nil
}

// GuestEventID returns the event unlocked by the guest token, if any
func GuestEventID(ctx context.Context) string {
	id, _ := ctx.Value(guestEventKey).(string)
	return id
}

// WithAdmin stores admin claims in ctx
func WithAdmin(ctx context.Context, claims *jwt.AdminClaims) context.Context {
	return context.WithValue(ctx, adminClaimsKey, claims)
}

// WithGuestEvent stores an unlocked event id in ctx
func WithGuestEvent(ctx context.Context, eventID string) context.Context {
	return context.WithValue(ctx, guestEventKey, eventID)
}
