package admin

import (
	"net/http"

	"github.com/hafiportrait/wedibox-api/internal/middleware"
	"github.com/hafiportrait/wedibox-api/internal/pkg/jwt"
	"github.com/hafiportrait/wedibox-api/internal/pkg/response"
)

// AuthMiddleware validates the admin token and checks that the account still
// exists and is active.
func AuthMiddleware(jwtSvc *jwt.Service, adminSvc *Service) func(http.Handler) http.Handler {
	tokenAuth := middleware.AdminAuth(jwtSvc)

	return func(next http.Handler) http.Handler {
		active := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := middleware.GetAdmin(r.Context())

			admin, err := adminSvc.GetAdminByID(r.Context(), claims.AdminID)
			if err != nil {
				response.Unauthorized(w, "Admin not found")
				return
			}
			if !admin.IsActive {
				response.Forbidden(w, "Admin account is inactive")
				return
			}

			// Role may have changed since the token was issued
			claims.Role = string(admin.Role)
			next.ServeHTTP(w, r)
		})
		return tokenAuth(active)
	}
}

// RequirePermission middleware checks for specific permission
func RequirePermission(perm Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !RoleHasPermission(GetAdminRole(r), perm) {
				response.Forbidden(w, "Permission denied")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetAdminRole extracts admin role from the request context
func GetAdminRole(r *http.Request) Role {
	claims := middleware.GetAdmin(r.Context())
	if claims == nil {
		return ""
	}
	return Role(claims.Role)
}
