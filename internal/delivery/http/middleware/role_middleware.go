package middleware

import (
	"net/http"

	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/pkg/response"
)

// RequireRole creates a middleware that checks if the personnel has any of the allowed types
// Role is read from context (set by AuthMiddleware from JWT claims)
func RequireRole(allowed ...entity.PersonnelType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			for _, t := range allowed {
				if role == t {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, "You don't have permission to access this resource")
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.PersonnelTypeAdmin)(next)
}

// RequireStaff admits front-desk staff and admins
func RequireStaff(next http.Handler) http.Handler {
	return RequireRole(entity.PersonnelTypeStaff, entity.PersonnelTypeAdmin)(next)
}

// RequireDentist admits dentists and admins
func RequireDentist(next http.Handler) http.Handler {
	return RequireRole(entity.PersonnelTypeDentist, entity.PersonnelTypeAdmin)(next)
}
