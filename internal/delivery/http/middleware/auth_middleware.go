package middleware

import (
	"context"
	"net/http"
	"strings"

	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/pkg/jwt"
	"dental-clinic-api/pkg/response"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	PersonnelIDKey contextKey = "personnel_id"
	RoleKey        contextKey = "role"
	TokenIDKey     contextKey = "token_id"
)

type AuthMiddleware struct {
	jwtService  *jwt.JWTService
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewAuthMiddleware(jwtService *jwt.JWTService, redisClient *redis.Client, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		redisClient: redisClient,
		log:         log,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		if claims.TokenType != jwt.AccessToken {
			response.Unauthorized(w, "Invalid token type")
			return
		}

		// Only tokens still allowlisted in Redis are accepted
		exists, err := m.redisClient.Exists(r.Context(), jwt.AccessTokenKey(claims.PersonnelID, claims.TokenID)).Result()
		if err != nil {
			m.log.Warnf("Failed to check access token %s: %+v", claims.TokenID, err)
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if exists == 0 {
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		ctx := ContextWithPersonnel(r.Context(), claims.PersonnelID, entity.PersonnelType(claims.Role))
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ContextWithPersonnel stores the authenticated personnel on ctx.
func ContextWithPersonnel(ctx context.Context, personnelID int, role entity.PersonnelType) context.Context {
	ctx = context.WithValue(ctx, PersonnelIDKey, personnelID)
	return context.WithValue(ctx, RoleKey, role)
}

// GetPersonnelIDFromContext extracts personnel ID from context
func GetPersonnelIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(PersonnelIDKey).(int)
	return id, ok
}

// GetRoleFromContext extracts the personnel type from context
func GetRoleFromContext(ctx context.Context) (entity.PersonnelType, bool) {
	role, ok := ctx.Value(RoleKey).(entity.PersonnelType)
	return role, ok
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
