package middleware

import (
	"net/http"
	"strings"

	"github.com/vinodbargaje/happy-paws-connect/internal/data/repository"
	"github.com/vinodbargaje/happy-paws-connect/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession validates the bearer session token and resolves the identity's
// role. The role is looked up exactly once per request and cached in the
// request context; an identity without a role row gets an empty role and
// role-gated handlers must reject it.
func AuthSession(sessionRepo repository.SessionRepository, roleRepo repository.RoleRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token := parts[1]

			session, err := sessionRepo.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session")
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			role, err := roleRepo.FindByUserID(r.Context(), session.UserID)
			if err != nil {
				logger.Error("Failed to resolve role",
					zap.Error(err), zap.String("user_id", session.UserID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			// No role row: identity stays authenticated but unprivileged
			roleName := ""
			if role != nil {
				roleName = string(role.Role)
			}

			ctx := utils.SetUserContext(r.Context(), session.UserID, roleName)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route on the role resolved by AuthSession.
func RequireRole(roleName string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok || role != roleName {
				logger.Warn("Role check failed",
					zap.String("user_id", userID.String()),
					zap.String("required", roleName),
					zap.String("actual", role),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, roleName+" access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
