package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	adminService "github.com/ocial123/qr-event-app/internal/admin/service"
	adminUseCase "github.com/ocial123/qr-event-app/internal/admin/usecase"
	apperrors "github.com/ocial123/qr-event-app/internal/errors"
	"github.com/ocial123/qr-event-app/internal/httputil"
)

// AuthenticationMiddleware provides authentication via Bearer session token in
// the Authorization header.
//
// The middleware:
// 1. Extracts the Bearer token from the Authorization header (case-insensitive)
// 2. Hashes the token using tokenService.HashToken()
// 3. Resolves the session using sessionUseCase.Authenticate()
// 4. Stores the authenticated admin in the request context
// 5. Allows downstream handlers to access the admin via GetAdmin()
//
// Authorization header format: "Bearer <token>" (case-insensitive "bearer")
//
// Error handling:
//   - Missing Authorization header → 401 Unauthorized
//   - Malformed Authorization header → 401 Unauthorized
//   - Unknown/expired session → 401 Unauthorized (from SessionUseCase.Authenticate)
//   - Other errors → 500 Internal Server Error
func AuthenticationMiddleware(
	sessionUseCase adminUseCase.SessionUseCase,
	tokenService adminService.SessionTokenService,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("authentication failed: missing authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		// Parse Bearer token (case-insensitive)
		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication failed: malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		plainToken := authHeader[len(bearerPrefix):]
		if plainToken == "" {
			logger.Debug("authentication failed: empty bearer token")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		// Hash the token for lookup
		tokenHash := tokenService.HashToken(plainToken)

		admin, err := sessionUseCase.Authenticate(c.Request.Context(), tokenHash)
		if err != nil {
			logger.Debug("authentication failed", slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		// Store authenticated admin in context
		ctx := WithAdmin(c.Request.Context(), admin)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful", slog.String("username", admin.Username))

		c.Next()
	}
}
