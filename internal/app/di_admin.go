package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"

	adminHTTP "github.com/ocial123/qr-event-app/internal/admin/http"
	adminRepository "github.com/ocial123/qr-event-app/internal/admin/repository"
	adminService "github.com/ocial123/qr-event-app/internal/admin/service"
	adminUseCase "github.com/ocial123/qr-event-app/internal/admin/usecase"
	"github.com/ocial123/qr-event-app/internal/http"
)

// adminModule holds the admin session components and their init guards.
type adminModule struct {
	repoInit         sync.Once
	credentialInit   sync.Once
	tokenServiceInit sync.Once
	useCaseInit      sync.Once
	handlerInit      sync.Once

	repo              adminUseCase.SessionRepository
	credentialService adminService.CredentialService
	tokenService      adminService.SessionTokenService
	useCase           adminUseCase.SessionUseCase
	handler           *adminHTTP.SessionHandler
}

// SessionRepository returns the admin session repository instance.
func (c *Container) SessionRepository() (adminUseCase.SessionRepository, error) {
	var err error
	c.adminModule.repoInit.Do(func() {
		c.adminModule.repo, err = c.initSessionRepository()
		if err != nil {
			c.initErrors["sessionRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sessionRepo"]; exists {
		return nil, storedErr
	}
	return c.adminModule.repo, nil
}

// CredentialService returns the admin credential verification service.
func (c *Container) CredentialService() (adminService.CredentialService, error) {
	var err error
	c.adminModule.credentialInit.Do(func() {
		c.adminModule.credentialService, err = adminService.NewCredentialService(c.config.AdminUsers)
		if err != nil {
			c.initErrors["credentialService"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["credentialService"]; exists {
		return nil, storedErr
	}
	return c.adminModule.credentialService, nil
}

// SessionTokenService returns the session token generation service.
func (c *Container) SessionTokenService() adminService.SessionTokenService {
	c.adminModule.tokenServiceInit.Do(func() {
		c.adminModule.tokenService = adminService.NewSessionTokenService()
	})
	return c.adminModule.tokenService
}

// SessionUseCase returns the admin session use case wrapped with metrics.
func (c *Container) SessionUseCase() (adminUseCase.SessionUseCase, error) {
	var err error
	c.adminModule.useCaseInit.Do(func() {
		c.adminModule.useCase, err = c.initSessionUseCase()
		if err != nil {
			c.initErrors["sessionUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sessionUseCase"]; exists {
		return nil, storedErr
	}
	return c.adminModule.useCase, nil
}

// SessionHandler returns the admin session HTTP handler instance.
func (c *Container) SessionHandler() (*adminHTTP.SessionHandler, error) {
	var err error
	c.adminModule.handlerInit.Do(func() {
		c.adminModule.handler, err = c.initSessionHandler()
		if err != nil {
			c.initErrors["sessionHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sessionHandler"]; exists {
		return nil, storedErr
	}
	return c.adminModule.handler, nil
}

// initSessionRepository creates the session repository instance.
func (c *Container) initSessionRepository() (adminUseCase.SessionRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for session repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return adminRepository.NewMySQLSessionRepository(db), nil
	case "postgres":
		return adminRepository.NewPostgreSQLSessionRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initSessionUseCase creates the session use case with all its dependencies.
func (c *Container) initSessionUseCase() (adminUseCase.SessionUseCase, error) {
	sessionRepo, err := c.SessionRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get session repository for session use case: %w", err)
	}

	credentialService, err := c.CredentialService()
	if err != nil {
		return nil, fmt.Errorf("failed to get credential service for session use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for session use case: %w", err)
	}

	useCase := adminUseCase.NewSessionUseCase(
		sessionRepo,
		credentialService,
		c.SessionTokenService(),
		c.config.AdminSessionExpiration,
		c.Logger(),
	)

	return adminUseCase.NewSessionUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initSessionHandler creates the session HTTP handler.
func (c *Container) initSessionHandler() (*adminHTTP.SessionHandler, error) {
	useCase, err := c.SessionUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get session use case for session handler: %w", err)
	}

	return adminHTTP.NewSessionHandler(useCase, c.Logger()), nil
}

// buildRouter assembles the API router from both modules.
func (c *Container) buildRouter() (*gin.Engine, error) {
	logger := c.Logger()

	tokenHandler, err := c.TokenHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get token handler for router: %w", err)
	}

	sessionHandler, err := c.SessionHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get session handler for router: %w", err)
	}

	sessionUseCase, err := c.SessionUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get session use case for router: %w", err)
	}

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for router: %w", err)
	}

	routerConfig := http.RouterConfig{
		Logger:         logger,
		TokenHandler:   tokenHandler,
		SessionHandler: sessionHandler,
		AuthenticationMiddleware: adminHTTP.AuthenticationMiddleware(
			sessionUseCase,
			c.SessionTokenService(),
			logger,
		),
		CORSEnabled:      c.config.CORSEnabled,
		CORSAllowOrigins: c.config.CORSAllowOrigins,
		ReadyCheck: func(ctx context.Context) error {
			return db.PingContext(ctx)
		},
	}

	if c.config.RateLimitLoginEnabled {
		routerConfig.LoginRateLimitMiddleware = adminHTTP.LoginRateLimitMiddleware(
			c.config.RateLimitLoginRequestsPerSec,
			c.config.RateLimitLoginBurst,
			logger,
		)
	}

	return http.NewRouter(routerConfig), nil
}
