package app

import (
	"fmt"
	"sync"

	"github.com/ocial123/qr-event-app/internal/qr"
	tokenHTTP "github.com/ocial123/qr-event-app/internal/token/http"
	tokenRepository "github.com/ocial123/qr-event-app/internal/token/repository"
	tokenService "github.com/ocial123/qr-event-app/internal/token/service"
	tokenUseCase "github.com/ocial123/qr-event-app/internal/token/usecase"
)

// tokenModule holds the token lifecycle components and their init guards.
type tokenModule struct {
	repoInit      sync.Once
	generatorInit sync.Once
	rendererInit  sync.Once
	useCaseInit   sync.Once
	handlerInit   sync.Once

	repo      tokenUseCase.TokenRepository
	generator tokenService.TokenGenerator
	renderer  qr.Renderer
	useCase   tokenUseCase.UseCase
	handler   *tokenHTTP.TokenHandler
}

// TokenRepository returns the token repository instance.
func (c *Container) TokenRepository() (tokenUseCase.TokenRepository, error) {
	var err error
	c.tokenModule.repoInit.Do(func() {
		c.tokenModule.repo, err = c.initTokenRepository()
		if err != nil {
			c.initErrors["tokenRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenRepo"]; exists {
		return nil, storedErr
	}
	return c.tokenModule.repo, nil
}

// TokenGenerator returns the token value generator.
func (c *Container) TokenGenerator() tokenService.TokenGenerator {
	c.tokenModule.generatorInit.Do(func() {
		c.tokenModule.generator = tokenService.NewUUIDGenerator()
	})
	return c.tokenModule.generator
}

// QRRenderer returns the QR code renderer.
func (c *Container) QRRenderer() qr.Renderer {
	c.tokenModule.rendererInit.Do(func() {
		c.tokenModule.renderer = qr.NewPNGRenderer()
	})
	return c.tokenModule.renderer
}

// TokenUseCase returns the token use case instance wrapped with metrics.
func (c *Container) TokenUseCase() (tokenUseCase.UseCase, error) {
	var err error
	c.tokenModule.useCaseInit.Do(func() {
		c.tokenModule.useCase, err = c.initTokenUseCase()
		if err != nil {
			c.initErrors["tokenUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenUseCase"]; exists {
		return nil, storedErr
	}
	return c.tokenModule.useCase, nil
}

// TokenHandler returns the token HTTP handler instance.
func (c *Container) TokenHandler() (*tokenHTTP.TokenHandler, error) {
	var err error
	c.tokenModule.handlerInit.Do(func() {
		c.tokenModule.handler, err = c.initTokenHandler()
		if err != nil {
			c.initErrors["tokenHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenHandler"]; exists {
		return nil, storedErr
	}
	return c.tokenModule.handler, nil
}

// initTokenRepository creates the token repository instance.
func (c *Container) initTokenRepository() (tokenUseCase.TokenRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for token repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return tokenRepository.NewMySQLTokenRepository(db), nil
	case "postgres":
		return tokenRepository.NewPostgreSQLTokenRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initTokenUseCase creates the token use case with all its dependencies.
func (c *Container) initTokenUseCase() (tokenUseCase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for token use case: %w", err)
	}

	tokenRepo, err := c.TokenRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get token repository for token use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for token use case: %w", err)
	}

	useCase := tokenUseCase.NewTokenUseCase(txManager, tokenRepo, c.TokenGenerator())

	return tokenUseCase.NewUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initTokenHandler creates the token HTTP handler.
func (c *Container) initTokenHandler() (*tokenHTTP.TokenHandler, error) {
	useCase, err := c.TokenUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get token use case for token handler: %w", err)
	}

	return tokenHTTP.NewTokenHandler(
		useCase,
		c.QRRenderer(),
		c.Logger(),
		c.config.PublicBaseURL,
		c.config.QRCodeSize,
		c.config.DashboardRecentLimit,
	), nil
}
