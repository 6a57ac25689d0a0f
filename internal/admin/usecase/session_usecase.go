package usecase

import (
	"context"
	"log/slog"
	"time"

	adminDomain "github.com/ocial123/qr-event-app/internal/admin/domain"
	adminService "github.com/ocial123/qr-event-app/internal/admin/service"
	apperrors "github.com/ocial123/qr-event-app/internal/errors"
)

// sessionUseCase implements SessionUseCase for the admin session lifecycle.
type sessionUseCase struct {
	sessionRepo       SessionRepository
	credentialService adminService.CredentialService
	tokenService      adminService.SessionTokenService
	expiration        time.Duration
	logger            *slog.Logger
}

// Login verifies credentials and issues a session token. The plain token is
// returned once; only its SHA-256 hash is persisted.
func (s *sessionUseCase) Login(
	ctx context.Context,
	input *adminDomain.LoginInput,
) (*adminDomain.LoginOutput, error) {
	if input.Username == "" || input.Password == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "username and password must not be empty")
	}

	if !s.credentialService.Verify(input.Username, input.Password) {
		return nil, adminDomain.ErrInvalidCredentials
	}

	plainToken, tokenHash, err := s.tokenService.GenerateToken()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := &adminDomain.Session{
		TokenHash: tokenHash,
		Username:  input.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.expiration),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	// Best-effort cleanup of expired sessions; failure does not block login.
	if _, err := s.sessionRepo.DeleteExpired(ctx, now); err != nil {
		s.logger.Warn("failed to delete expired admin sessions", slog.Any("error", err))
	}

	s.logger.Info("admin login succeeded", slog.String("username", input.Username))

	return &adminDomain.LoginOutput{
		Token:     plainToken,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// Authenticate resolves a session token hash to an Admin identity.
func (s *sessionUseCase) Authenticate(
	ctx context.Context,
	tokenHash string,
) (*adminDomain.Admin, error) {
	session, err := s.sessionRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		return nil, err
	}

	if session.Expired(time.Now().UTC()) {
		return nil, adminDomain.ErrSessionNotFound
	}

	return &adminDomain.Admin{Username: session.Username}, nil
}

// NewSessionUseCase creates a new session UseCase with the provided dependencies.
func NewSessionUseCase(
	sessionRepo SessionRepository,
	credentialService adminService.CredentialService,
	tokenService adminService.SessionTokenService,
	expiration time.Duration,
	logger *slog.Logger,
) SessionUseCase {
	return &sessionUseCase{
		sessionRepo:       sessionRepo,
		credentialService: credentialService,
		tokenService:      tokenService,
		expiration:        expiration,
		logger:            logger,
	}
}
