package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	adminDomain "github.com/ocial123/qr-event-app/internal/admin/domain"
	"github.com/ocial123/qr-event-app/internal/admin/http/dto"
	adminUseCase "github.com/ocial123/qr-event-app/internal/admin/usecase"
	"github.com/ocial123/qr-event-app/internal/httputil"
	customValidation "github.com/ocial123/qr-event-app/internal/validation"
)

// SessionHandler handles HTTP requests for admin session operations.
type SessionHandler struct {
	sessionUseCase adminUseCase.SessionUseCase
	logger         *slog.Logger
}

// NewSessionHandler creates a new session handler with required dependencies.
func NewSessionHandler(
	sessionUseCase adminUseCase.SessionUseCase,
	logger *slog.Logger,
) *SessionHandler {
	return &SessionHandler{
		sessionUseCase: sessionUseCase,
		logger:         logger,
	}
}

// LoginHandler authenticates an admin and issues a session token.
// POST /v1/admin/login - No authentication required (this is the authentication endpoint).
// Returns 201 Created with token and expiration time.
func (h *SessionHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := &adminDomain.LoginInput{
		Username: req.Username,
		Password: req.Password,
	}

	output, err := h.sessionUseCase.Login(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.LoginResponse{
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
	}

	c.JSON(http.StatusCreated, response)
}
