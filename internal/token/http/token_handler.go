// Package http provides HTTP handlers for token issuance, redemption, and status lookup.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	adminHTTP "github.com/ocial123/qr-event-app/internal/admin/http"
	apperrors "github.com/ocial123/qr-event-app/internal/errors"
	"github.com/ocial123/qr-event-app/internal/httputil"
	"github.com/ocial123/qr-event-app/internal/qr"
	tokenDomain "github.com/ocial123/qr-event-app/internal/token/domain"
	"github.com/ocial123/qr-event-app/internal/token/http/dto"
	tokenUseCase "github.com/ocial123/qr-event-app/internal/token/usecase"
	customValidation "github.com/ocial123/qr-event-app/internal/validation"
)

// TokenHandler handles HTTP requests for the token lifecycle.
type TokenHandler struct {
	tokenUseCase   tokenUseCase.UseCase
	renderer       qr.Renderer
	logger         *slog.Logger
	publicBaseURL  string
	qrCodeSize     int
	dashboardLimit int
}

// NewTokenHandler creates a new token handler with required dependencies.
func NewTokenHandler(
	useCase tokenUseCase.UseCase,
	renderer qr.Renderer,
	logger *slog.Logger,
	publicBaseURL string,
	qrCodeSize int,
	dashboardLimit int,
) *TokenHandler {
	return &TokenHandler{
		tokenUseCase:   useCase,
		renderer:       renderer,
		logger:         logger,
		publicBaseURL:  publicBaseURL,
		qrCodeSize:     qrCodeSize,
		dashboardLimit: dashboardLimit,
	}
}

// IssueTokensHandler issues a batch of single-use tokens.
// POST /v1/tokens - Requires an authenticated admin session.
// Returns 201 Created with the token values in generation order.
func (h *TokenHandler) IssueTokensHandler(c *gin.Context) {
	var req dto.IssueTokensRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := &tokenDomain.IssueInput{
		Count: req.Count,
		Meta:  req.Meta,
	}

	output, err := h.tokenUseCase.Issue(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("tokens issued",
		slog.Int("count", len(output.Tokens)),
		slog.String("meta", req.Meta),
	)

	response := dto.IssueTokensResponse{
		Tokens: output.Tokens,
		Count:  len(output.Tokens),
	}

	c.JSON(http.StatusCreated, response)
}

// RedeemTokenHandler attempts to consume a token exactly once.
// POST /v1/tokens/redeem - Requires an authenticated admin session.
// An already used token is a 200 business outcome carrying the original
// consumption attribution, not an error.
func (h *TokenHandler) RedeemTokenHandler(c *gin.Context) {
	var req dto.RedeemTokenRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	admin, ok := adminHTTP.GetAdmin(c.Request.Context())
	if !ok {
		// Should never happen if the authentication middleware is in place.
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	input := &tokenDomain.RedeemInput{
		Token:      req.Token,
		RedeemedBy: admin.Username,
	}

	result, err := h.tokenUseCase.Redeem(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("token redemption processed",
		slog.String("status", string(result.Status)),
		slog.String("redeemed_by", admin.Username),
	)

	c.JSON(http.StatusOK, dto.MapRedeemResultToResponse(result))
}

// StatusHandler returns the public existence/used view of a token.
// GET /v1/tokens/:token/status - No authentication required.
// The response never exposes anything beyond the two booleans.
func (h *TokenHandler) StatusHandler(c *gin.Context) {
	tokenValue := c.Param("token")

	output, err := h.tokenUseCase.Lookup(c.Request.Context(), tokenValue)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.TokenStatusResponse{
		Exists: output.Exists,
		Used:   output.Used,
	}

	c.JSON(http.StatusOK, response)
}

// QRCodeHandler renders the token's public scan URL as a PNG QR code.
// GET /v1/tokens/:token/qrcode - No authentication required.
// Returns 404 for unknown tokens so codes cannot be minted for values that
// were never issued.
func (h *TokenHandler) QRCodeHandler(c *gin.Context) {
	tokenValue := c.Param("token")

	output, err := h.tokenUseCase.Lookup(c.Request.Context(), tokenValue)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	if !output.Exists {
		httputil.HandleErrorGin(c, apperrors.ErrNotFound, h.logger)
		return
	}

	scanURL := fmt.Sprintf("%s/v1/tokens/%s/status", h.publicBaseURL, tokenValue)

	png, err := h.renderer.RenderPNG(scanURL, h.qrCodeSize)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// DashboardHandler returns aggregate stats and the most recent tokens.
// GET /v1/dashboard - Requires an authenticated admin session.
// Accepts an optional limit query parameter.
func (h *TokenHandler) DashboardHandler(c *gin.Context) {
	limit, err := httputil.ParseLimit(c, h.dashboardLimit)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	output, err := h.tokenUseCase.Dashboard(c.Request.Context(), limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDashboardToResponse(output.Stats, output.Recent))
}
