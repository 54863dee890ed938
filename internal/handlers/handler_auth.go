package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/kamp-org/kamp_backend/internal/core/ports/services"
	"github.com/kamp-org/kamp_backend/internal/dto"
	"github.com/kamp-org/kamp_backend/internal/middleware"
)

// authHandler handles registration and password login.
type authHandler struct {
	userService   portssvc.UserSvcFacade
	memberService portssvc.MemberSvcFacade
	tokenService  portssvc.TokenSvcFacade
}

func newAuthHandler(services *portssvc.ServiceContainer) *authHandler {
	return &authHandler{
		userService:   services.User,
		memberService: services.Member,
		tokenService:  services.Token,
	}
}

// registerAuthRoutes sets up the public authentication routes.
// loginLimit guards every credential-checking endpoint.
func registerAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer, loginLimit gin.HandlerFunc) {
	h := newAuthHandler(services)
	g := newGoogleOAuthHandler(services)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", loginLimit, h.Login)
		auth.POST("/google", loginLimit, g.LoginWithGoogle)
		auth.POST("/google/exchange-code", loginLimit, g.ExchangeCodeGoogle)
	}

	r.POST("/api/v1/organization/members/login", loginLimit, h.MemberLogin)
}

// Register godoc
// @Summary Register new account
// @Description Creates an Organization or Individual account.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration Info"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *authHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.AuthenticateUser(ctx, req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresAt: expiresAt, User: dto.ToUserResponse(user)})
}

// MemberLogin godoc
// @Summary Organization member login
// @Description Authenticates an organization member. Without organizationId the first active membership whose password matches is used.
// @Tags members
// @Accept json
// @Produce json
// @Param login body dto.MemberLoginRequest true "Member Credentials"
// @Success 200 {object} dto.MemberLoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /organization/members/login [post]
func (h *authHandler) MemberLogin(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.MemberLoginRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.memberService.AuthenticateMember(ctx, req.Email, req.Password, req.OrganizationID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, expiresAt, err := h.tokenService.GenerateMemberToken(ctx, member)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to sign member JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.MemberLoginResponse{Token: token, ExpiresAt: expiresAt, Member: dto.ToMemberResponse(member)})
}
