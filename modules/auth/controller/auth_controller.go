package controller

import (
	"net/http"
	"time"

	"github.com/prasen-shakya/Schedulify/core/config"
	"github.com/prasen-shakya/Schedulify/core/constants"
	"github.com/prasen-shakya/Schedulify/core/controller"
	"github.com/prasen-shakya/Schedulify/core/errors"
	"github.com/prasen-shakya/Schedulify/core/utils"
	"github.com/prasen-shakya/Schedulify/modules/auth/dto"
	"github.com/prasen-shakya/Schedulify/modules/auth/service"
	"github.com/prasen-shakya/Schedulify/modules/auth/validator"

	"github.com/labstack/echo/v4"
)

// AuthController handles registration, login, logout and session checks.
type AuthController struct {
	controller.BaseController
	AuthService service.AuthServiceInterface
}

func NewAuthController(svc service.AuthServiceInterface) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		AuthService:    svc,
	}
}

// Register handles POST /api/register
// @Summary Register a new account
// @Description Creates a user and opens a session via an httpOnly cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Account details"
// @Success 201 {object} controller.MessageResponse
// @Failure 400 {object} controller.ErrorResponse
// @Router /register [post]
func (c *AuthController) Register(ctx echo.Context) error {
	requestData := new(dto.RegisterRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(ctx, "Invalid request data")
	}

	validationResult := validator.ValidateRegisterRequest(requestData)
	if validationResult.HasError() {
		return c.BadRequest(ctx, validationResult.First())
	}

	session, appErr := c.AuthService.Register(ctx.Request().Context(), requestData)
	if appErr != nil {
		return c.AppError(ctx, appErr)
	}

	c.setSessionCookie(ctx, session)
	return c.Message(ctx, http.StatusCreated, "User registered successfully.")
}

// Login handles POST /api/login
// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} controller.MessageResponse
// @Failure 400 {object} controller.ErrorResponse
// @Router /login [post]
func (c *AuthController) Login(ctx echo.Context) error {
	requestData := new(dto.LoginRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(ctx, "Invalid request data")
	}

	validationResult := validator.ValidateLoginRequest(requestData)
	if validationResult.HasError() {
		return c.BadRequest(ctx, validationResult.First())
	}

	session, appErr := c.AuthService.Login(ctx.Request().Context(), requestData)
	if appErr != nil {
		// Credential failures come back as 400 with the unified message.
		if appErr.Code == errors.ErrInvalidInput || appErr.Code == errors.ErrUnauthorized {
			return c.BadRequest(ctx, appErr.Message)
		}
		return c.AppError(ctx, appErr)
	}

	c.setSessionCookie(ctx, session)
	return c.Message(ctx, http.StatusOK, "Login successful.")
}

// Logout handles POST /api/logout
// @Summary Log out
// @Tags Auth
// @Produce json
// @Success 200 {object} controller.MessageResponse
// @Router /logout [post]
func (c *AuthController) Logout(ctx echo.Context) error {
	if token, err := utils.GetTokenFromRequest(ctx); err == nil {
		if appErr := c.AuthService.Logout(ctx.Request().Context(), token); appErr != nil {
			return c.AppError(ctx, appErr)
		}
	}

	c.clearSessionCookie(ctx)
	return c.Message(ctx, http.StatusOK, "Logged out successfully.")
}

// CheckAuthenticationStatus handles GET /api/checkAuthenticationStatus
// @Summary Report the caller's session status
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Failure 401 {object} controller.MessageResponse
// @Router /checkAuthenticationStatus [get]
func (c *AuthController) CheckAuthenticationStatus(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(ctx, "Not authenticated")
	}

	return c.OK(ctx, dto.StatusResponse{
		UserID:  claims.UserID.String(),
		Message: "Authenticated",
	})
}

func (c *AuthController) setSessionCookie(ctx echo.Context, session *dto.SessionData) {
	ctx.SetCookie(&http.Cookie{
		Name:     constants.TokenCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		MaxAge:   int(time.Until(session.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   config.Get().Env == "production",
		SameSite: http.SameSiteLaxMode,
	})
}

func (c *AuthController) clearSessionCookie(ctx echo.Context) {
	ctx.SetCookie(&http.Cookie{
		Name:     constants.TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   config.Get().Env == "production",
		SameSite: http.SameSiteLaxMode,
	})
}
