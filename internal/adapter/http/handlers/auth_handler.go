package handlers

import (
	"errors"
	"net/http"

	request "github.com/rezaesmaeili3562-spec/login.b/internal/adapter/http/dto/request"
	response "github.com/rezaesmaeili3562-spec/login.b/internal/adapter/http/dto/response"
	"github.com/rezaesmaeili3562-spec/login.b/internal/domain/entities"
	"github.com/rezaesmaeili3562-spec/login.b/internal/infrastructure/token"
	"github.com/rezaesmaeili3562-spec/login.b/internal/usecase"
	"github.com/rezaesmaeili3562-spec/login.b/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAuthPayload = pkg.NewDomainErrorSimple("INVALID_AUTH_INPUT", "Invalid auth payload", http.StatusBadRequest)
)

// AuthHandler exposes the session lifecycle: one-time-code login, credential
// login, registration and profile management.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// RequestCode prepares a one-time verification code for the phone number.
func (h *AuthHandler) RequestCode(c *gin.Context) {
	var payload request.RequestCodeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	if err := h.usecase.RequestCode(c.Request.Context(), payload.Phone); err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "کد تایید ارسال شد"})
}

// VerifyCode completes the one-time-code login and establishes the session.
func (h *AuthHandler) VerifyCode(c *gin.Context) {
	var payload request.VerifyCodeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	user, err := h.usecase.VerifyCode(c.Request.Context(), payload.Code)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.respondWithSession(c, user, http.StatusOK)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	user, err := h.usecase.LoginWithCredentials(c.Request.Context(), payload.Login, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.respondWithSession(c, user, http.StatusOK)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	user, err := h.usecase.Register(c.Request.Context(), usecase.RegisterInput{
		Name:     payload.Name,
		Phone:    payload.Phone,
		Password: payload.Password,
	})
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromUser(user))
}

// ForgotPassword acknowledges reset requests without revealing whether the
// phone is registered.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var payload request.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	if err := h.usecase.ForgotPassword(c.Request.Context(), payload.Phone); err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "در صورت وجود حساب، پیام بازیابی ارسال شد"})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.usecase.Logout(c.Request.Context()); err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "خروج انجام شد"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := h.usecase.CurrentUser(c.Request.Context())
	if !ok {
		appErr := mapAuthError(usecase.ErrNotAuthenticated)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var payload request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	user, err := h.usecase.UpdateProfile(c.Request.Context(), usecase.ProfilePatch{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *AuthHandler) respondWithSession(c *gin.Context, user entities.User, status int) {
	signed, err := token.Generate(user)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(status, response.AuthResponse{Token: signed, User: response.FromUser(user)})
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPhone):
		return pkg.NewDomainErrorSimple("INVALID_PHONE", "Invalid phone number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWeakPassword):
		return pkg.NewDomainErrorSimple("WEAK_PASSWORD", "Password is too short", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCodeExpired):
		return pkg.NewDomainErrorSimple("CODE_EXPIRED", "Verification code expired", http.StatusGone)
	case errors.Is(err, usecase.ErrCodeMismatch):
		return pkg.NewDomainErrorSimple("CODE_MISMATCH", "Verification code mismatch", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrNotAuthenticated):
		return pkg.NewDomainErrorSimple("NOT_AUTHENTICATED", "Not authenticated", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPhoneAlreadyRegistered):
		return pkg.NewDomainErrorSimple("PHONE_ALREADY_REGISTERED", "Phone already registered", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
