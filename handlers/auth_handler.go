package handlers

import (
	"github.com/gin-gonic/gin"

	"skibidi-db/helper"
	"skibidi-db/middleware"
	"skibidi-db/models"
	"skibidi-db/services"
)

type AuthHandler struct {
	authService         services.AuthService
	contributionService services.ContributionService
	Helper              *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, contributionService services.ContributionService, httpHelper *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{
		authService:         authService,
		contributionService: contributionService,
		Helper:              httpHelper,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	response, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Register success", response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Login success", response)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context(), middleware.CurrentIdentity(c)); err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Signed out", h.Helper.EmptyJsonMap())
}

// Session answers the initial session check: the caller's profile, or null.
func (h *AuthHandler) Session(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if identity == nil {
		h.Helper.SendSuccess(c, "No active session", nil)
		return
	}

	profile, err := h.authService.GetProfile(c.Request.Context(), identity.ProfileID)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Session loaded", profile)
}

func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req models.PasswordResetRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	if err := h.authService.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "If the address is registered, a reset link is on its way", h.Helper.EmptyJsonMap())
}

func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var req models.PasswordResetConfirmRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Password updated", h.Helper.EmptyJsonMap())
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req models.VerifyEmailRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	if err := h.authService.VerifyEmail(c.Request.Context(), req.Token); err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Email verified", h.Helper.EmptyJsonMap())
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	profile, err := h.authService.GetProfile(c.Request.Context(), identity.ProfileID)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Profile loaded", profile)
}

func (h *AuthHandler) GetMyContributions(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	contributions, err := h.contributionService.ListMine(c.Request.Context(), identity.ProfileID)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Contributions loaded", contributions)
}
