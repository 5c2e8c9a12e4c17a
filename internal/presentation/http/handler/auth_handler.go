package handler

import (
	"github.com/ahamedrahman2000/njv-travels/internal/application/service"
	"github.com/ahamedrahman2000/njv-travels/internal/presentation/http/dto/request"
	"github.com/ahamedrahman2000/njv-travels/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles login and the operator profile
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles operator login
// @Summary Login
// @Description Authenticate the operator and return tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Login credentials"
// @Success 200 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	output, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", tokenPayload(output))
}

// RefreshToken exchanges a refresh token for a new token pair
// @Summary Refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	output, err := h.authService.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Token refreshed successfully", tokenPayload(output))
}

// GetProfile returns the business profile of the signed-in operator
func (h *AuthHandler) GetProfile(c *gin.Context) {
	operatorID := requireOperator(c)
	if operatorID == nil {
		return
	}

	operator, err := h.authService.GetProfile(c.Request.Context(), *operatorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile retrieved successfully", operator)
}

// UpdateProfile saves the business profile form
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	operatorID := requireOperator(c)
	if operatorID == nil {
		return
	}

	var req request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	operator, err := h.authService.UpdateProfile(c.Request.Context(), &service.UpdateProfileInput{
		OperatorID:    *operatorID,
		FullName:      req.FullName,
		Email:         req.Email,
		Mobile:        req.Mobile,
		Address:       req.Address,
		Aadhaar:       req.Aadhaar,
		PAN:           req.PAN,
		LicenseNumber: req.LicenseNumber,
		ProfilePhoto:  req.ProfilePhoto,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile updated successfully", operator)
}

// ChangePassword handles password change
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	operatorID := requireOperator(c)
	if operatorID == nil {
		return
	}

	var req request.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), &service.ChangePasswordInput{
		OperatorID:      *operatorID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Password changed successfully", nil)
}

// ForgotPassword mails a reset link to the operator
// @Summary Forgot password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.ForgotPasswordRequest true "Operator email"
// @Success 200 {object} response.APIResponse
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req request.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.authService.ForgotPassword(c.Request.Context(), &service.ForgotPasswordInput{
		Email: req.Email,
	}); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "If the email exists, a reset link has been sent", nil)
}

// ResetPassword sets a new password from an emailed token
// @Summary Reset password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.ResetPasswordRequest true "Reset token and new password"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req request.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), &service.ResetPasswordInput{
		Email:       req.Email,
		Token:       req.Token,
		NewPassword: req.Password,
	}); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Password has been reset", nil)
}

func tokenPayload(output *service.LoginOutput) gin.H {
	return gin.H{
		"operator":      output.Operator,
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
		"token_type":    "Bearer",
	}
}
