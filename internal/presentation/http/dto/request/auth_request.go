package request

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=NewPassword"`
}

// ForgotPasswordRequest represents a password reset link request
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest represents a password reset with an emailed token
type ResetPasswordRequest struct {
	Token           string `json:"token" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" binding:"required,eqfield=Password"`
}

// UpdateProfileRequest represents the business profile form
type UpdateProfileRequest struct {
	FullName      string  `json:"full_name"`
	Email         string  `json:"email"`
	Mobile        *string `json:"mobile"`
	Address       *string `json:"address"`
	Aadhaar       *string `json:"aadhaar"`
	PAN           *string `json:"pan"`
	LicenseNumber *string `json:"license_number"`
	ProfilePhoto  *string `json:"profile_photo"`
}
