package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/ahamedrahman2000/njv-travels/internal/domain/entity"
	"github.com/ahamedrahman2000/njv-travels/internal/domain/repository"
	"github.com/ahamedrahman2000/njv-travels/pkg/apperror"
	"github.com/ahamedrahman2000/njv-travels/pkg/utils"
	"github.com/google/uuid"
)

const (
	minPasswordLength = 8
	resetTokenTTL     = time.Hour
)

// PasswordResetMailer delivers reset links to the operator
type PasswordResetMailer interface {
	SendPasswordResetEmail(toEmail, token string, expiresIn time.Duration) error
}

// AuthService handles operator login and the business profile
type AuthService struct {
	operatorRepo repository.OperatorRepository
	resetRepo    repository.PasswordResetTokenRepository
	jwtManager   *utils.JWTManager
	mailer       PasswordResetMailer
}

// NewAuthService creates a new auth service
func NewAuthService(
	operatorRepo repository.OperatorRepository,
	resetRepo repository.PasswordResetTokenRepository,
	jwtManager *utils.JWTManager,
	mailer PasswordResetMailer,
) *AuthService {
	return &AuthService{
		operatorRepo: operatorRepo,
		resetRepo:    resetRepo,
		jwtManager:   jwtManager,
		mailer:       mailer,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	Operator     *entity.Operator
	AccessToken  string
	RefreshToken string
}

// Login authenticates the operator and returns tokens
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	operator, err := s.operatorRepo.GetByEmail(ctx, strings.TrimSpace(input.Email))
	if err != nil {
		return nil, err
	}
	if operator == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, operator.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	now := time.Now()
	operator.LastLoginAt = &now
	if err := s.operatorRepo.Update(ctx, operator); err != nil {
		log.Printf("Warning: failed to record login for %s: %v", operator.Email, err)
	}

	return s.issueTokens(operator)
}

// RefreshToken generates new tokens from a refresh token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	operatorID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	operator, err := s.operatorRepo.GetByID(ctx, operatorID)
	if err != nil {
		return nil, err
	}
	if operator == nil {
		return nil, apperror.ErrInvalidToken
	}

	return s.issueTokens(operator)
}

func (s *AuthService) issueTokens(operator *entity.Operator) (*LoginOutput, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(operator.ID, operator.Email)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(operator.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		Operator:     operator,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// EnsureOperator creates the operator account on first start. An existing
// account is left as it is.
func (s *AuthService) EnsureOperator(ctx context.Context, email, password, fullName string) (*entity.Operator, error) {
	existing, err := s.operatorRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	operator := &entity.Operator{
		Email:    email,
		Password: hashedPassword,
		FullName: fullName,
	}
	if err := s.operatorRepo.Create(ctx, operator); err != nil {
		return nil, err
	}

	log.Printf("Seeded operator account %s", email)
	return operator, nil
}

// GetProfile returns the operator's business profile
func (s *AuthService) GetProfile(ctx context.Context, operatorID uuid.UUID) (*entity.Operator, error) {
	operator, err := s.operatorRepo.GetByID(ctx, operatorID)
	if err != nil {
		return nil, err
	}
	if operator == nil {
		return nil, apperror.NewNotFoundError("Profile")
	}
	return operator, nil
}

// UpdateProfileInput represents the update profile input
type UpdateProfileInput struct {
	OperatorID    uuid.UUID
	FullName      string
	Email         string
	Mobile        *string
	Address       *string
	Aadhaar       *string
	PAN           *string
	LicenseNumber *string
	ProfilePhoto  *string
}

// UpdateProfile updates the operator's business profile
func (s *AuthService) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.Operator, error) {
	operator, err := s.GetProfile(ctx, input.OperatorID)
	if err != nil {
		return nil, err
	}

	if email := strings.TrimSpace(input.Email); email != "" && !strings.EqualFold(email, operator.Email) {
		existing, err := s.operatorRepo.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != operator.ID {
			return nil, apperror.NewConflictError("Email already registered")
		}
		operator.Email = email
	}

	if input.FullName != "" {
		operator.FullName = input.FullName
	}
	if input.Mobile != nil {
		operator.Mobile = input.Mobile
	}
	if input.Address != nil {
		operator.Address = input.Address
	}
	if input.Aadhaar != nil {
		operator.Aadhaar = input.Aadhaar
	}
	if input.PAN != nil {
		pan := strings.ToUpper(strings.TrimSpace(*input.PAN))
		operator.PAN = &pan
	}
	if input.LicenseNumber != nil {
		operator.LicenseNumber = input.LicenseNumber
	}
	if input.ProfilePhoto != nil {
		operator.ProfilePhoto = input.ProfilePhoto
	}

	if err := s.operatorRepo.Update(ctx, operator); err != nil {
		return nil, apperror.NewStoreWriteError("save profile", err)
	}

	return operator, nil
}

// ChangePasswordInput represents the change password input
type ChangePasswordInput struct {
	OperatorID      uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// ChangePassword changes the operator's password
func (s *AuthService) ChangePassword(ctx context.Context, input *ChangePasswordInput) error {
	operator, err := s.GetProfile(ctx, input.OperatorID)
	if err != nil {
		return err
	}

	if !utils.CheckPasswordHash(input.CurrentPassword, operator.Password) {
		return apperror.NewBadRequestError("Current password is incorrect")
	}
	if len(input.NewPassword) < minPasswordLength {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "new_password", Message: "Password must be at least 8 characters"},
		})
	}

	hashedPassword, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	return s.operatorRepo.UpdatePassword(ctx, operator.ID, hashedPassword)
}

// ForgotPasswordInput represents the forgot password input
type ForgotPasswordInput struct {
	Email string
}

// ForgotPassword mails a reset link when the email belongs to the operator.
// It reports success either way so the endpoint does not reveal which
// addresses have an account.
func (s *AuthService) ForgotPassword(ctx context.Context, input *ForgotPasswordInput) error {
	email := strings.TrimSpace(input.Email)
	operator, err := s.operatorRepo.GetByEmail(ctx, email)
	if err != nil {
		log.Printf("Warning: forgot-password lookup failed: %v", err)
		return nil
	}
	if operator == nil {
		return nil
	}

	if err := s.resetRepo.DeleteExpired(ctx); err != nil {
		log.Printf("Warning: failed to delete expired reset tokens: %v", err)
	}
	if err := s.resetRepo.DeleteByOperator(ctx, operator.ID); err != nil {
		log.Printf("Warning: failed to delete old reset tokens: %v", err)
	}

	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return err
	}
	token := hex.EncodeToString(tokenBytes)

	resetToken := &entity.PasswordResetToken{
		OperatorID: operator.ID,
		Email:      operator.Email,
		TokenHash:  hashResetToken(token),
		ExpiresAt:  time.Now().Add(resetTokenTTL),
	}
	if err := s.resetRepo.Create(ctx, resetToken); err != nil {
		return apperror.NewStoreWriteError("create reset token", err)
	}

	if err := s.mailer.SendPasswordResetEmail(operator.Email, token, resetTokenTTL); err != nil {
		log.Printf("Warning: failed to send reset email to %s: %v", operator.Email, err)
	}
	return nil
}

// ResetPasswordInput represents the reset password input
type ResetPasswordInput struct {
	Email       string
	Token       string
	NewPassword string
}

// ResetPassword sets a new password using an emailed reset token. A token
// can be redeemed once.
func (s *AuthService) ResetPassword(ctx context.Context, input *ResetPasswordInput) error {
	if len(input.NewPassword) < minPasswordLength {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "password", Message: "Password must be at least 8 characters"},
		})
	}

	invalid := apperror.NewBadRequestError("Invalid or expired reset token")

	resetToken, err := s.resetRepo.GetByTokenHash(ctx, hashResetToken(input.Token))
	if err != nil {
		return err
	}
	if resetToken == nil || !resetToken.IsValid() {
		return invalid
	}
	if !strings.EqualFold(resetToken.Email, strings.TrimSpace(input.Email)) {
		return invalid
	}

	operator, err := s.operatorRepo.GetByID(ctx, resetToken.OperatorID)
	if err != nil {
		return err
	}
	if operator == nil {
		return invalid
	}

	hashedPassword, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	if err := s.resetRepo.MarkAsUsed(ctx, resetToken.ID); err != nil {
		if errors.Is(err, repository.ErrStateChanged) {
			return invalid
		}
		return apperror.NewStoreWriteError("redeem reset token", err)
	}
	if err := s.operatorRepo.UpdatePassword(ctx, operator.ID, hashedPassword); err != nil {
		return apperror.NewStoreWriteError("reset password", err)
	}

	if err := s.resetRepo.DeleteByOperator(ctx, operator.ID); err != nil {
		log.Printf("Warning: failed to delete reset tokens: %v", err)
	}
	return nil
}

func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
