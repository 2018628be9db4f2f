package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "vita/internal/errors"
	"vita/internal/mailer"
	"vita/internal/models"
)

// resetTokenBytes is the entropy of a reset token; hex-encoded it becomes the
// 64-character string stored and mailed out.
const resetTokenBytes = 32

// passwordResetService implements the forgot/reset password flow.
type passwordResetService struct {
	db             *gorm.DB
	mail           mailer.Mailer
	tokenTTL       time.Duration
	frontendURL    string
	minPasswordLen int
}

// NewPasswordResetService creates a new PasswordResetServicer.
func NewPasswordResetService(db *gorm.DB, mail mailer.Mailer, tokenTTL time.Duration, frontendURL string, minPasswordLen int) PasswordResetServicer {
	return &passwordResetService{
		db:             db,
		mail:           mail,
		tokenTTL:       tokenTTL,
		frontendURL:    frontendURL,
		minPasswordLen: minPasswordLen,
	}
}

// RequestReset issues a fresh single-use token for the email and mails a reset
// link. Any earlier tokens for the address are deleted first, so at most one
// token is live per email. A mail delivery failure is reported to the caller,
// but the token row is kept so the link can be resent manually.
func (s *passwordResetService) RequestReset(email string) error {
	if email == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "email is required")
	}
	email = strings.ToLower(email)

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	raw := make([]byte, resetTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	resetToken := hex.EncodeToString(raw)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", email).Delete(&models.PasswordReset{}).Error; err != nil {
			return err
		}
		return tx.Create(&models.PasswordReset{
			Email:     email,
			Token:     resetToken,
			ExpiresAt: time.Now().Add(s.tokenTTL),
		}).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", s.frontendURL, resetToken)
	if err := s.mail.Send(email, "Vita - Password Reset Request", resetEmailBody(user.DisplayName, resetURL)); err != nil {
		return apperrors.Wrap(apperrors.ErrMailSendFailed, err)
	}

	return nil
}

// ResetPassword redeems a token and sets a new password. Invalid, expired and
// never-issued tokens all produce the same generic error. Redemption deletes
// every token for the email, so a token can be used at most once.
func (s *passwordResetService) ResetPassword(token, newPassword string) error {
	if token == "" || newPassword == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "token and new password are required")
	}
	if len(newPassword) < s.minPasswordLen {
		return apperrors.ErrPasswordTooShort
	}

	var reset models.PasswordReset
	if err := s.db.Where("token = ? AND expires_at > ?", token, time.Now()).First(&reset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvalidResetToken
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var user models.User
	if err := s.db.Where("email = ?", reset.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Update("password", string(hashed)).Error; err != nil {
			return err
		}
		return tx.Where("email = ?", reset.Email).Delete(&models.PasswordReset{}).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return nil
}

// resetEmailBody renders the HTML body of the reset email.
func resetEmailBody(displayName, resetURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<body style="font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; color: #333; background-color: #f9f9f9; margin: 0; padding: 0;">
  <div style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 8px; overflow: hidden;">
    <div style="background-color: #26282b; color: white; padding: 20px; text-align: center;">
      <h1 style="margin: 0; font-size: 24px;">Vita Dashboard</h1>
    </div>
    <div style="padding: 30px;">
      <p style="font-size: 18px; font-weight: 600;">Hello %s,</p>
      <p>You requested a password reset for your Vita Dashboard account.
         Click the button below to choose a new password:</p>
      <div style="text-align: center;">
        <a href="%s" style="display: inline-block; background-color: #26282b; color: white; text-decoration: none; padding: 12px 24px; border-radius: 5px; font-weight: bold;">Reset my password</a>
      </div>
      <p style="word-break: break-all; font-size: 14px; color: #666;">If the button does not work, copy this link into your browser: %s</p>
      <p style="font-size: 14px; color: #888; border-left: 3px solid #26282b; background-color: #f5f5f5; padding: 10px;">
        This link is valid for one hour and can be used only once.
      </p>
      <p>If you did not make this request, please ignore this email and review your account security.</p>
      <p>Regards,<br>The Vita Dashboard Team</p>
    </div>
  </div>
</body>
</html>`, displayName, resetURL, resetURL)
}
