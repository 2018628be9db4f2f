package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "vita/internal/errors"
	"vita/internal/models"
)

// userService handles account lifecycle and credential checks.
type userService struct {
	db             *gorm.DB
	minPasswordLen int
}

// NewUserService creates a new UserServicer. minPasswordLen is policy from
// configuration, applied to password changes (registration predates the policy
// in the original API and is validated at the request layer instead).
func NewUserService(db *gorm.DB, minPasswordLen int) UserServicer {
	return &userService{db: db, minPasswordLen: minPasswordLen}
}

// Register creates a new user with a bcrypt-hashed password. Email and display
// name are checked together in one query; either collision yields the same
// generic conflict error so the response does not reveal which field clashed.
func (s *userService) Register(displayName, email, password string) (*models.User, error) {
	if displayName == "" || email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "display name, email and password are required")
	}

	email = strings.ToLower(email)

	var count int64
	if err := s.db.Model(&models.User{}).
		Where("email = ? OR display_name = ?", email, displayName).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateIdentity
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		DisplayName: displayName,
		Email:       email,
		Password:    string(hashed),
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return user, nil
}

// Authenticate verifies email/password credentials. Unknown email and wrong
// password produce the identical error so callers cannot enumerate accounts.
func (s *userService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", strings.ToLower(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return &user, nil
}

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// UpdateProfile changes display name and/or email. Empty arguments mean "keep
// the current value"; uniqueness is re-checked only for fields that actually
// change. Tokens embed identity claims, so the caller reissues one afterwards.
func (s *userService) UpdateProfile(userID uint, displayName, email string) (*models.User, error) {
	if displayName == "" && email == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "at least one of display name or email is required")
	}

	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if email != "" {
		email = strings.ToLower(email)
		if email != user.Email {
			var count int64
			if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			if count > 0 {
				return nil, apperrors.ErrDuplicateIdentity
			}
			updates["email"] = email
		}
	}

	if displayName != "" && displayName != user.DisplayName {
		var count int64
		if err := s.db.Model(&models.User{}).Where("display_name = ?", displayName).Count(&count).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count > 0 {
			return nil, apperrors.ErrDuplicateIdentity
		}
		updates["display_name"] = displayName
	}

	if len(updates) > 0 {
		if err := s.db.Model(user).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return user, nil
}

// UpdatePassword replaces the password hash after verifying the current
// password. The new password must differ from the current one and satisfy
// the minimum length policy.
func (s *userService) UpdatePassword(userID uint, currentPassword, newPassword string) (*models.User, error) {
	if currentPassword == "" || newPassword == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "current and new password are required")
	}
	if len(newPassword) < s.minPasswordLen {
		return nil, apperrors.ErrPasswordTooShort
	}

	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)) != nil {
		return nil, apperrors.ErrWrongPassword
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(newPassword)) == nil {
		return nil, apperrors.ErrSamePassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Model(user).Update("password", string(hashed)).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return user, nil
}

// DeleteAccount removes the user and every record they own after password
// re-confirmation. All deletes run in one transaction, children before parent;
// any failure rolls back fully.
func (s *userService) DeleteAccount(userID uint, password string) error {
	if password == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "password is required to delete the account")
	}

	user, err := s.GetUserByID(userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return apperrors.ErrWrongPassword
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Note{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.PomodoroTask{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.CalendarEvent{}).Error; err != nil {
			return err
		}
		return tx.Delete(user).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
