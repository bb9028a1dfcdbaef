package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	apperrors "shop-backend/common/errors"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// PasswordResetService handles the forgot/reset password flow. The reset
// token lives on the user document with a one-hour expiry.
type PasswordResetService struct {
	users        UserStore
	mailer       Mailer
	tokenTTL     time.Duration
	resetURLBase string
}

func NewPasswordResetService(users UserStore, mailer Mailer, tokenTTL time.Duration, resetURLBase string) *PasswordResetService {
	return &PasswordResetService{
		users:        users,
		mailer:       mailer,
		tokenTTL:     tokenTTL,
		resetURLBase: resetURLBase,
	}
}

// Forgot generates a reset token for the account, stores it with its
// expiry, and mails the reset link.
func (s *PasswordResetService) Forgot(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	if user == nil {
		return apperrors.WithMessage(apperrors.ErrNotFound, "User not found!")
	}

	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	token := hex.EncodeToString(buf)
	expires := time.Now().Add(s.tokenTTL)

	updates := bson.M{
		"resetToken":          token,
		"resetTokenExpiresAt": expires,
	}
	if _, err := s.users.Update(ctx, user.ID, updates); err != nil {
		return apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}

	resetURL := fmt.Sprintf("%s?token=%s", s.resetURLBase, token)
	body := fmt.Sprintf("Click the link to reset your password: %s", resetURL)
	if err := s.mailer.Send(email, "Password reset", body); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Reset consumes an unexpired token and replaces the account password.
func (s *PasswordResetService) Reset(ctx context.Context, token, password string) error {
	user, err := s.users.FindByResetToken(ctx, token, time.Now())
	if err != nil {
		return apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	if user == nil {
		return apperrors.WithMessage(apperrors.ErrNotFound, "Invalid or expired token.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	updates := bson.M{
		"password":            string(hashed),
		"resetToken":          "",
		"resetTokenExpiresAt": time.Time{},
	}
	if _, err := s.users.Update(ctx, user.ID, updates); err != nil {
		return apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	return nil
}
