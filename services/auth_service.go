package services

import (
	"context"
	"net/http"
	"time"

	apperrors "shop-backend/common/errors"
	"shop-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 8

// maxWrongPasswords is how many consecutive failures trigger a temporary
// login block.
const maxWrongPasswords = 5

const loginBlockDuration = 24 * time.Hour

// ErrUserExists is returned on duplicate registration. The 203 status is a
// long-standing quirk of this API that clients depend on.
var ErrUserExists = apperrors.New(http.StatusNonAuthoritativeInfo, "User already exists", nil)

// UserStore is the persistence boundary for user accounts. Find methods
// return (nil, nil) when no account matches.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByResetToken(ctx context.Context, token string, now time.Time) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (int64, error)
}

type AuthService struct {
	users  UserStore
	tokens *TokenService
}

func NewAuthService(users UserStore, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a new account with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, user *models.User, password string) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	user.Password = string(hashed)

	if err := s.users.Create(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrUserExists
		}
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	return user, nil
}

// Login verifies credentials and issues an access token. Consecutive wrong
// passwords are counted on the user document and eventually block the
// account for a day; a successful login resets the counter.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	if user == nil {
		return "", apperrors.WithMessage(apperrors.ErrNotFound, "User does not exist")
	}

	now := time.Now()
	if !user.BlockedUntil.IsZero() && user.BlockedUntil.After(now) {
		return "", apperrors.WithMessage(apperrors.ErrForbidden, "Account temporarily blocked")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		updates := bson.M{"wrongPasswordCount": user.WrongPasswordCount + 1}
		if user.WrongPasswordCount+1 >= maxWrongPasswords {
			updates["blockedUntil"] = now.Add(loginBlockDuration)
		}
		if _, err := s.users.Update(ctx, user.ID, updates); err != nil {
			return "", apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
		}
		return "", apperrors.ErrInvalidCredentials
	}

	if user.WrongPasswordCount != 0 || !user.BlockedUntil.IsZero() {
		updates := bson.M{"wrongPasswordCount": 0, "blockedUntil": time.Time{}}
		if _, err := s.users.Update(ctx, user.ID, updates); err != nil {
			return "", apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
		}
	}

	return s.tokens.Generate(user.ID.Hex(), "")
}

// AdminLogin verifies credentials for an administrator account; the issued
// token carries the role claim the admin routes check.
func (s *AuthService) AdminLogin(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	if user == nil {
		return "", apperrors.WithMessage(apperrors.ErrNotFound, "User does not exist")
	}
	if user.Role != models.RoleAdmin {
		return "", apperrors.WithMessage(apperrors.ErrForbidden, "Unauthorized! Only administrator can access")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	return s.tokens.Generate(user.ID.Hex(), user.Role)
}

// Profile returns the account for the authenticated user.
func (s *AuthService) Profile(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	if user == nil {
		return nil, apperrors.WithMessage(apperrors.ErrNotFound, "User not found!")
	}
	return user, nil
}

// UpdateProfile applies the provided name fields and returns the updated
// account. Empty fields are left untouched.
func (s *AuthService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, firstName, lastName, username string) (*models.User, error) {
	updates := bson.M{}
	if firstName != "" {
		updates["first_name"] = firstName
	}
	if lastName != "" {
		updates["last_name"] = lastName
	}
	if username != "" {
		updates["username"] = username
	}

	if len(updates) > 0 {
		matched, err := s.users.Update(ctx, userID, updates)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
		}
		if matched == 0 {
			return nil, apperrors.WithMessage(apperrors.ErrNotFound, "User not found!")
		}
	}

	return s.Profile(ctx, userID)
}
