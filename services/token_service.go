package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	apperrors "shop-backend/common/errors"
)

// Claims are the fields this application puts into its access tokens. The
// user id travels in "_id", matching what clients already expect.
type Claims struct {
	UserID string
	Role   string
}

type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Generate signs an HS256 access token for the user. Role is only included
// when non-empty (regular logins carry no role claim).
func (s *TokenService) Generate(userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"_id": userID,
		"exp": time.Now().Add(s.ttl).Unix(),
	}
	if role != "" {
		claims["role"] = role
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate parses and verifies a token, returning its claims.
func (s *TokenService) Validate(tokenStr string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.Wrap(apperrors.ErrInvalidToken, err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperrors.ErrInvalidToken
	}

	userID, ok := mapClaims["_id"].(string)
	if !ok || userID == "" {
		return nil, apperrors.ErrInvalidToken
	}

	claims := &Claims{UserID: userID}
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = role
	}
	return claims, nil
}
