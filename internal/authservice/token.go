package authservice

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func NewAuthService(secret string) *AuthService {
	return &AuthService{secret: []byte(secret)}
}

// IssueToken signs a credential asserting the given email with the fixed
// expiry. The email must already be validated by the caller.
func (s *AuthService) IssueToken(email string) (string, error) {
	now := time.Now()

	identity := Identity{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, identity)

	return token.SignedString(s.secret)
}

// VerifyToken validates a credential and returns the identity it asserts.
// Expired, tampered or otherwise malformed tokens all map to ErrInvalidToken.
func (s *AuthService) VerifyToken(raw string) (*Identity, error) {
	var identity Identity

	token, err := jwt.ParseWithClaims(raw, &identity, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return &identity, nil
}
