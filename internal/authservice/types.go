package authservice

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTime is the fixed lifetime of an issued credential.
const TokenTime = 10 * time.Hour

var (
	ErrInvalidToken = errors.New("invalid or expired token")

	AnonymousIdentity = Identity{}
)

// Identity is the set of claims carried inside a signed credential. It is
// never persisted; the email is the only claim the services act on.
type Identity struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (i *Identity) IsAnonymous() bool {
	return i.Email == ""
}

type AuthService struct {
	secret []byte
}
