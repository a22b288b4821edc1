package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingSecret = errors.New("jwt secret not set")
	ErrInvalidToken  = errors.New("invalid token")
)

// Principal is the caller identity carried by a bearer token.
type Principal struct {
	UserID string
	Email  string
	Token  string
}

type claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Validator checks HS256 bearer tokens issued with a shared secret.
type Validator struct {
	secret []byte
	now    func() time.Time
}

func NewValidator(secret string) (*Validator, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &Validator{secret: []byte(secret), now: time.Now}, nil
}

func (v *Validator) Validate(tokenString string) (Principal, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.secret, nil
	}, jwt.WithTimeFunc(v.now))
	if err != nil || !token.Valid {
		return Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if c.Subject == "" {
		return Principal{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return Principal{UserID: c.Subject, Email: c.Email, Token: tokenString}, nil
}
