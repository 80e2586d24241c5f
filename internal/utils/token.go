package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const confirmScope = "email-confirm"

// ConfirmTokenTTL is how long a confirmation link stays valid.
const ConfirmTokenTTL = time.Hour

var (
	ErrTokenExpired = errors.New("confirmation token expired")
	ErrTokenInvalid = errors.New("confirmation token invalid")
)

// MintConfirmToken signs a token binding an email address to the
// email-confirm action for the given window.
func MintConfirmToken(secret []byte, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   email,
		"scope": confirmScope,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

// VerifyConfirmToken checks signature, expiry and scope, returning the bound
// email address. Expiry is reported distinctly from every other defect so
// callers can tell the user to request a fresh link instead of re-registering.
func VerifyConfirmToken(secret []byte, token string) (string, error) {
	tok, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || claims["scope"] != confirmScope {
		return "", ErrTokenInvalid
	}
	email, _ := claims["sub"].(string)
	if email == "" {
		return "", ErrTokenInvalid
	}
	return email, nil
}
