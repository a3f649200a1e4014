// Package auth provides authentication and authorization support for the
// http layer. Claims are parsed out of the bearer token and stashed on the
// request context for the repositories to check.
package auth

import (
	"crypto/rsa"
	"os"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

const (
	RoleAdmin      = "ADMIN"
	RoleSupervisor = "SUPERVISOR"
	RoleEmployee   = "EMPLOYEE"
)

// ctxKey represents the type of value for the context key.
type ctxKey int

// Key is used to store/retrieve a Claims value from a context.Context.
const Key ctxKey = 1

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.StandardClaims
	UserId int    `json:"user_id"`
	Role   string `json:"role"`
	Type   string `json:"type"`
}

// Authorized returns true if the claims carry one of the wanted roles.
func (c Claims) Authorized(roles ...string) bool {
	for _, role := range roles {
		if c.Role == role {
			return true
		}
	}
	return false
}

// Auth is used to authenticate clients.
type Auth struct {
	publicKey *rsa.PublicKey
}

// New reads the RSA private key used to sign tokens and keeps the public
// half for verification.
func New(privateKeyPath string) (*Auth, error) {
	pem, err := os.ReadFile(privateKeyPath)
	if err != nil {
		return nil, errors.Wrap(err, "reading private key file")
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(pem)
	if err != nil {
		return nil, errors.Wrap(err, "parsing private key")
	}

	return &Auth{publicKey: &privateKey.PublicKey}, nil
}

// ValidateToken recreates the Claims that were used to generate a token.
// It verifies the token was signed with our key.
func (a *Auth) ValidateToken(tokenStr string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return a.publicKey, nil
	})
	if err != nil {
		return Claims{}, errors.Wrap(err, "parsing token")
	}

	if !token.Valid {
		return Claims{}, errors.New("invalid token")
	}

	return claims, nil
}
