package commands

import (
	"os"
	"time"

	"workforce/backend/internal/auth"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

const (
	accessTokenTTL  = 12 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

// AuthClaims is the minimal identity the token pair is minted from.
type AuthClaims struct {
	ID   int
	Role string
}

// GenToken generates an access/refresh token pair signed with the RSA
// private key found at privateKeyPath.
func GenToken(claims AuthClaims, privateKeyPath string) (string, string, error) {
	pem, err := os.ReadFile(privateKeyPath)
	if err != nil {
		return "", "", errors.Wrap(err, "reading private key file")
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(pem)
	if err != nil {
		return "", "", errors.Wrap(err, "parsing private key")
	}

	now := time.Now()

	accessClaims := auth.Claims{
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(accessTokenTTL).Unix(),
		},
		UserId: claims.ID,
		Role:   claims.Role,
		Type:   "access",
	}

	refreshClaims := auth.Claims{
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(refreshTokenTTL).Unix(),
		},
		UserId: claims.ID,
		Role:   claims.Role,
		Type:   "refresh",
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodRS256, accessClaims).SignedString(privateKey)
	if err != nil {
		return "", "", errors.Wrap(err, "signing access token")
	}

	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodRS256, refreshClaims).SignedString(privateKey)
	if err != nil {
		return "", "", errors.Wrap(err, "signing refresh token")
	}

	return accessToken, refreshToken, nil
}

// VerifyTokens checks an access/refresh pair together. The access token may
// be expired (that is the point of refreshing) but both must be ours and
// belong to the same user.
func VerifyTokens(accessToken, refreshToken, privateKeyPath string) (auth.Claims, auth.Claims, error) {
	a, err := auth.New(privateKeyPath)
	if err != nil {
		return auth.Claims{}, auth.Claims{}, err
	}

	accessClaims, err := a.ValidateToken(accessToken)
	if err != nil {
		ve, ok := errors.Cause(err).(*jwt.ValidationError)
		if !ok || ve.Errors&jwt.ValidationErrorExpired == 0 {
			return auth.Claims{}, auth.Claims{}, errors.Wrap(err, "validating access token")
		}
	}

	refreshClaims, err := a.ValidateToken(refreshToken)
	if err != nil {
		return auth.Claims{}, auth.Claims{}, errors.Wrap(err, "validating refresh token")
	}

	if refreshClaims.Type != "refresh" {
		return auth.Claims{}, auth.Claims{}, errors.New("not a refresh token")
	}
	if accessClaims.UserId != 0 && accessClaims.UserId != refreshClaims.UserId {
		return auth.Claims{}, auth.Claims{}, errors.New("token pair mismatch")
	}

	return accessClaims, refreshClaims, nil
}
