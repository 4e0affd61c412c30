package utils

import (
	"errors"
	"time"

	"github.com/ChristianMoraLopez/nutriplanbackend/config"
	"github.com/ChristianMoraLopez/nutriplanbackend/models"

	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL is the fixed lifetime of an issued session token.
const tokenTTL = time.Hour

// Claims is the payload carried by every locally issued bearer token.
type Claims struct {
	UsuarioID uint   `json:"userId"`
	Email     string `json:"email"`
	Rol       string `json:"rol"`
	jwt.RegisteredClaims
}

// GenerateJWT issues an HS256 token for the given account.
func GenerateJWT(cfg config.JWTSettings, usuario *models.Usuario) (string, error) {
	if cfg.Secret == "" {
		return "", errors.New("jwt secret is not configured")
	}

	now := time.Now()
	claims := Claims{
		UsuarioID: usuario.UsuarioID,
		Email:     usuario.Email,
		Rol:       usuario.Rol,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ParseJWT verifies signature, issuer, audience and expiry, and returns the
// embedded identity.
func ParseJWT(cfg config.JWTSettings, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(cfg.Secret), nil
		},
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.UsuarioID == 0 {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
