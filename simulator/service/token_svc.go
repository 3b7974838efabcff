package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Gthulhu/schedsim/pkg/logger"
	"github.com/Gthulhu/schedsim/pkg/util"
	"github.com/Gthulhu/schedsim/simulator/domain"
	"github.com/Gthulhu/schedsim/simulator/errs"
	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "schedsim"

// VerifyAndGenerateToken issues a JWT to a client that proves it holds the public
// half of the server's key.
func (svc *Service) VerifyAndGenerateToken(ctx context.Context, clientID string, publicKey string) (string, int64, error) {
	if svc.jwtPrivateKey == nil {
		return "", 0, domain.ErrTokenDisabled
	}
	if err := svc.VerifyPublicKey(publicKey); err != nil {
		return "", 0, errs.NewHTTPStatusError(http.StatusUnauthorized, "public key verification failed", err)
	}
	token, claims, err := svc.generateJWT(ctx, clientID)
	if err != nil {
		return "", 0, fmt.Errorf("JWT generation failed: %w", err)
	}
	return token, claims.ExpiresAt.Unix(), nil
}

func (svc *Service) VerifyPublicKey(publicKeyPEM string) error {
	rsaPublicKey, err := util.PEMToRSAPublicKey(publicKeyPEM)
	if err != nil {
		return fmt.Errorf("failed to parse public key: %w", err)
	}
	if !rsaPublicKey.Equal(&svc.jwtPrivateKey.PublicKey) {
		return fmt.Errorf("public key does not match server's private key")
	}
	return nil
}

func (svc *Service) generateJWT(ctx context.Context, clientID string) (string, domain.Claims, error) {
	expireHr := svc.tokenConfig.TokenDurationHr
	if expireHr <= 0 {
		logger.Logger(ctx).Warn().Msgf("invalid token duration hr %d, defaulting to 24 hours", expireHr)
		expireHr = 24
	}

	now := time.Now()
	claims := domain.Claims{
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expireHr) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   clientID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tokenStr, err := token.SignedString(svc.jwtPrivateKey)
	if err != nil {
		return "", domain.Claims{}, fmt.Errorf("failed to sign JWT token: %w", err)
	}
	return tokenStr, claims, nil
}

// VerifyToken validates a bearer token signed by this service.
func (svc *Service) VerifyToken(ctx context.Context, tokenString string) (*domain.Claims, error) {
	if svc.jwtPrivateKey == nil {
		return nil, domain.ErrTokenDisabled
	}
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return &svc.jwtPrivateKey.PublicKey, nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return nil, errs.NewHTTPStatusError(http.StatusUnauthorized, "invalid or expired token", err)
	}
	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, errs.NewHTTPStatusError(http.StatusUnauthorized, "invalid token", nil)
	}
	logger.Logger(ctx).Debug().Str("client_id", claims.ClientID).Msg("JWT token validated")
	return claims, nil
}
