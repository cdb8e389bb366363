package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stockmate/stockmate-api/internal/config"
	"github.com/stockmate/stockmate-api/internal/domain"
	"github.com/stockmate/stockmate-api/pkg/apiErrors"
)

// ServiceAuthenticator issues and validates the JWTs internal services
// use to call this API. There are no user accounts: a token identifies
// the calling service, nothing else.
type ServiceAuthenticator interface {
	IssueToken(service string) (string, error)
	ValidateToken(tokenString string) (*domain.ServiceClaims, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) ServiceAuthenticator {
	return &Service{cfg: cfg}
}

// IssueToken signs a token for the named service, valid for the
// configured TTL.
func (s *Service) IssueToken(service string) (string, error) {
	if service == "" {
		return "", NewAuthError(ErrMissingServiceName, apiErrors.ErrMissingRequiredData, "token subject is empty")
	}

	now := time.Now()
	claims := domain.ServiceClaims{
		Service: service,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   service,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Auth.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.ServiceClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.ServiceClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, err.Error())
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.ServiceClaims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "claims have an unexpected shape")
	}

	return claims, nil
}
