package domain

import "github.com/golang-jwt/jwt/v5"

// ServiceClaims are the JWT claims carried by internal service tokens.
type ServiceClaims struct {
	Service string `json:"service"`
	jwt.RegisteredClaims
}
