package jwttoken

import (
	authmw "opendid/pkg/platform/middleware/auth"
)

// JWTServiceAdapter exposes JWTService as an authmw.TokenValidator.
type JWTServiceAdapter struct {
	service *JWTService
}

func NewJWTServiceAdapter(service *JWTService) *JWTServiceAdapter {
	return &JWTServiceAdapter{service: service}
}

func (a *JWTServiceAdapter) ValidateToken(tokenString string) (*authmw.Claims, error) {
	claims, err := a.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	caller, err := callerOf(claims)
	if err != nil {
		return nil, err
	}
	return &authmw.Claims{Caller: caller, TokenID: claims.ID}, nil
}
