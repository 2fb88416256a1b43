package auth

import (
	"context"
)

// AuthService is the injected authentication policy. The record-access and
// aggregation layers never see how a caller was authenticated.
type AuthService interface {
	// Login checks credentials and issues an access/refresh token pair.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Refresh exchanges a valid, unrevoked refresh token for a new pair.
	Refresh(ctx context.Context, refreshToken string) (LoginResponse, error)

	// Logout revokes the refresh token.
	Logout(ctx context.Context, refreshToken string) error
}
