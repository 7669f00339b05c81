package auth

import "context"

// AuthService defines authentication business logic
type AuthService interface {
	// Login authenticates with email/password and issues a token pair
	Login(ctx context.Context, loginReq LoginRequest, sessionTrackReq SessionTrackingRequest) (TokenResponse, error)

	// LoginWithGoogle authenticates a verified Google account
	LoginWithGoogle(ctx context.Context, googleEmail string, googleID string, sessionTrackReq SessionTrackingRequest) (TokenResponse, error)

	// RefreshToken rotates a refresh token into a new token pair
	RefreshToken(ctx context.Context, refreshToken string, sessionTrackReq SessionTrackingRequest) (TokenResponse, error)

	// Logout revokes the given refresh token
	Logout(ctx context.Context, refreshToken string) error
}
