package auth

import (
	"context"
	"fmt"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/auth"
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/employee"
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/user"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/database"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/jwt"
	"github.com/MHamza118/EMSFSPro-sub000/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	employee.EmployeeRepository
	jwt.Service
	postgresql.JWTRepository
}

func NewAuthService(db *database.DB, userRepository user.UserRepository, employeeRepository employee.EmployeeRepository, jwtService jwt.Service, jwtRepository postgresql.JWTRepository) auth.AuthService {
	return &AuthServiceImpl{
		db:                 db,
		UserRepository:     userRepository,
		EmployeeRepository: employeeRepository,
		Service:            jwtService,
		JWTRepository:      jwtRepository,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	userData, err := a.UserRepository.GetByEmail(ctx, loginReq.Email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !userData.Active {
		return auth.TokenResponse{}, auth.ErrAccountDisabled
	}
	if userData.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(loginReq.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, userData, sessionTrackReq)
}

// LoginWithGoogle implements auth.AuthService. Unknown emails are rejected:
// accounts are provisioned by an admin, never self-registered through
// Google.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, googleEmail string, googleID string, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	userData, err := a.UserRepository.GetByEmail(ctx, googleEmail)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user data by email: %w", err)
	}

	if !userData.Active {
		return auth.TokenResponse{}, auth.ErrAccountDisabled
	}

	// First Google sign-in links the provider id to the account.
	if userData.OAuthProvider == nil || userData.OAuthProviderID == nil {
		userData, err = a.UserRepository.LinkGoogleAccount(ctx, googleID, userData.Email)
		if err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to link google account: %w", err)
		}
	}

	return a.issueTokens(ctx, userData, sessionTrackReq)
}

// RefreshToken implements auth.AuthService. The presented token is revoked
// and a fresh pair issued, so a replayed old token fails the revocation
// check.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	token, err := jwtauth.VerifyToken(a.JWTAuth(), refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userID, isRevoked, err := a.JWTRepository.IsRefreshTokenRevoked(ctx, refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if isRevoked {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrUserNotFound
	}
	if !userData.Active {
		return auth.TokenResponse{}, auth.ErrAccountDisabled
	}

	var tokenResponse auth.TokenResponse
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := a.JWTRepository.RevokeRefreshToken(txCtx, refreshToken); err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}
		tokenResponse, err = a.issueTokens(txCtx, userData, sessionTrackReq)
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	return postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		_, isRevoked, err := a.JWTRepository.IsRefreshTokenRevoked(txCtx, refreshToken)
		if err != nil {
			if err == pgx.ErrNoRows {
				return nil
			}
			return fmt.Errorf("failed to check if refresh token is revoked: %w", err)
		}
		if !isRevoked {
			if err := a.JWTRepository.RevokeRefreshToken(txCtx, refreshToken); err != nil {
				return fmt.Errorf("failed to revoke refresh token: %w", err)
			}
		}
		return nil
	})
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, userData user.User, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse
	var err error

	var employeeID *string
	if emp, empErr := a.EmployeeRepository.GetByUserID(ctx, userData.ID); empErr == nil {
		employeeID = &emp.ID
	}

	run := func(txCtx context.Context) error {
		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.Email, employeeID, userData.Role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		if err := a.CreateRefreshToken(txCtx, userData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, sessionTrackReq); err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	}

	// Reuse an enclosing transaction when the caller already opened one.
	if _, ok := ctx.Value("tx").(pgx.Tx); ok {
		if err := run(ctx); err != nil {
			return auth.TokenResponse{}, err
		}
	} else {
		err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
			return run(context.WithValue(ctx, "tx", tx))
		})
		if err != nil {
			return auth.TokenResponse{}, err
		}
	}

	tokenResponse.Role = string(userData.Role)
	if employeeID != nil {
		tokenResponse.EmployeeID = *employeeID
	}
	return tokenResponse, nil
}
