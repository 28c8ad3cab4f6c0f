package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/poetree/internal/logger"
	"github.com/sbilibin2017/poetree/internal/mappers"
	"github.com/sbilibin2017/poetree/internal/models"
	"github.com/sbilibin2017/poetree/internal/repositories"
)

const (
	msgInvalidCredentials  = "invalid credentials"
	msgInvalidRefreshToken = "invalid refresh token"
	msgEmailTaken          = "email already in use"
)

// AuthService handles sign up, sign in and the token lifecycle.
type AuthService struct {
	users  UserRepository
	tokens TokenRepository
	issuer TokenIssuer
	hasher PasswordHasher
	tx     Transactor
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users UserRepository, tokens TokenRepository, issuer TokenIssuer, hasher PasswordHasher, tx Transactor) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		issuer: issuer,
		hasher: hasher,
		tx:     tx,
	}
}

// SignUp creates an account and signs it in.
func (svc *AuthService) SignUp(ctx context.Context, req models.AuthRequest) (*models.AuthDTO, error) {
	req.Email = normalizeEmail(req.Email)
	if err := validate(req); err != nil {
		return nil, err
	}
	email := req.Email

	var out *models.AuthDTO
	err := svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := svc.users.GetByEmail(ctx, email)
		if err != nil {
			logger.Log.Errorw("failed to check user exists", "email", email, "error", err)
			return err
		}
		if existing != nil {
			return conflict(msgEmailTaken)
		}

		user := &models.User{Email: email, PasswordHash: svc.hasher.Hash(req.Password)}
		if err := svc.users.Create(ctx, user); err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				return conflict(msgEmailTaken)
			}
			logger.Log.Errorw("failed to save user", "email", email, "error", err)
			return err
		}

		out, err = svc.signIn(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SignIn checks the credentials and issues a token pair.
func (svc *AuthService) SignIn(ctx context.Context, req models.AuthRequest) (*models.AuthDTO, error) {
	req.Email = normalizeEmail(req.Email)
	if err := validate(req); err != nil {
		return nil, err
	}
	email := req.Email

	var out *models.AuthDTO
	err := svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := svc.users.GetByEmail(ctx, email)
		if err != nil {
			logger.Log.Errorw("failed to get user", "email", email, "error", err)
			return err
		}
		if user == nil || !svc.hasher.Verify(req.Password, user.PasswordHash) {
			logger.Log.Infow("invalid credentials", "email", email)
			return newError(ErrUnauthorized, msgInvalidCredentials)
		}

		out, err = svc.signIn(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Refresh redeems a refresh token for a new pair. Every failure reads as an invalid token.
func (svc *AuthService) Refresh(ctx context.Context, req models.RefreshRequest) (*models.TokenPairDTO, error) {
	if err := validate(req); err != nil {
		return nil, validationFailed(msgInvalidRefreshToken)
	}

	userID, err := svc.issuer.GetRefreshUserID(ctx, req.Token)
	if err != nil {
		logger.Log.Infow("refresh token rejected", "error", err)
		return nil, validationFailed(msgInvalidRefreshToken)
	}

	var pair *models.TokenPairDTO
	err = svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		consumed, err := svc.tokens.Consume(ctx, userID, svc.hasher.Digest(req.Token))
		if err != nil {
			logger.Log.Errorw("failed to consume refresh token", "user_id", userID, "error", err)
			return err
		}
		if !consumed {
			logger.Log.Infow("refresh token unknown or already used", "user_id", userID)
			return validationFailed(msgInvalidRefreshToken)
		}

		if _, err := svc.tokens.DeleteExpired(ctx, userID); err != nil {
			logger.Log.Errorw("failed to sweep expired refresh tokens", "user_id", userID, "error", err)
			return err
		}

		pair, err = svc.issue(ctx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

// ResetPassword acknowledges a reset request. Mail delivery is not wired.
func (svc *AuthService) ResetPassword(ctx context.Context, req models.ResetRequest) error {
	req.Email = normalizeEmail(req.Email)
	if err := validate(req); err != nil {
		return err
	}
	logger.Log.Infow("password reset requested", "email", req.Email)
	return nil
}

// UpdatePassword replaces the password, revokes every refresh token of the user and issues a new pair.
func (svc *AuthService) UpdatePassword(ctx context.Context, userID uuid.UUID, req models.PasswordUpdateRequest) (*models.TokenPairDTO, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	if req.OldPassword == req.NewPassword {
		return nil, validationFailed("new password must differ from the old one")
	}

	var pair *models.TokenPairDTO
	err := svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := svc.users.GetByID(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to get user", "user_id", userID, "error", err)
			return err
		}
		if user == nil {
			return notFound("user not found")
		}
		if !svc.hasher.Verify(req.OldPassword, user.PasswordHash) {
			return newError(ErrUnauthorized, msgInvalidCredentials)
		}

		if _, err := svc.users.UpdatePassword(ctx, userID, svc.hasher.Hash(req.NewPassword)); err != nil {
			logger.Log.Errorw("failed to update password", "user_id", userID, "error", err)
			return err
		}
		if _, err := svc.tokens.DeleteAll(ctx, userID); err != nil {
			logger.Log.Errorw("failed to revoke refresh tokens", "user_id", userID, "error", err)
			return err
		}

		pair, err = svc.issue(ctx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

func (svc *AuthService) signIn(ctx context.Context, user *models.User) (*models.AuthDTO, error) {
	pair, err := svc.issue(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	dto, err := mappers.User(user)
	if err != nil {
		logger.Log.Errorw("failed to map user", "user_id", user.ID, "error", err)
		return nil, err
	}
	return &models.AuthDTO{TokenPairDTO: *pair, User: dto}, nil
}

// issue generates a pair and stores the digest of its refresh token.
func (svc *AuthService) issue(ctx context.Context, userID uuid.UUID) (*models.TokenPairDTO, error) {
	pair, err := svc.issuer.GeneratePair(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "user_id", userID, "error", err)
		return nil, err
	}
	if err := svc.tokens.Save(ctx, userID, svc.hasher.Digest(pair.RefreshToken), pair.RefreshExpiresAt); err != nil {
		logger.Log.Errorw("failed to save refresh token", "user_id", userID, "error", err)
		return nil, err
	}
	return &models.TokenPairDTO{Token: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}
