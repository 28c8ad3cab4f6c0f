package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/poetree/internal/hash"
	"github.com/sbilibin2017/poetree/internal/jwt"
	"github.com/sbilibin2017/poetree/internal/models"
	"github.com/sbilibin2017/poetree/internal/repositories"
	"github.com/sbilibin2017/poetree/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authDeps struct {
	users  *services.MockUserRepository
	tokens *services.MockTokenRepository
	issuer *services.MockTokenIssuer
	hasher *hash.Hasher
	svc    *services.AuthService
}

func newAuthDeps(t *testing.T) *authDeps {
	ctrl := gomock.NewController(t)
	d := &authDeps{
		users:  services.NewMockUserRepository(ctrl),
		tokens: services.NewMockTokenRepository(ctrl),
		issuer: services.NewMockTokenIssuer(ctrl),
		hasher: hash.New("secret"),
	}
	d.svc = services.NewAuthService(d.users, d.tokens, d.issuer, d.hasher, passthroughTx(ctrl))
	return d
}

func testPair() *jwt.Pair {
	return &jwt.Pair{AccessToken: "access", RefreshToken: "refresh", RefreshExpiresAt: time.Now().Add(time.Hour)}
}

func TestAuthService_SignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("successful sign up", func(t *testing.T) {
		d := newAuthDeps(t)
		d.users.EXPECT().GetByEmail(gomock.Any(), "jane@poetree.art").Return(nil, nil)
		d.users.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, u *models.User) error {
				assert.Equal(t, d.hasher.Hash("secret123"), u.PasswordHash)
				u.ID = uuid.New()
				u.CreatedAt = time.Now()
				return nil
			})
		d.issuer.EXPECT().GeneratePair(gomock.Any(), gomock.Any()).Return(testPair(), nil)
		d.tokens.EXPECT().Save(gomock.Any(), gomock.Any(), d.hasher.Digest("refresh"), gomock.Any()).Return(nil)

		out, err := d.svc.SignUp(ctx, models.AuthRequest{Email: " Jane@Poetree.art", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, "access", out.Token)
		assert.Equal(t, "refresh", out.RefreshToken)
		assert.Equal(t, "jane@poetree.art", out.User.Email)
	})

	t.Run("email already used", func(t *testing.T) {
		d := newAuthDeps(t)
		d.users.EXPECT().GetByEmail(gomock.Any(), "jane@poetree.art").
			Return(userRow(uuid.New(), "jane@poetree.art", "x"), nil)

		_, err := d.svc.SignUp(ctx, models.AuthRequest{Email: "jane@poetree.art", Password: "secret123"})
		assertKind(t, err, services.ErrConflict, "email already in use")
	})

	t.Run("concurrent sign up hits unique constraint", func(t *testing.T) {
		d := newAuthDeps(t)
		d.users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)
		d.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repositories.ErrDuplicate)

		_, err := d.svc.SignUp(ctx, models.AuthRequest{Email: "jane@poetree.art", Password: "secret123"})
		assert.ErrorIs(t, err, services.ErrConflict)
	})

	t.Run("invalid email", func(t *testing.T) {
		d := newAuthDeps(t)

		_, err := d.svc.SignUp(ctx, models.AuthRequest{Email: "jane", Password: "secret123"})
		assertKind(t, err, services.ErrValidation, "invalid email")
	})

	t.Run("blank password", func(t *testing.T) {
		d := newAuthDeps(t)

		_, err := d.svc.SignUp(ctx, models.AuthRequest{Email: "jane@poetree.art", Password: "  "})
		assertKind(t, err, services.ErrValidation, "password cannot be blank")
	})

	t.Run("storage failure", func(t *testing.T) {
		d := newAuthDeps(t)
		d.users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, errDB)

		_, err := d.svc.SignUp(ctx, models.AuthRequest{Email: "jane@poetree.art", Password: "secret123"})
		assert.ErrorIs(t, err, errDB)
	})
}

func TestAuthService_SignIn(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	tests := []struct {
		name     string
		password string
		user     *models.User
		wantErr  error
	}{
		{name: "valid credentials", password: "secret123", user: userRow(id, "jane@poetree.art", hash.New("secret").Hash("secret123"))},
		{name: "wrong password", password: "nope", user: userRow(id, "jane@poetree.art", hash.New("secret").Hash("secret123")), wantErr: services.ErrUnauthorized},
		{name: "unknown email", password: "secret123", user: nil, wantErr: services.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newAuthDeps(t)
			d.users.EXPECT().GetByEmail(gomock.Any(), "jane@poetree.art").Return(tt.user, nil)
			if tt.wantErr == nil {
				d.issuer.EXPECT().GeneratePair(gomock.Any(), id).Return(testPair(), nil)
				d.tokens.EXPECT().Save(gomock.Any(), id, gomock.Any(), gomock.Any()).Return(nil)
			}

			out, err := d.svc.SignIn(ctx, models.AuthRequest{Email: "jane@poetree.art", Password: tt.password})
			if tt.wantErr != nil {
				assertKind(t, err, tt.wantErr, "invalid credentials")
				assert.Nil(t, out)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id.String(), out.User.ID)
		})
	}
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("rotates the token", func(t *testing.T) {
		d := newAuthDeps(t)
		gomock.InOrder(
			d.issuer.EXPECT().GetRefreshUserID(gomock.Any(), "old-refresh").Return(id, nil),
			d.tokens.EXPECT().Consume(gomock.Any(), id, d.hasher.Digest("old-refresh")).Return(true, nil),
			d.tokens.EXPECT().DeleteExpired(gomock.Any(), id).Return(int64(2), nil),
			d.issuer.EXPECT().GeneratePair(gomock.Any(), id).Return(testPair(), nil),
			d.tokens.EXPECT().Save(gomock.Any(), id, d.hasher.Digest("refresh"), gomock.Any()).Return(nil),
		)

		pair, err := d.svc.Refresh(ctx, models.RefreshRequest{Token: "old-refresh"})
		require.NoError(t, err)
		assert.Equal(t, "refresh", pair.RefreshToken)
	})

	t.Run("token already used", func(t *testing.T) {
		d := newAuthDeps(t)
		d.issuer.EXPECT().GetRefreshUserID(gomock.Any(), "old-refresh").Return(id, nil)
		d.tokens.EXPECT().Consume(gomock.Any(), id, gomock.Any()).Return(false, nil)

		_, err := d.svc.Refresh(ctx, models.RefreshRequest{Token: "old-refresh"})
		assertKind(t, err, services.ErrValidation, "invalid refresh token")
	})

	t.Run("token does not verify", func(t *testing.T) {
		d := newAuthDeps(t)
		d.issuer.EXPECT().GetRefreshUserID(gomock.Any(), "garbage").Return(uuid.Nil, errors.New("bad signature"))

		_, err := d.svc.Refresh(ctx, models.RefreshRequest{Token: "garbage"})
		assertKind(t, err, services.ErrValidation, "invalid refresh token")
	})

	t.Run("blank token", func(t *testing.T) {
		d := newAuthDeps(t)

		_, err := d.svc.Refresh(ctx, models.RefreshRequest{})
		assertKind(t, err, services.ErrValidation, "invalid refresh token")
	})
}

func TestAuthService_RefreshWithRealTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := services.NewMockUserRepository(ctrl)
	tokens := services.NewMockTokenRepository(ctrl)
	issuer := jwt.New(jwt.WithSecretKey("secret"))
	hasher := hash.New("secret")
	svc := services.NewAuthService(users, tokens, issuer, hasher, passthroughTx(ctrl))

	id := uuid.New()
	pair, err := issuer.GeneratePair(context.Background(), id)
	require.NoError(t, err)

	t.Run("access token is not a refresh token", func(t *testing.T) {
		_, err := svc.Refresh(context.Background(), models.RefreshRequest{Token: pair.AccessToken})
		assertKind(t, err, services.ErrValidation, "invalid refresh token")
	})

	t.Run("refresh token is accepted", func(t *testing.T) {
		tokens.EXPECT().Consume(gomock.Any(), id, hasher.Digest(pair.RefreshToken)).Return(true, nil)
		tokens.EXPECT().DeleteExpired(gomock.Any(), id).Return(int64(0), nil)
		tokens.EXPECT().Save(gomock.Any(), id, gomock.Any(), gomock.Any()).Return(nil)

		out, err := svc.Refresh(context.Background(), models.RefreshRequest{Token: pair.RefreshToken})
		require.NoError(t, err)

		got, err := issuer.GetUserID(context.Background(), out.Token)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	})
}

func TestAuthService_UpdatePassword(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("revokes refresh tokens", func(t *testing.T) {
		d := newAuthDeps(t)
		d.users.EXPECT().GetByID(gomock.Any(), id).Return(userRow(id, "jane@poetree.art", d.hasher.Hash("old")), nil)
		d.users.EXPECT().UpdatePassword(gomock.Any(), id, d.hasher.Hash("new")).Return(true, nil)
		d.tokens.EXPECT().DeleteAll(gomock.Any(), id).Return(int64(3), nil)
		d.issuer.EXPECT().GeneratePair(gomock.Any(), id).Return(testPair(), nil)
		d.tokens.EXPECT().Save(gomock.Any(), id, gomock.Any(), gomock.Any()).Return(nil)

		pair, err := d.svc.UpdatePassword(ctx, id, models.PasswordUpdateRequest{OldPassword: "old", NewPassword: "new"})
		require.NoError(t, err)
		assert.Equal(t, "access", pair.Token)
	})

	t.Run("wrong old password", func(t *testing.T) {
		d := newAuthDeps(t)
		d.users.EXPECT().GetByID(gomock.Any(), id).Return(userRow(id, "jane@poetree.art", d.hasher.Hash("old")), nil)

		_, err := d.svc.UpdatePassword(ctx, id, models.PasswordUpdateRequest{OldPassword: "guess", NewPassword: "new"})
		assert.ErrorIs(t, err, services.ErrUnauthorized)
	})

	t.Run("same password", func(t *testing.T) {
		d := newAuthDeps(t)

		_, err := d.svc.UpdatePassword(ctx, id, models.PasswordUpdateRequest{OldPassword: "same", NewPassword: "same"})
		assert.ErrorIs(t, err, services.ErrValidation)
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	d := newAuthDeps(t)

	assert.NoError(t, d.svc.ResetPassword(context.Background(), models.ResetRequest{Email: "jane@poetree.art"}))
	assert.ErrorIs(t, d.svc.ResetPassword(context.Background(), models.ResetRequest{Email: "jane"}), services.ErrValidation)
}
