package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))

	userID := uuid.New()
	ctx := context.Background()

	token, err := j.Generate(ctx, userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.NoError(t, j.Validate(ctx, token))

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, "poetree", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestJWT_DefaultExpiryIsThirtyDays(t *testing.T) {
	j := New(WithSecretKey("test-secret"))
	token, err := j.Generate(context.Background(), uuid.New())
	require.NoError(t, err)

	claims, err := j.GetClaims(context.Background(), token)
	require.NoError(t, err)
	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, 30*24*time.Hour, ttl)
}

func TestJWT_GeneratePair(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithRefreshExpiration(time.Hour))
	ctx := context.Background()
	userID := uuid.New()

	pair, err := j.GeneratePair(ctx, userID)
	require.NoError(t, err)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.WithinDuration(t, time.Now().Add(time.Hour), pair.RefreshExpiresAt, 5*time.Second)

	id, err := j.GetRefreshUserID(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, id)

	// a refresh token is not an access token and vice versa
	assert.ErrorIs(t, j.Validate(ctx, pair.RefreshToken), ErrUnexpectedType)
	_, err = j.GetRefreshUserID(ctx, pair.AccessToken)
	assert.ErrorIs(t, err, ErrUnexpectedType)
}

func TestJWT_PairsAreUnique(t *testing.T) {
	j := New(WithSecretKey("test-secret"))
	ctx := context.Background()
	userID := uuid.New()

	a, err := j.GeneratePair(ctx, userID)
	require.NoError(t, err)
	b, err := j.GeneratePair(ctx, userID)
	require.NoError(t, err)

	assert.NotEqual(t, a.RefreshToken, b.RefreshToken)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, uuid.New())
	require.NoError(t, err)

	assert.Error(t, j.Validate(ctx, token))

	claims, err := j.GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	assert.Error(t, j.Validate(ctx, "invalid.token.string"))

	claims, err := j.GetClaims(ctx, "invalid.token.string")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_Validate_Mismatch(t *testing.T) {
	ctx := context.Background()
	token, err := New(WithSecretKey("secret1")).Generate(ctx, uuid.New())
	require.NoError(t, err)

	tests := []struct {
		name string
		j    *JWT
	}{
		{"WrongSecret", New(WithSecretKey("secret2"))},
		{"WrongIssuer", New(WithSecretKey("secret1"), WithIssuer("someone-else"))},
		{"WrongAudience", New(WithSecretKey("secret1"), WithAudience("other-app"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.j.Validate(ctx, token))
		})
	}
}

func TestJWT_MissingUserID(t *testing.T) {
	j := New(WithSecretKey("secret"))
	claims := gojwt.MapClaims{
		"iss":        j.Issuer,
		"aud":        j.Audience,
		"exp":        time.Now().Add(time.Minute).Unix(),
		"token_type": AccessToken,
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = j.GetUserID(context.Background(), token)
	assert.ErrorIs(t, err, ErrMissingUserID)
}

func TestJWT_RejectsOtherAlgorithms(t *testing.T) {
	j := New(WithSecretKey("secret"))
	claims := gojwt.MapClaims{
		"user_id":    uuid.NewString(),
		"iss":        j.Issuer,
		"aud":        j.Audience,
		"exp":        time.Now().Add(time.Minute).Unix(),
		"token_type": AccessToken,
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	assert.Error(t, j.Validate(context.Background(), token))
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectError   bool
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", false},
		{"LowercaseBearer", "bearer mytoken123", "mytoken123", false},
		{"NoHeader", "", "", true},
		{"InvalidFormat", "Token mytoken123", "", true},
		{"TooManyParts", "Bearer a b c", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
