package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the token_type claim.
const (
	AccessToken  = "access"
	RefreshToken = "refresh"
)

var (
	ErrMissingUserID    = errors.New("user_id not found in token")
	ErrUnexpectedType   = errors.New("unexpected token type")
	ErrMissingHeader    = errors.New("authorization header missing")
	ErrMalformedHeader  = errors.New("invalid authorization header format")
	ErrInvalidTokenBody = errors.New("invalid token")
)

// Claims are the custom claims of every token issued by the service.
type Claims struct {
	UserID    uuid.UUID `json:"user_id"`
	TokenType string    `json:"token_type"`
	jwt.RegisteredClaims
}

// Pair is an access token together with its refresh token.
type Pair struct {
	AccessToken      string    `json:"token"`
	RefreshToken     string    `json:"refresh_token"`
	RefreshExpiresAt time.Time `json:"-"`
}

// JWT provides methods to generate and validate JWT tokens.
type JWT struct {
	SecretKey  string        // Secret key for signing tokens
	Issuer     string        // iss claim, verified on parse
	Audience   string        // aud claim, verified on parse
	Exp        time.Duration // Access token lifetime
	RefreshExp time.Duration // Refresh token lifetime
}

// Opt configures a JWT.
type Opt func(*JWT)

// WithSecretKey sets the HMAC signing key.
func WithSecretKey(key string) Opt {
	return func(j *JWT) { j.SecretKey = key }
}

// WithIssuer sets the issuer claim.
func WithIssuer(issuer string) Opt {
	return func(j *JWT) { j.Issuer = issuer }
}

// WithAudience sets the audience claim.
func WithAudience(audience string) Opt {
	return func(j *JWT) { j.Audience = audience }
}

// WithExpiration sets the access token lifetime.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) { j.Exp = exp }
}

// WithRefreshExpiration sets the refresh token lifetime.
func WithRefreshExpiration(exp time.Duration) Opt {
	return func(j *JWT) { j.RefreshExp = exp }
}

// New creates a new JWT instance. Access tokens live 30 days and refresh tokens 60 days
// unless overridden.
func New(opts ...Opt) *JWT {
	j := &JWT{
		Issuer:     "poetree",
		Audience:   "poetree-users",
		Exp:        30 * 24 * time.Hour,
		RefreshExp: 60 * 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates an access token for userID.
func (j *JWT) Generate(ctx context.Context, userID uuid.UUID) (string, error) {
	token, _, err := j.sign(userID, AccessToken, j.Exp)
	return token, err
}

// GeneratePair creates an access token and a refresh token for userID.
func (j *JWT) GeneratePair(ctx context.Context, userID uuid.UUID) (*Pair, error) {
	access, _, err := j.sign(userID, AccessToken, j.Exp)
	if err != nil {
		return nil, err
	}
	refresh, exp, err := j.sign(userID, RefreshToken, j.RefreshExp)
	if err != nil {
		return nil, err
	}
	return &Pair{AccessToken: access, RefreshToken: refresh, RefreshExpiresAt: exp}, nil
}

func (j *JWT) sign(userID uuid.UUID, tokenType string, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(ttl)
	claims := Claims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    j.Issuer,
			Audience:  jwt.ClaimStrings{j.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := token.SignedString([]byte(j.SecretKey))
	return signed, exp, err
}

// GetClaims parses and verifies tokenString: signature, expiry, issuer, audience and the
// presence of the user_id claim.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return []byte(j.SecretKey), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithIssuer(j.Issuer),
		jwt.WithAudience(j.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidTokenBody
	}
	if claims.UserID == uuid.Nil {
		return nil, ErrMissingUserID
	}
	return claims, nil
}

// Validate checks that tokenString is a valid access token.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetUserID(ctx, tokenString)
	return err
}

// GetUserID returns the user id of a valid access token.
func (j *JWT) GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error) {
	claims, err := j.GetClaims(ctx, tokenString)
	if err != nil {
		return uuid.Nil, err
	}
	if claims.TokenType != AccessToken {
		return uuid.Nil, ErrUnexpectedType
	}
	return claims.UserID, nil
}

// GetRefreshUserID returns the user id of a valid refresh token.
func (j *JWT) GetRefreshUserID(ctx context.Context, tokenString string) (uuid.UUID, error) {
	claims, err := j.GetClaims(ctx, tokenString)
	if err != nil {
		return uuid.Nil, err
	}
	if claims.TokenType != RefreshToken {
		return uuid.Nil, ErrUnexpectedType
	}
	return claims.UserID, nil
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingHeader
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", ErrMalformedHeader
	}

	return parts[1], nil
}
