package models

// AuthRequest is the body of sign up and sign in.
// swagger:model AuthRequest
type AuthRequest struct {
	// example: jane@poetree.art
	Email string `json:"email" validate:"notblank,email"`
	// example: secret123
	Password string `json:"password" validate:"notblank"`
}

// RefreshRequest carries a refresh token to be exchanged.
// swagger:model RefreshRequest
type RefreshRequest struct {
	Token string `json:"token" validate:"notblank"`
}

// ResetRequest asks for a password reset link.
// swagger:model ResetRequest
type ResetRequest struct {
	Email string `json:"email" validate:"notblank,email"`
}

// TokenPairDTO is returned whenever tokens are issued.
// swagger:model TokenPairDTO
type TokenPairDTO struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// AuthDTO is returned by sign up and sign in.
// swagger:model AuthDTO
type AuthDTO struct {
	TokenPairDTO
	User *UserDTO `json:"user"`
}
