package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a row of the users table.
type User struct {
	ID           uuid.UUID  `db:"id"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	SetupAt      *time.Time `db:"setup_at"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password_hash"` // never serialized
	DisplayName  *string    `db:"display_name"`
	ImageURL     *string    `db:"image_url"`
	Bio          *string    `db:"bio"`
	DateOfBirth  *time.Time `db:"date_of_birth"`
	Gender       *int       `db:"gender"`
	DeviceToken  *string    `db:"device_token"`
}

// UserDetails is a user row with the user's own engagement totals.
type UserDetails struct {
	User
	Poems     int64 `db:"poems"`
	Reads     int64 `db:"reads"`
	Likes     int64 `db:"likes"`
	Bookmarks int64 `db:"bookmarks"`
}

// UserUpdate lists the columns a profile mutation may change. Nil fields are left as is.
type UserUpdate struct {
	Email       *string
	DisplayName *string
	ImageURL    *string
	Bio         *string
	DateOfBirth *time.Time
	Gender      *int
	DeviceToken *string
	MarkSetup   bool // stamp setup_at if not yet set
}

// UserDTO is the client projection of a user.
// swagger:model UserDTO
type UserDTO struct {
	ID          string  `json:"id"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
	SetupAt     *string `json:"setupAt"`
	Email       string  `json:"email,omitempty"`
	DisplayName *string `json:"name"`
	ImageURL    *string `json:"image"`
	Bio         *string `json:"bio"`
	DateOfBirth *string `json:"dateOfBirth"`
	Gender      *int    `json:"gender"`
}

// UserDetailsDTO adds engagement totals to UserDTO.
// swagger:model UserDetailsDTO
type UserDetailsDTO struct {
	UserDTO
	Poems     int64 `json:"poems"`
	Reads     int64 `json:"reads"`
	Likes     int64 `json:"likes"`
	Bookmarks int64 `json:"bookmarks"`
}

// UserMinimalDTO is used in search listings.
// swagger:model UserMinimalDTO
type UserMinimalDTO struct {
	ID          string  `json:"id"`
	CreatedAt   string  `json:"createdAt"`
	DisplayName *string `json:"name"`
	ImageURL    *string `json:"image"`
}

// SetupRequest completes a profile after sign up.
// swagger:model SetupRequest
type SetupRequest struct {
	// example: Jane Poet
	DisplayName string `json:"username" validate:"notblank,max=50"`
	// example: I write about rain.
	Bio string `json:"bio" validate:"notblank,max=125"`
	// example: 21-03-1999
	DateOfBirth string `json:"dateOfBirth" validate:"notblank,date,minage=15"`
	// example: 1
	Gender *int `json:"gender" validate:"required,oneof=0 1"`
	// example: https://cdn.poetree.art/u/jane.png
	ImageURL *string `json:"imageUrl" validate:"omitempty,url"`
}

// UserUpdateRequest partially updates a profile; blank fields are ignored.
// swagger:model UserUpdateRequest
type UserUpdateRequest struct {
	Email       *string `json:"email" validate:"omitempty,email"`
	DisplayName *string `json:"username" validate:"omitempty,max=50"`
	Bio         *string `json:"bio" validate:"omitempty,max=125"`
	DateOfBirth *string `json:"dateOfBirth" validate:"omitempty,date,minage=15"`
	Gender      *int    `json:"gender" validate:"omitempty,oneof=0 1"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,url"`
	DeviceToken *string `json:"token" validate:"omitempty,max=512"`
}

// PasswordUpdateRequest changes the password of the current user.
// swagger:model PasswordUpdateRequest
type PasswordUpdateRequest struct {
	OldPassword string `json:"oldPassword" validate:"notblank"`
	NewPassword string `json:"newPassword" validate:"notblank"`
}
