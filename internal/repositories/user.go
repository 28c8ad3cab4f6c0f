package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/poetree/internal/models"
)

const userColumns = `id, created_at, updated_at, setup_at, email, password_hash, display_name,
	image_url, bio, date_of_birth, gender, device_token`

// UserRepository stores accounts in the users table.
type UserRepository struct {
	executor
}

func NewUserRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserRepository {
	return &UserRepository{executor{db: db, txGetter: txGetter}}
}

// Create inserts a new user. The id is generated when unset and the timestamps are filled from the row.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	const query = `
		INSERT INTO users (id, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	var stamps struct {
		CreatedAt time.Time `db:"created_at"`
		UpdatedAt time.Time `db:"updated_at"`
	}
	if _, err := r.get(ctx, &stamps, query, user.ID, user.Email, user.PasswordHash); err != nil {
		return err
	}
	user.CreatedAt = stamps.CreatedAt
	user.UpdatedAt = stamps.UpdatedAt
	return nil
}

// GetByID returns nil without error when the user does not exist.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.User
	found, err := r.get(ctx, &user, query, id)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// GetByEmail returns nil without error when no account uses email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user models.User
	found, err := r.get(ctx, &user, query, email)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// EmailTaken reports whether an account other than exclude uses email.
func (r *UserRepository) EmailTaken(ctx context.Context, email string, exclude uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND id <> $2)`

	var taken bool
	_, err := r.get(ctx, &taken, query, email, exclude)
	return taken, err
}

// Update applies the non-nil fields of upd and returns the updated row, or nil when the user is gone.
func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, upd models.UserUpdate) (*models.User, error) {
	const query = `
		UPDATE users SET
			email = COALESCE($2, email),
			display_name = COALESCE($3, display_name),
			image_url = COALESCE($4, image_url),
			bio = COALESCE($5, bio),
			date_of_birth = COALESCE($6::DATE, date_of_birth),
			gender = COALESCE($7::SMALLINT, gender),
			device_token = COALESCE($8, device_token),
			setup_at = CASE WHEN $9::BOOLEAN THEN COALESCE(setup_at, NOW()) ELSE setup_at END,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	var user models.User
	found, err := r.get(ctx, &user, query,
		id, upd.Email, upd.DisplayName, upd.ImageURL, upd.Bio,
		upd.DateOfBirth, upd.Gender, upd.DeviceToken, upd.MarkSetup,
	)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) (bool, error) {
	const query = `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`

	n, err := r.exec(ctx, query, id, passwordHash)
	return n > 0, err
}

// Delete removes the user together with everything that references it.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `DELETE FROM users WHERE id = $1`

	n, err := r.exec(ctx, query, id)
	return n > 0, err
}

// GetDetails returns the user with totals of poems written, poems read, likes and bookmarks given.
func (r *UserRepository) GetDetails(ctx context.Context, id uuid.UUID) (*models.UserDetails, error) {
	const query = `
		SELECT u.id, u.created_at, u.updated_at, u.setup_at, u.email, u.password_hash,
			u.display_name, u.image_url, u.bio, u.date_of_birth, u.gender, u.device_token,
			(SELECT COUNT(*) FROM poems p WHERE p.author_id = u.id) AS poems,
			(SELECT COUNT(*) FROM poem_reads pr WHERE pr.user_id = u.id) AS reads,
			(SELECT COUNT(*) FROM poem_likes pl WHERE pl.user_id = u.id) AS likes,
			(SELECT COUNT(*) FROM poem_bookmarks pb WHERE pb.user_id = u.id) AS bookmarks
		FROM users u
		WHERE u.id = $1
	`

	var details models.UserDetails
	found, err := r.get(ctx, &details, query, id)
	if err != nil || !found {
		return nil, err
	}
	return &details, nil
}

// Search lists users other than viewer whose name or email contains q, ordered by name then email.
func (r *UserRepository) Search(ctx context.Context, viewer uuid.UUID, q *string, limit, offset int) ([]models.User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id <> $1
		  AND ($2::TEXT IS NULL OR display_name ILIKE $2 OR email ILIKE $2)
		ORDER BY display_name NULLS LAST, email
		LIMIT $3 OFFSET $4
	`

	var users []models.User
	err := r.selectRows(ctx, &users, query, viewer, containsPattern(q), limit, offset)
	return users, err
}
