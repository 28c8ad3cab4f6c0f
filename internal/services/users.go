package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/poetree/internal/logger"
	"github.com/sbilibin2017/poetree/internal/mappers"
	"github.com/sbilibin2017/poetree/internal/models"
	"github.com/sbilibin2017/poetree/internal/repositories"
	"github.com/sbilibin2017/poetree/internal/validation"
)

const msgUserNotFound = "user not found"

// UserService manages profiles.
type UserService struct {
	users UserRepository
	tx    Transactor
}

func NewUserService(users UserRepository, tx Transactor) *UserService {
	return &UserService{users: users, tx: tx}
}

// GetMe returns the caller's profile with engagement totals and email.
func (svc *UserService) GetMe(ctx context.Context, userID uuid.UUID) (*models.UserDetailsDTO, error) {
	return svc.details(ctx, userID, true)
}

// GetUser returns another user's profile without email.
func (svc *UserService) GetUser(ctx context.Context, viewer, id uuid.UUID) (*models.UserDetailsDTO, error) {
	return svc.details(ctx, id, viewer == id)
}

func (svc *UserService) details(ctx context.Context, id uuid.UUID, owner bool) (*models.UserDetailsDTO, error) {
	details, err := svc.users.GetDetails(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user details", "user_id", id, "error", err)
		return nil, err
	}
	if details == nil {
		return nil, notFound(msgUserNotFound)
	}
	dto, err := mappers.UserDetails(details, owner)
	if err != nil {
		logger.Log.Errorw("failed to map user", "user_id", id, "error", err)
		return nil, err
	}
	return dto, nil
}

// Search lists other users whose name or email contains q.
func (svc *UserService) Search(ctx context.Context, viewer uuid.UUID, q *string, page int) (models.Page[models.UserMinimalDTO], error) {
	limit, offset := models.LimitOffset(page)

	users, err := svc.users.Search(ctx, viewer, q, limit, offset)
	if err != nil {
		logger.Log.Errorw("failed to search users", "viewer", viewer, "error", err)
		return models.Page[models.UserMinimalDTO]{}, err
	}

	out, err := models.MapPage(models.NewPage(page, users), mappers.UserMinimal)
	if err != nil {
		logger.Log.Errorw("failed to map users", "error", err)
	}
	return out, err
}

// Setup completes the profile. setup_at is stamped the first time only.
func (svc *UserService) Setup(ctx context.Context, userID uuid.UUID, req models.SetupRequest) (*models.UserDTO, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	dob, err := validation.ParseDate(req.DateOfBirth)
	if err != nil {
		return nil, validationFailed("invalid date, expected %s", "dd-MM-yyyy")
	}

	upd := models.UserUpdate{
		DisplayName: trimmed(&req.DisplayName),
		Bio:         trimmed(&req.Bio),
		DateOfBirth: &dob,
		Gender:      req.Gender,
		ImageURL:    trimmed(req.ImageURL),
		MarkSetup:   true,
	}
	return svc.update(ctx, userID, upd)
}

// Update changes the given fields of the profile. At least one field must be set.
func (svc *UserService) Update(ctx context.Context, userID uuid.UUID, req models.UserUpdateRequest) (*models.UserDTO, error) {
	upd := models.UserUpdate{
		Email:       trimmed(req.Email),
		DisplayName: trimmed(req.DisplayName),
		Bio:         trimmed(req.Bio),
		ImageURL:    trimmed(req.ImageURL),
		DeviceToken: trimmed(req.DeviceToken),
		Gender:      req.Gender,
	}
	dateOfBirth := trimmed(req.DateOfBirth)
	if upd.Email == nil && upd.DisplayName == nil && upd.Bio == nil && upd.ImageURL == nil &&
		upd.DeviceToken == nil && upd.Gender == nil && dateOfBirth == nil {
		return nil, validationFailed("nothing to update")
	}

	req.Email, req.DisplayName, req.Bio, req.ImageURL, req.DeviceToken, req.DateOfBirth =
		upd.Email, upd.DisplayName, upd.Bio, upd.ImageURL, upd.DeviceToken, dateOfBirth
	if err := validate(req); err != nil {
		return nil, err
	}

	if dateOfBirth != nil {
		dob, err := validation.ParseDate(*dateOfBirth)
		if err != nil {
			return nil, validationFailed("invalid date, expected %s", "dd-MM-yyyy")
		}
		upd.DateOfBirth = &dob
	}
	if upd.Email != nil {
		email := normalizeEmail(*upd.Email)
		upd.Email = &email
	}
	return svc.update(ctx, userID, upd)
}

func (svc *UserService) update(ctx context.Context, userID uuid.UUID, upd models.UserUpdate) (*models.UserDTO, error) {
	var out *models.UserDTO
	err := svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if upd.Email != nil {
			taken, err := svc.users.EmailTaken(ctx, *upd.Email, userID)
			if err != nil {
				logger.Log.Errorw("failed to check email", "user_id", userID, "error", err)
				return err
			}
			if taken {
				return conflict(msgEmailTaken)
			}
		}

		user, err := svc.users.Update(ctx, userID, upd)
		if err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				return conflict(msgEmailTaken)
			}
			logger.Log.Errorw("failed to update user", "user_id", userID, "error", err)
			return err
		}
		if user == nil {
			return notFound(msgUserNotFound)
		}

		out, err = mappers.User(user)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the account. Poems, comments, engagement and refresh tokens go with it.
func (svc *UserService) Delete(ctx context.Context, userID uuid.UUID) error {
	deleted, err := svc.users.Delete(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "user_id", userID, "error", err)
		return err
	}
	if !deleted {
		return notFound(msgUserNotFound)
	}
	return nil
}
