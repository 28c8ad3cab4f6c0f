package handlers

//go:generate mockgen -source=users.go -destination=users_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/poetree/internal/models"
)

// UserManager is the profile service used by the user handlers.
type UserManager interface {
	GetMe(ctx context.Context, userID uuid.UUID) (*models.UserDetailsDTO, error)
	GetUser(ctx context.Context, viewer, id uuid.UUID) (*models.UserDetailsDTO, error)
	Search(ctx context.Context, viewer uuid.UUID, q *string, page int) (models.Page[models.UserMinimalDTO], error)
	Setup(ctx context.Context, userID uuid.UUID, req models.SetupRequest) (*models.UserDTO, error)
	Update(ctx context.Context, userID uuid.UUID, req models.UserUpdateRequest) (*models.UserDTO, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

// NewGetMeHandler returns the caller's profile with engagement totals.
// @Summary Current user
// @Tags users
// @Produce json
// @Success 200 {object} models.Response[models.UserDetailsDTO]
// @Failure 401 {object} handlers.ErrorResponse
// @Router /users/me [get]
// @Security BearerAuth
func NewGetMeHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		out, err := svc.GetMe(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, "user", out)
	}
}

// NewGetUserHandler returns another user's public profile.
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} models.Response[models.UserDetailsDTO]
// @Failure 400 {object} handlers.ErrorResponse "Invalid user id"
// @Failure 404 {object} handlers.ErrorResponse
// @Router /users/{id} [get]
// @Security BearerAuth
func NewGetUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := pathUUID(w, r, "id", "invalid user id")
		if !ok {
			return
		}
		out, err := svc.GetUser(r.Context(), viewer, id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, "user", out)
	}
}

// NewSearchUsersHandler returns a page of users matching q, excluding the caller.
// @Summary Search users
// @Tags users
// @Produce json
// @Param q query string false "Name or email substring"
// @Param page query int false "Page, starting at 1"
// @Success 200 {object} models.Response[models.Page[models.UserMinimalDTO]]
// @Failure 400 {object} handlers.ErrorResponse
// @Router /users [get]
// @Security BearerAuth
func NewSearchUsersHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := currentUser(w, r)
		if !ok {
			return
		}
		page, ok := queryPage(w, r)
		if !ok {
			return
		}
		out, err := svc.Search(r.Context(), viewer, queryString(r, "q"), page)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, "users", out)
	}
}

// NewSetupHandler completes the caller's profile.
// @Summary Complete profile
// @Description Sets name, bio, date of birth (dd-MM-yyyy, age 15 or older), gender and an optional image.
// @Tags users
// @Accept json
// @Produce json
// @Param request body models.SetupRequest true "Profile"
// @Success 200 {object} models.Response[models.UserDTO]
// @Failure 400 {object} handlers.ErrorResponse
// @Router /users/me/setup [post]
// @Security BearerAuth
func NewSetupHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		var req models.SetupRequest
		if !decode(w, r, &req) {
			return
		}
		out, err := svc.Setup(r.Context(), userID, req)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, "user setup complete", out)
	}
}

// NewUpdateUserHandler partially updates the caller's profile.
// @Summary Update profile
// @Tags users
// @Accept json
// @Produce json
// @Param request body models.UserUpdateRequest true "Fields to change"
// @Success 200 {object} models.Response[models.UserDTO]
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Email already in use"
// @Router /users/me [put]
// @Security BearerAuth
func NewUpdateUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		var req models.UserUpdateRequest
		if !decode(w, r, &req) {
			return
		}
		out, err := svc.Update(r.Context(), userID, req)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, "user updated", out)
	}
}

// NewDeleteUserHandler deletes the caller's account and everything it owns.
// @Summary Delete account
// @Tags users
// @Produce json
// @Success 200 {object} models.Response[bool]
// @Failure 404 {object} handlers.ErrorResponse
// @Router /users/me [delete]
// @Security BearerAuth
func NewDeleteUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		if err := svc.Delete(r.Context(), userID); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, "user deleted", true)
	}
}
