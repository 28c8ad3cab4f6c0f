package handlers

//go:generate mockgen -source=comments.go -destination=comments_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/poetree/internal/models"
)

type CommentManager interface {
	Create(ctx context.Context, userID uuid.UUID, req models.CommentRequest) (*models.CommentDTO, error)
	Get(ctx context.Context, viewer, id uuid.UUID) (*models.CommentFeedDTO, error)
	Update(ctx context.Context, userID, id uuid.UUID, req models.CommentRequest) (*models.CommentDTO, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

const msgInvalidCommentID = "invalid comment id"

// NewCreateCommentHandler comments on a poem.
// @Summary Create comment
// @Tags comments
// @Accept json
// @Produce json
// @Param request body models.CommentRequest true "Poem id and content"
// @Success 201 {object} models.Response[models.CommentDTO]
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Poem not found"
// @Router /comments [post]
// @Security BearerAuth
func NewCreateCommentHandler(svc CommentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		var req models.CommentRequest
		if !decode(w, r, &req) {
			return
		}
		out, err := svc.Create(r.Context(), userID, req)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, "comment created", out)
	}
}

// NewGetCommentHandler returns one comment with its author and like state.
// @Summary Get comment
// @Tags comments
// @Produce json
// @Param id path string true "Comment id"
// @Success 200 {object} models.Response[models.CommentFeedDTO]
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /comments/{id} [get]
// @Security BearerAuth
func NewGetCommentHandler(svc CommentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := pathUUID(w, r, "id", msgInvalidCommentID)
		if !ok {
			return
		}
		out, err := svc.Get(r.Context(), viewer, id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, "comment", out)
	}
}

// NewUpdateCommentHandler edits the caller's comment.
// @Summary Update comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Comment id"
// @Param request body models.CommentRequest true "New content"
// @Success 200 {object} models.Response[models.CommentDTO]
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /comments/{id} [put]
// @Security BearerAuth
func NewUpdateCommentHandler(svc CommentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := pathUUID(w, r, "id", msgInvalidCommentID)
		if !ok {
			return
		}
		var req models.CommentRequest
		if !decode(w, r, &req) {
			return
		}
		out, err := svc.Update(r.Context(), userID, id, req)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, "comment updated", out)
	}
}

// NewDeleteCommentHandler deletes the caller's comment.
// @Summary Delete comment
// @Tags comments
// @Produce json
// @Param id path string true "Comment id"
// @Success 200 {object} models.Response[bool]
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /comments/{id} [delete]
// @Security BearerAuth
func NewDeleteCommentHandler(svc CommentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := pathUUID(w, r, "id", msgInvalidCommentID)
		if !ok {
			return
		}
		if err := svc.Delete(r.Context(), userID, id); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, "comment deleted", true)
	}
}
