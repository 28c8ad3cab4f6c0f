package handlers

//go:generate mockgen -source=engagement.go -destination=engagement_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Engager records likes, bookmarks and reads. Each call reports whether it changed anything.
type Engager interface {
	LikePoem(ctx context.Context, userID, poemID uuid.UUID) (bool, error)
	UnlikePoem(ctx context.Context, userID, poemID uuid.UUID) (bool, error)
	BookmarkPoem(ctx context.Context, userID, poemID uuid.UUID) (bool, error)
	UnbookmarkPoem(ctx context.Context, userID, poemID uuid.UUID) (bool, error)
	MarkPoemRead(ctx context.Context, userID, poemID uuid.UUID) (bool, error)
	LikeComment(ctx context.Context, userID, commentID uuid.UUID) (bool, error)
	UnlikeComment(ctx context.Context, userID, commentID uuid.UUID) (bool, error)
}

type engageAction func(ctx context.Context, userID, targetID uuid.UUID) (bool, error)

// engagement describes the responses of one action. An empty repeated message marks an
// undo action, which always answers 200.
type engagement struct {
	invalidID string
	done      string
	repeated  string
}

func newEngagementHandler(action engageAction, e engagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		targetID, ok := pathUUID(w, r, "id", e.invalidID)
		if !ok {
			return
		}

		changed, err := action(r.Context(), userID, targetID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		switch {
		case e.repeated == "":
			writeJSON(w, http.StatusOK, e.done, changed)
		case changed:
			writeJSON(w, http.StatusCreated, e.done, true)
		default:
			writeJSON(w, http.StatusOK, e.repeated, false)
		}
	}
}

// NewLikePoemHandler likes a poem.
// @Summary Like poem
// @Description 201 on the first like, 200 "poem already liked" afterwards.
// @Tags engagement
// @Produce json
// @Param id path string true "Poem id"
// @Success 201 {object} models.Response[bool]
// @Success 200 {object} models.Response[bool]
// @Failure 404 {object} handlers.ErrorResponse
// @Router /poems/{id}/like [post]
// @Security BearerAuth
func NewLikePoemHandler(svc Engager) http.HandlerFunc {
	return newEngagementHandler(svc.LikePoem, engagement{msgInvalidPoemID, "poem liked", "poem already liked"})
}

// NewUnlikePoemHandler removes the caller's like. data is false when there was none.
// @Summary Unlike poem
// @Tags engagement
// @Produce json
// @Param id path string true "Poem id"
// @Success 200 {object} models.Response[bool]
// @Failure 404 {object} handlers.ErrorResponse
// @Router /poems/{id}/unlike [delete]
// @Security BearerAuth
func NewUnlikePoemHandler(svc Engager) http.HandlerFunc {
	return newEngagementHandler(svc.UnlikePoem, engagement{invalidID: msgInvalidPoemID, done: "poem unliked"})
}

// NewBookmarkPoemHandler bookmarks a poem.
// @Summary Bookmark poem
// @Tags engagement
// @Produce json
// @Param id path string true "Poem id"
// @Success 201 {object} models.Response[bool]
// @Success 200 {object} models.Response[bool]
// @Failure 404 {object} handlers.ErrorResponse
// @Router /poems/{id}/bookmark [post]
// @Security BearerAuth
func NewBookmarkPoemHandler(svc Engager) http.HandlerFunc {
	return newEngagementHandler(svc.BookmarkPoem, engagement{msgInvalidPoemID, "poem bookmarked", "poem already bookmarked"})
}

// NewUnbookmarkPoemHandler removes the caller's bookmark.
// @Summary Remove bookmark
// @Tags engagement
// @Produce json
// @Param id path string true "Poem id"
// @Success 200 {object} models.Response[bool]
// @Failure 404 {object} handlers.ErrorResponse
// @Router /poems/{id}/un-bookmark [delete]
// @Security BearerAuth
func NewUnbookmarkPoemHandler(svc Engager) http.HandlerFunc {
	return newEngagementHandler(svc.UnbookmarkPoem, engagement{invalidID: msgInvalidPoemID, done: "poem bookmark deleted"})
}

// NewMarkPoemReadHandler records that the caller read a poem.
// @Summary Mark poem read
// @Tags engagement
// @Produce json
// @Param id path string true "Poem id"
// @Success 201 {object} models.Response[bool]
// @Success 200 {object} models.Response[bool]
// @Failure 404 {object} handlers.ErrorResponse
// @Router /poems/{id}/read [post]
// @Security BearerAuth
func NewMarkPoemReadHandler(svc Engager) http.HandlerFunc {
	return newEngagementHandler(svc.MarkPoemRead, engagement{msgInvalidPoemID, "poem read", "poem already read"})
}

// NewLikeCommentHandler likes a comment.
// @Summary Like comment
// @Tags engagement
// @Produce json
// @Param id path string true "Comment id"
// @Success 201 {object} models.Response[bool]
// @Success 200 {object} models.Response[bool]
// @Failure 404 {object} handlers.ErrorResponse
// @Router /comments/{id}/like [post]
// @Security BearerAuth
func NewLikeCommentHandler(svc Engager) http.HandlerFunc {
	return newEngagementHandler(svc.LikeComment, engagement{msgInvalidCommentID, "comment liked", "comment already liked"})
}

// NewUnlikeCommentHandler removes the caller's like from a comment.
// @Summary Unlike comment
// @Tags engagement
// @Produce json
// @Param id path string true "Comment id"
// @Success 200 {object} models.Response[bool]
// @Failure 404 {object} handlers.ErrorResponse
// @Router /comments/{id}/unlike [delete]
// @Security BearerAuth
func NewUnlikeCommentHandler(svc Engager) http.HandlerFunc {
	return newEngagementHandler(svc.UnlikeComment, engagement{invalidID: msgInvalidCommentID, done: "comment unliked"})
}
