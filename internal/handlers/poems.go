package handlers

//go:generate mockgen -source=poems.go -destination=poems_mock.go -package=handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/poetree/internal/models"
)

type PoemManager interface {
	Create(ctx context.Context, userID uuid.UUID, req models.PoemRequest) (*models.PoemDTO, error)
	Get(ctx context.Context, viewer, id uuid.UUID) (*models.PoemFeedDTO, error)
	List(ctx context.Context, viewer uuid.UUID, q *string, topicID *int, page int) (models.Page[models.PoemFeedDTO], error)
	Update(ctx context.Context, userID, id uuid.UUID, req models.PoemRequest) (*models.PoemDTO, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	ListComments(ctx context.Context, viewer, poemID uuid.UUID, page int) (models.Page[models.CommentFeedDTO], error)
}

const msgInvalidPoemID = "invalid poem id"

// NewCreatePoemHandler publishes a poem for the caller.
// @Summary Create poem
// @Tags poems
// @Accept json
// @Produce json
// @Param request body models.PoemRequest true "Poem"
// @Success 201 {object} models.Response[models.PoemDTO]
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Topic not found"
// @Router /poems [post]
// @Security BearerAuth
func NewCreatePoemHandler(svc PoemManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		var req models.PoemRequest
		if !decode(w, r, &req) {
			return
		}
		out, err := svc.Create(r.Context(), userID, req)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, "poem created", out)
	}
}

// NewGetPoemHandler returns one poem with the caller's engagement flags and totals.
// @Summary Get poem
// @Tags poems
// @Produce json
// @Param id path string true "Poem id"
// @Success 200 {object} models.Response[models.PoemFeedDTO]
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /poems/{id} [get]
// @Security BearerAuth
func NewGetPoemHandler(svc PoemManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := pathUUID(w, r, "id", msgInvalidPoemID)
		if !ok {
			return
		}
		out, err := svc.Get(r.Context(), viewer, id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, "poem", out)
	}
}

// NewListPoemsHandler returns a page of the feed, newest first.
// @Summary Poem feed
// @Tags poems
// @Produce json
// @Param q query string false "Title or content substring"
// @Param topic query int false "Topic id"
// @Param page query int false "Page, starting at 1"
// @Success 200 {object} models.Response[models.Page[models.PoemFeedDTO]]
// @Failure 400 {object} handlers.ErrorResponse "Invalid topic or page"
// @Router /poems [get]
// @Security BearerAuth
func NewListPoemsHandler(svc PoemManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := currentUser(w, r)
		if !ok {
			return
		}
		page, ok := queryPage(w, r)
		if !ok {
			return
		}

		var topicID *int
		if raw := strings.TrimSpace(r.URL.Query().Get("topic")); raw != "" {
			id, err := strconv.Atoi(raw)
			if err != nil || id <= 0 {
				writeFail(w, http.StatusBadRequest, msgInvalidTopicID)
				return
			}
			topicID = &id
		}

		out, err := svc.List(r.Context(), viewer, queryString(r, "q"), topicID, page)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, "poems", out)
	}
}

// NewUpdatePoemHandler edits the caller's poem.
// @Summary Update poem
// @Tags poems
// @Accept json
// @Produce json
// @Param id path string true "Poem id"
// @Param request body models.PoemRequest true "Fields to change"
// @Success 200 {object} models.Response[models.PoemDTO]
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse "Not the author"
// @Failure 404 {object} handlers.ErrorResponse
// @Router /poems/{id} [put]
// @Security BearerAuth
func NewUpdatePoemHandler(svc PoemManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := pathUUID(w, r, "id", msgInvalidPoemID)
		if !ok {
			return
		}
		var req models.PoemRequest
		if !decode(w, r, &req) {
			return
		}
		out, err := svc.Update(r.Context(), userID, id, req)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, "poem updated", out)
	}
}

// NewDeletePoemHandler deletes the caller's poem with its comments and engagement.
// @Summary Delete poem
// @Tags poems
// @Produce json
// @Param id path string true "Poem id"
// @Success 200 {object} models.Response[bool]
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /poems/{id} [delete]
// @Security BearerAuth
func NewDeletePoemHandler(svc PoemManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := pathUUID(w, r, "id", msgInvalidPoemID)
		if !ok {
			return
		}
		if err := svc.Delete(r.Context(), userID, id); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, "poem deleted", true)
	}
}

// NewListPoemCommentsHandler returns a page of a poem's comments, newest first.
// @Summary Poem comments
// @Tags poems
// @Produce json
// @Param id path string true "Poem id"
// @Param page query int false "Page, starting at 1"
// @Success 200 {object} models.Response[models.Page[models.CommentFeedDTO]]
// @Failure 404 {object} handlers.ErrorResponse
// @Router /poems/{id}/comments [get]
// @Security BearerAuth
func NewListPoemCommentsHandler(svc PoemManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := pathUUID(w, r, "id", msgInvalidPoemID)
		if !ok {
			return
		}
		page, ok := queryPage(w, r)
		if !ok {
			return
		}
		out, err := svc.ListComments(r.Context(), viewer, id, page)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, "comments", out)
	}
}
