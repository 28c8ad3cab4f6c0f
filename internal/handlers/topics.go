package handlers

//go:generate mockgen -source=topics.go -destination=topics_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/poetree/internal/models"
)

type TopicManager interface {
	Create(ctx context.Context, req models.TopicRequest) (*models.TopicDTO, error)
	Get(ctx context.Context, id int) (*models.TopicDTO, error)
	List(ctx context.Context, page int) (models.Page[models.TopicDTO], error)
	Update(ctx context.Context, id int, req models.TopicRequest) (*models.TopicDTO, error)
	Delete(ctx context.Context, id int) error
}

const msgInvalidTopicID = "invalid topic id"

// NewCreateTopicHandler creates a topic.
// @Summary Create topic
// @Tags topics
// @Accept json
// @Produce json
// @Param request body models.TopicRequest true "Name and #rrggbb color"
// @Success 201 {object} models.Response[models.TopicDTO]
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Name or color taken"
// @Router /topics [post]
// @Security BearerAuth
func NewCreateTopicHandler(svc TopicManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.TopicRequest
		if !decode(w, r, &req) {
			return
		}
		out, err := svc.Create(r.Context(), req)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, "topic created successfully", out)
	}
}

// NewGetTopicHandler returns one topic.
// @Summary Get topic
// @Tags topics
// @Produce json
// @Param id path int true "Topic id"
// @Success 200 {object} models.Response[models.TopicDTO]
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /topics/{id} [get]
// @Security BearerAuth
func NewGetTopicHandler(svc TopicManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathInt(w, r, "id", msgInvalidTopicID)
		if !ok {
			return
		}
		out, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, "topic", out)
	}
}

// NewListTopicsHandler returns a page of topics ordered by name.
// @Summary List topics
// @Tags topics
// @Produce json
// @Param page query int false "Page, starting at 1"
// @Success 200 {object} models.Response[models.Page[models.TopicDTO]]
// @Router /topics [get]
// @Security BearerAuth
func NewListTopicsHandler(svc TopicManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := queryPage(w, r)
		if !ok {
			return
		}
		out, err := svc.List(r.Context(), page)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, "topics", out)
	}
}

// NewUpdateTopicHandler renames or recolors a topic.
// @Summary Update topic
// @Tags topics
// @Accept json
// @Produce json
// @Param id path int true "Topic id"
// @Param request body models.TopicRequest true "Fields to change"
// @Success 200 {object} models.Response[models.TopicDTO]
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse
// @Router /topics/{id} [put]
// @Security BearerAuth
func NewUpdateTopicHandler(svc TopicManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathInt(w, r, "id", msgInvalidTopicID)
		if !ok {
			return
		}
		var req models.TopicRequest
		if !decode(w, r, &req) {
			return
		}
		out, err := svc.Update(r.Context(), id, req)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, "topic updated successfully", out)
	}
}

// NewDeleteTopicHandler deletes a topic that no poem uses.
// @Summary Delete topic
// @Tags topics
// @Produce json
// @Param id path int true "Topic id"
// @Success 200 {object} models.Response[bool]
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Topic still has poems"
// @Router /topics/{id} [delete]
// @Security BearerAuth
func NewDeleteTopicHandler(svc TopicManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathInt(w, r, "id", msgInvalidTopicID)
		if !ok {
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, "topic deleted successfully", true)
	}
}
