package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/poetree/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLikePoemHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	me, poemID := uuid.New(), uuid.New()
	target := "/poems/" + poemID.String() + "/like"

	tests := []struct {
		name         string
		created      bool
		err          error
		expectedCode int
		expectedMsg  string
		expectedData string
	}{
		{"first like", true, nil, http.StatusCreated, "poem liked", "true"},
		{"repeat like", false, nil, http.StatusOK, "poem already liked", "false"},
		{"missing poem", false, &services.Error{Kind: services.ErrNotFound, Message: "poem not found"}, http.StatusNotFound, "poem not found", "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockEngager(ctrl)
			svc.EXPECT().LikePoem(gomock.Any(), me, poemID).Return(tt.created, tt.err)

			rr, env := call(t, http.MethodPost, "/poems/{id}/like", target, "", NewLikePoemHandler(svc), &me)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedMsg, env.Message)
			assert.JSONEq(t, tt.expectedData, string(env.Data))
		})
	}
}

func TestEngagementHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	me, id := uuid.New(), uuid.New()

	tests := []struct {
		name         string
		method       string
		pattern      string
		handler      func(Engager) http.HandlerFunc
		mockSetup    func(m *MockEngager)
		expectedCode int
		expectedMsg  string
		expectedData string
	}{
		{
			name: "unlike without like", method: http.MethodDelete, pattern: "/poems/{id}/unlike",
			handler:      NewUnlikePoemHandler,
			mockSetup:    func(m *MockEngager) { m.EXPECT().UnlikePoem(gomock.Any(), me, id).Return(false, nil) },
			expectedCode: http.StatusOK, expectedMsg: "poem unliked", expectedData: "false",
		},
		{
			name: "bookmark", method: http.MethodPost, pattern: "/poems/{id}/bookmark",
			handler:      NewBookmarkPoemHandler,
			mockSetup:    func(m *MockEngager) { m.EXPECT().BookmarkPoem(gomock.Any(), me, id).Return(true, nil) },
			expectedCode: http.StatusCreated, expectedMsg: "poem bookmarked", expectedData: "true",
		},
		{
			name: "unbookmark", method: http.MethodDelete, pattern: "/poems/{id}/un-bookmark",
			handler:      NewUnbookmarkPoemHandler,
			mockSetup:    func(m *MockEngager) { m.EXPECT().UnbookmarkPoem(gomock.Any(), me, id).Return(true, nil) },
			expectedCode: http.StatusOK, expectedMsg: "poem bookmark deleted", expectedData: "true",
		},
		{
			name: "read again", method: http.MethodPost, pattern: "/poems/{id}/read",
			handler:      NewMarkPoemReadHandler,
			mockSetup:    func(m *MockEngager) { m.EXPECT().MarkPoemRead(gomock.Any(), me, id).Return(false, nil) },
			expectedCode: http.StatusOK, expectedMsg: "poem already read", expectedData: "false",
		},
		{
			name: "like comment", method: http.MethodPost, pattern: "/comments/{id}/like",
			handler:      NewLikeCommentHandler,
			mockSetup:    func(m *MockEngager) { m.EXPECT().LikeComment(gomock.Any(), me, id).Return(true, nil) },
			expectedCode: http.StatusCreated, expectedMsg: "comment liked", expectedData: "true",
		},
		{
			name: "unlike comment", method: http.MethodDelete, pattern: "/comments/{id}/unlike",
			handler:      NewUnlikeCommentHandler,
			mockSetup:    func(m *MockEngager) { m.EXPECT().UnlikeComment(gomock.Any(), me, id).Return(true, nil) },
			expectedCode: http.StatusOK, expectedMsg: "comment unliked", expectedData: "true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockEngager(ctrl)
			tt.mockSetup(svc)

			target := strings.Replace(tt.pattern, "{id}", id.String(), 1)

			rr, env := call(t, tt.method, tt.pattern, target, "", tt.handler(svc), &me)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedMsg, env.Message)
			assert.JSONEq(t, tt.expectedData, string(env.Data))
		})
	}
}

func TestEngagementHandlers_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	me := uuid.New()
	svc := NewMockEngager(ctrl)

	rr, env := call(t, http.MethodPost, "/comments/{id}/like", "/comments/abc/like", "", NewLikeCommentHandler(svc), &me)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "invalid comment id", env.Message)
}
