package handlers

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/poetree/internal/models"
	"github.com/sbilibin2017/poetree/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestCreatePoemHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	me := uuid.New()
	svc := NewMockPoemManager(ctrl)
	svc.EXPECT().
		Create(gomock.Any(), me, models.PoemRequest{Title: ptr("Rain"), Content: ptr("drops"), HTML: ptr("<p>drops</p>"), Topic: ptr(3)}).
		Return(&models.PoemDTO{ID: uuid.NewString(), Title: "Rain"}, nil)

	rr, env := call(t, http.MethodPost, "/poems", "/poems",
		`{"title":"Rain","content":"drops","html":"<p>drops</p>","topic":3}`, NewCreatePoemHandler(svc), &me)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "poem created", env.Message)
}

func TestListPoemsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	me := uuid.New()

	t.Run("filters", func(t *testing.T) {
		svc := NewMockPoemManager(ctrl)
		svc.EXPECT().List(gomock.Any(), me, ptr("rain"), ptr(4), 2).
			Return(models.Page[models.PoemFeedDTO]{List: []models.PoemFeedDTO{}}, nil)

		rr, env := call(t, http.MethodGet, "/poems", "/poems?q=rain&topic=4&page=2", "", NewListPoemsHandler(svc), &me)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "poems", env.Message)
	})

	t.Run("no filters", func(t *testing.T) {
		svc := NewMockPoemManager(ctrl)
		svc.EXPECT().List(gomock.Any(), me, nil, nil, 1).
			Return(models.Page[models.PoemFeedDTO]{List: []models.PoemFeedDTO{}}, nil)

		rr, _ := call(t, http.MethodGet, "/poems", "/poems", "", NewListPoemsHandler(svc), &me)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("invalid topic", func(t *testing.T) {
		svc := NewMockPoemManager(ctrl)

		rr, env := call(t, http.MethodGet, "/poems", "/poems?topic=abc", "", NewListPoemsHandler(svc), &me)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "invalid topic id", env.Message)
	})
}

func TestPoemHandlers_PathIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	me, id := uuid.New(), uuid.New()

	tests := []struct {
		name         string
		method       string
		pattern      string
		target       string
		body         string
		handler      func(PoemManager) http.HandlerFunc
		mockSetup    func(m *MockPoemManager)
		expectedCode int
		expectedMsg  string
	}{
		{
			name: "get", method: http.MethodGet, pattern: "/poems/{id}", target: "/poems/" + id.String(),
			handler: NewGetPoemHandler,
			mockSetup: func(m *MockPoemManager) {
				m.EXPECT().Get(gomock.Any(), me, id).Return(&models.PoemFeedDTO{ID: id.String()}, nil)
			},
			expectedCode: http.StatusOK, expectedMsg: "poem",
		},
		{
			name: "get invalid id", method: http.MethodGet, pattern: "/poems/{id}", target: "/poems/not-a-uuid",
			handler: NewGetPoemHandler, mockSetup: func(m *MockPoemManager) {},
			expectedCode: http.StatusBadRequest, expectedMsg: "invalid poem id",
		},
		{
			name: "update someone else's", method: http.MethodPut, pattern: "/poems/{id}", target: "/poems/" + id.String(),
			body:    `{"title":"Mine now"}`,
			handler: NewUpdatePoemHandler,
			mockSetup: func(m *MockPoemManager) {
				m.EXPECT().Update(gomock.Any(), me, id, models.PoemRequest{Title: ptr("Mine now")}).
					Return(nil, &services.Error{Kind: services.ErrForbidden, Message: "this poem is not yours"})
			},
			expectedCode: http.StatusForbidden, expectedMsg: "this poem is not yours",
		},
		{
			name: "delete", method: http.MethodDelete, pattern: "/poems/{id}", target: "/poems/" + id.String(),
			handler: NewDeletePoemHandler,
			mockSetup: func(m *MockPoemManager) {
				m.EXPECT().Delete(gomock.Any(), me, id).Return(nil)
			},
			expectedCode: http.StatusOK, expectedMsg: "poem deleted",
		},
		{
			name: "comments of missing poem", method: http.MethodGet, pattern: "/poems/{id}/comments", target: "/poems/" + id.String() + "/comments?page=1",
			handler: NewListPoemCommentsHandler,
			mockSetup: func(m *MockPoemManager) {
				m.EXPECT().ListComments(gomock.Any(), me, id, 1).
					Return(models.Page[models.CommentFeedDTO]{}, &services.Error{Kind: services.ErrNotFound, Message: "poem not found"})
			},
			expectedCode: http.StatusNotFound, expectedMsg: "poem not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockPoemManager(ctrl)
			tt.mockSetup(svc)

			rr, env := call(t, tt.method, tt.pattern, tt.target, tt.body, tt.handler(svc), &me)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedMsg, env.Message)
		})
	}
}
