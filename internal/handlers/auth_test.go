package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/poetree/internal/models"
	"github.com/sbilibin2017/poetree/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestSignUpHandler(t *testing.T) {
	ctrl := gomock.NewController(t)

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockAuthenticator)
		expectedCode int
		expectedMsg  string
	}{
		{
			name: "success",
			body: `{"email":"jane@poetree.art","password":"secret"}`,
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().
					SignUp(gomock.Any(), models.AuthRequest{Email: "jane@poetree.art", Password: "secret"}).
					Return(&models.AuthDTO{TokenPairDTO: models.TokenPairDTO{Token: "a", RefreshToken: "r"}}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedMsg:  "signed up successfully",
		},
		{
			name: "email taken",
			body: `{"email":"jane@poetree.art","password":"secret"}`,
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().SignUp(gomock.Any(), gomock.Any()).
					Return(nil, &services.Error{Kind: services.ErrConflict, Message: "email already in use"})
			},
			expectedCode: http.StatusConflict,
			expectedMsg:  "email already in use",
		},
		{
			name: "internal server error",
			body: `{"email":"jane@poetree.art","password":"secret"}`,
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().SignUp(gomock.Any(), gomock.Any()).Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "internal server error",
		},
		{
			name:         "invalid json",
			body:         `{invalid`,
			mockSetup:    func(m *MockAuthenticator) {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockAuthenticator(ctrl)
			tt.mockSetup(svc)

			rr, env := call(t, http.MethodPost, "/auth/signup", "/auth/signup", tt.body, NewSignUpHandler(svc), nil)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedMsg, env.Message)
			assert.Equal(t, tt.expectedCode < 400, env.Success)
		})
	}
}

func TestSignInHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockAuthenticator(ctrl)
	svc.EXPECT().SignIn(gomock.Any(), gomock.Any()).
		Return(nil, &services.Error{Kind: services.ErrUnauthorized, Message: "invalid credentials"})

	rr, env := call(t, http.MethodPost, "/auth/signin", "/auth/signin", `{"email":"a@b.co","password":"x"}`, NewSignInHandler(svc), nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "invalid credentials", env.Message)
}

func TestRefreshHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockAuthenticator(ctrl)
	svc.EXPECT().Refresh(gomock.Any(), models.RefreshRequest{Token: "old"}).
		Return(&models.TokenPairDTO{Token: "new", RefreshToken: "newer"}, nil)

	rr, env := call(t, http.MethodPost, "/auth/refresh", "/auth/refresh", `{"token":"old"}`, NewRefreshHandler(svc), nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"token":"new","refreshToken":"newer"}`, string(env.Data))
}

func TestResetPasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockAuthenticator(ctrl)
	svc.EXPECT().ResetPassword(gomock.Any(), models.ResetRequest{Email: "a@b.co"}).Return(nil)

	rr, env := call(t, http.MethodPost, "/auth/reset", "/auth/reset", `{"email":"a@b.co"}`, NewResetPasswordHandler(svc), nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "reset link sent", env.Message)
}

func TestUpdatePasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	me := uuid.New()

	t.Run("updated", func(t *testing.T) {
		svc := NewMockAuthenticator(ctrl)
		svc.EXPECT().
			UpdatePassword(gomock.Any(), me, models.PasswordUpdateRequest{OldPassword: "a", NewPassword: "b"}).
			Return(&models.TokenPairDTO{Token: "t", RefreshToken: "r"}, nil)

		rr, env := call(t, http.MethodPut, "/users/me/password", "/users/me/password",
			`{"oldPassword":"a","newPassword":"b"}`, NewUpdatePasswordHandler(svc), &me)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "password updated", env.Message)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		svc := NewMockAuthenticator(ctrl)

		rr, _ := call(t, http.MethodPut, "/users/me/password", "/users/me/password", `{}`, NewUpdatePasswordHandler(svc), nil)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
