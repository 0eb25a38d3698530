package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"cookcal_backend/internal/domain/apperr"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	LoginFunc func(ctx context.Context, email, password string) (string, error)
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", apperr.ErrInvalidCredentials
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		form           url.Values
		mockLoginFunc  func(ctx context.Context, email, password string) (string, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: token issued",
			form: url.Values{"username": {"alice@x.com"}, "password": {"password123"}},
			mockLoginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "signed-token", nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"access_token":"signed-token","token_type":"bearer"}`,
		},
		{
			name:           "failure: missing fields",
			form:           url.Values{"username": {"alice@x.com"}},
			mockLoginFunc:  nil, // usecase is not called
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"detail":"Invalid Credentials"}`,
		},
		{
			name:           "failure: bad credentials",
			form:           url.Values{"username": {"alice@x.com"}, "password": {"nope"}},
			mockLoginFunc:  nil, // default mock rejects
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"detail":"Invalid Credentials"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&mockAuthUsecase{LoginFunc: tt.mockLoginFunc})

			router := gin.New()
			router.POST("/login", h.Login)

			req, _ := http.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
