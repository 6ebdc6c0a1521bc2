package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"blog-backend/internal/domains/user"
)

type stubService struct {
	registerErr error
	loginErr    error
}

func (s *stubService) Register(_ context.Context, req user.SignupRequest) (*user.UserDTO, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &user.UserDTO{ID: uuid.New(), Name: req.Name, Email: req.Email}, nil
}

func (s *stubService) Login(_ context.Context, req user.LoginRequest) (*user.LoginResponse, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &user.LoginResponse{
		Token: "token",
		User:  user.UserDTO{ID: uuid.New(), Email: req.Email},
	}, nil
}

func setupRouter(svc user.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewUserHandler(svc)
	router := gin.New()
	router.POST("/auth/signup", h.Signup)
	router.POST("/auth/login", h.Login)
	return router
}

func doJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestSignup_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "created", serviceErr: nil, wantStatus: http.StatusCreated},
		{name: "duplicate email", serviceErr: user.ErrEmailAlreadyExists, wantStatus: http.StatusBadRequest},
		{name: "validation failed", serviceErr: validation.Errors{"name": assert.AnError}, wantStatus: http.StatusBadRequest},
		{name: "store failure", serviceErr: assert.AnError, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(&stubService{registerErr: tt.serviceErr})

			rr := doJSON(router, "/auth/signup", `{"name":"Alice","email":"a@x.com","password":"secret1"}`)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestSignup_MalformedBody(t *testing.T) {
	router := setupRouter(&stubService{})

	rr := doJSON(router, "/auth/signup", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLogin_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "ok", serviceErr: nil, wantStatus: http.StatusOK},
		{name: "invalid credentials", serviceErr: user.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized},
		{name: "store failure", serviceErr: assert.AnError, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(&stubService{loginErr: tt.serviceErr})

			rr := doJSON(router, "/auth/login", `{"email":"a@x.com","password":"secret1"}`)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestLogin_MalformedBody_Unauthorized(t *testing.T) {
	// The login wire contract has no 400; a body that does not parse is
	// treated as failed authentication.
	router := setupRouter(&stubService{})

	rr := doJSON(router, "/auth/login", `{not json`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
