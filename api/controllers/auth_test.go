package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ledgerline/backend/internal/auth"
	pkgerrors "github.com/ledgerline/backend/pkg/errors"
)

type testAuthService struct {
	loginFn    func(ctx context.Context, req auth.LoginRequest) (*auth.AuthResponse, error)
	registerFn func(ctx context.Context, req auth.RegisterRequest) (*auth.AuthResponse, error)
}

func (s *testAuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.AuthResponse, error) {
	if s.loginFn != nil {
		return s.loginFn(ctx, req)
	}
	return nil, nil
}

func (s *testAuthService) Register(ctx context.Context, req auth.RegisterRequest) (*auth.AuthResponse, error) {
	if s.registerFn != nil {
		return s.registerFn(ctx, req)
	}
	return nil, nil
}

func TestAuthLoginSuccess(t *testing.T) {
	svc := &testAuthService{
		loginFn: func(_ context.Context, req auth.LoginRequest) (*auth.AuthResponse, error) {
			if req.Username != "accountant" || req.Password != "password123" {
				t.Fatalf("unexpected credentials %+v", req)
			}
			return &auth.AuthResponse{
				AccessToken: "token-value",
				User:        auth.UserSummary{ID: 1, Username: "accountant"},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bodyReader(`{"username":"accountant","password":"password123"}`))
	resp := httptest.NewRecorder()
	AuthLogin(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var got auth.AuthResponse
	decodeData(t, resp, &got)
	if got.AccessToken != "token-value" || got.User.Username != "accountant" {
		t.Fatalf("unexpected response %+v", got)
	}
}

func TestAuthLoginRejectsBadCredentials(t *testing.T) {
	svc := &testAuthService{
		loginFn: func(_ context.Context, _ auth.LoginRequest) (*auth.AuthResponse, error) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bodyReader(`{"username":"accountant","password":"wrong-pass"}`))
	resp := httptest.NewRecorder()
	AuthLogin(svc, testLogger())(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestAuthLoginValidatesBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bodyReader(`{"username":"accountant"}`))
	resp := httptest.NewRecorder()
	AuthLogin(&testAuthService{}, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing password, got %d", resp.Code)
	}
}

func TestAuthRegisterCreated(t *testing.T) {
	svc := &testAuthService{
		registerFn: func(_ context.Context, req auth.RegisterRequest) (*auth.AuthResponse, error) {
			return &auth.AuthResponse{
				AccessToken: "token-value",
				User:        auth.UserSummary{ID: 4, Username: req.Username},
			}, nil
		},
	}

	body := `{"username":"newuser","password":"password123","email":"new@example.com","name":"New User"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bodyReader(body))
	resp := httptest.NewRecorder()
	AuthRegister(svc, testLogger())(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestAuthRegisterRejectsShortPassword(t *testing.T) {
	body := `{"username":"newuser","password":"short","email":"new@example.com","name":"New User"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bodyReader(body))
	resp := httptest.NewRecorder()
	AuthRegister(&testAuthService{}, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for short password, got %d", resp.Code)
	}
}
