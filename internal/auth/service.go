package auth

import (
	"context"
	"time"

	"github.com/ledgerline/backend/internal/storage"
	pkgAuth "github.com/ledgerline/backend/pkg/auth"
	"github.com/ledgerline/backend/pkg/config"
	pkgerrors "github.com/ledgerline/backend/pkg/errors"
)

const invalidCredentialsMessage = "invalid credentials"

// Service defines the behavior needed by the auth controllers.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
}

type userStore interface {
	GetUserByUsername(username string) (*storage.User, bool)
	GetUserByEmail(email string) (*storage.User, bool)
	CreateUser(insert storage.InsertUser) *storage.User
}

type service struct {
	users    userStore
	verifier CredentialVerifier
	jwtCfg   config.JWTConfig
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	Users     userStore
	Verifier  CredentialVerifier
	JWTConfig config.JWTConfig
}

// NewService constructs an auth service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Users == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "user store required")
	}
	if params.Verifier == nil {
		params.Verifier = PlaintextVerifier{}
	}
	return &service{
		users:    params.Users,
		verifier: params.Verifier,
		jwtCfg:   params.JWTConfig,
	}, nil
}

func (s *service) Login(_ context.Context, req LoginRequest) (*AuthResponse, error) {
	user, ok := s.users.GetUserByUsername(req.Username)
	if !ok || !s.verifier.Verify(user.Password, req.Password) {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}
	return s.respond(user)
}

func (s *service) Register(_ context.Context, req RegisterRequest) (*AuthResponse, error) {
	// Username and email uniqueness is a deliberate policy decision:
	// registration rejects duplicates even though the store itself does
	// not enforce them.
	if _, taken := s.users.GetUserByUsername(req.Username); taken {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "username already taken")
	}
	if _, taken := s.users.GetUserByEmail(req.Email); taken {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
	}

	user := s.users.CreateUser(storage.InsertUser{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Name:     req.Name,
		Company:  req.Company,
	})
	return s.respond(user)
}

func (s *service) respond(user *storage.User) (*AuthResponse, error) {
	token, err := pkgAuth.MintAccessToken(s.jwtCfg, time.Now().UTC(), pkgAuth.AccessTokenPayload{
		UserID:   user.ID,
		Username: user.Username,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	return &AuthResponse{
		AccessToken: token,
		User: UserSummary{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Name:     user.Name,
		},
	}, nil
}
