package auth

import (
	"context"
	"time"

	"github.com/techmart-labs/techmart-backend/internal/session"
	pkgauth "github.com/techmart-labs/techmart-backend/pkg/auth"
	"github.com/techmart-labs/techmart-backend/pkg/config"
	pkgerrors "github.com/techmart-labs/techmart-backend/pkg/errors"
	"github.com/techmart-labs/techmart-backend/pkg/logger"
)

// Service exposes session authentication operations. Credentials are never
// verified against anything; the simulated backend accepts every attempt
// after its artificial delay.
type Service interface {
	Login(ctx context.Context, input LoginInput) (*SessionDTO, error)
	Register(ctx context.Context, input RegisterInput) (*SessionDTO, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, patch session.UserPatch) (*session.User, error)
	CurrentUser(ctx context.Context) (*session.User, bool)
}

// LoginInput holds the validated login payload.
type LoginInput struct {
	Email    string
	Password string
}

// RegisterInput holds the validated registration payload.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// SessionDTO is the signed-in user together with the bearer token the API
// hands back.
type SessionDTO struct {
	User  session.User `json:"user"`
	Token string       `json:"token"`
}

// ServiceParams groups dependencies for the auth service.
type ServiceParams struct {
	Store  *session.Store
	JWT    config.JWTConfig
	Logger *logger.Logger
	Clock  func() time.Time
}

type service struct {
	store *session.Store
	jwt   config.JWTConfig
	logg  *logger.Logger
	clock func() time.Time
}

// NewService builds the auth service.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session store is required")
	}
	if params.Clock == nil {
		params.Clock = time.Now
	}
	return &service{
		store: params.Store,
		jwt:   params.JWT,
		logg:  params.Logger,
		clock: params.Clock,
	}, nil
}

// Login signs the user in and mints a session token.
func (s *service) Login(ctx context.Context, input LoginInput) (*SessionDTO, error) {
	user, err := s.store.Login(ctx, input.Email, input.Password)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "login interrupted")
	}
	return s.mintSession(ctx, user)
}

// Register signs up a fresh user and mints a session token.
func (s *service) Register(ctx context.Context, input RegisterInput) (*SessionDTO, error) {
	user, err := s.store.Register(ctx, session.RegisterInput{
		Email:     input.Email,
		Password:  input.Password,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "registration interrupted")
	}
	return s.mintSession(ctx, user)
}

// Logout resets the whole session.
func (s *service) Logout(ctx context.Context) error {
	s.store.Logout(ctx)
	return nil
}

// UpdateProfile merges the patch into the signed-in user.
func (s *service) UpdateProfile(ctx context.Context, patch session.UserPatch) (*session.User, error) {
	state := s.store.State()
	if !state.IsAuthenticated || state.User == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "no active session")
	}
	s.store.UpdateUser(ctx, patch)
	updated := s.store.State().User
	return updated, nil
}

// CurrentUser returns the signed-in user, if any.
func (s *service) CurrentUser(_ context.Context) (*session.User, bool) {
	state := s.store.State()
	if !state.IsAuthenticated || state.User == nil {
		return nil, false
	}
	return state.User, true
}

func (s *service) mintSession(ctx context.Context, user session.User) (*SessionDTO, error) {
	token, err := pkgauth.MintSessionToken(s.jwt, s.clock(), user.ID, user.Email)
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "minting session token failed", err)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "minting session token")
	}
	return &SessionDTO{User: user, Token: token}, nil
}
