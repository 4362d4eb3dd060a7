package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/auth"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type service struct {
	userRepo   domain.UserRepository
	authRepo   domain.AuthenticationRepository
	tokens     *auth.JWT
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        domain.Clock
}

var _ domain.UserUsecase = (*service)(nil)

func NewService(userRepo domain.UserRepository, authRepo domain.AuthenticationRepository, tokens *auth.JWT, accessTTL, refreshTTL time.Duration, now domain.Clock) *service {
	return &service{
		userRepo:   userRepo,
		authRepo:   authRepo,
		tokens:     tokens,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        now,
	}
}

func (s *service) Register(ctx context.Context, username, password, fullname string) (domain.AddedUser, error) {
	if strings.TrimSpace(username) == "" || password == "" || strings.TrimSpace(fullname) == "" {
		return domain.AddedUser{}, domain.ErrBadParamInput
	}

	_, err := s.userRepo.GetByUsername(ctx, username)
	if err == nil {
		return domain.AddedUser{}, domain.ErrConflict
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.AddedUser{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logrus.Errorf("failed to hash password: %v", err)
		return domain.AddedUser{}, domain.ErrInternalServerError
	}

	u := domain.User{
		Username: username,
		Password: string(hashed),
		Fullname: fullname,
	}
	if err := s.userRepo.Insert(ctx, &u); err != nil {
		return domain.AddedUser{}, err
	}
	return domain.AddedUser{ID: u.ID, Username: u.Username, Fullname: u.Fullname}, nil
}

func (s *service) Login(ctx context.Context, username, password string) (domain.TokenPair, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return domain.TokenPair{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return domain.TokenPair{}, domain.ErrBadParamInput
	}

	now := s.now()
	access, err := s.tokens.NewToken(u.ID, s.accessTTL, now)
	if err != nil {
		return domain.TokenPair{}, err
	}
	refresh, err := s.tokens.NewToken(u.ID, s.refreshTTL, now)
	if err != nil {
		return domain.TokenPair{}, err
	}
	if err := s.authRepo.Store(ctx, refresh, now.Add(s.refreshTTL)); err != nil {
		return domain.TokenPair{}, err
	}

	return domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if err := s.authRepo.Verify(ctx, refreshToken); err != nil {
		return "", err
	}
	userID, err := s.tokens.Decode(refreshToken)
	if err != nil {
		return "", err
	}
	return s.tokens.NewToken(userID, s.accessTTL, s.now())
}

func (s *service) Logout(ctx context.Context, refreshToken string) error {
	return s.authRepo.Delete(ctx, refreshToken)
}
