package auth

import (
	"CollegeAdmin/entity"
	"CollegeAdmin/internal/lib/sl"
	"context"
	"log/slog"
	"strings"
	"time"
)

type Repository interface {
	CountAdminUsers(ctx context.Context) (int64, error)
	InsertAdminUser(ctx context.Context, user *entity.AdminUser) (string, error)
	GetActiveAdminByEmail(ctx context.Context, email string) (*entity.AdminUser, error)
}

type Service struct {
	repository Repository
	log        *slog.Logger
}

func NewAuthService(logger *slog.Logger) *Service {
	return &Service{
		repository: nil,
		log:        logger.With(sl.Module("auth-service")),
	}
}

func (s *Service) SetRepository(repository Repository) {
	s.repository = repository
}

// Login checks the credentials of an active admin user. Unknown email, wrong
// password and inactive user all return the same ErrUnauthorized.
func (s *Service) Login(ctx context.Context, email, password string) (*entity.AdminSummary, error) {
	if s.repository == nil {
		return nil, entity.ErrStoreUnavailable
	}
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repository.GetActiveAdminByEmail(ctx, email)
	if err != nil {
		s.log.With(sl.Err(err)).Error("getting admin user")
		return nil, entity.StoreFailure(err)
	}
	if user == nil || !user.CheckPassword(password) {
		s.log.With(slog.String("email", email)).Warn("login failed")
		return nil, entity.ErrUnauthorized
	}

	summary := user.Summary()
	s.log.With(
		slog.String("email", summary.Email),
		slog.String("role", summary.Role),
	).Info("admin logged in")
	return &summary, nil
}

// SeedAdmin creates the default admin when no admin user exists yet. It
// reports whether a user was created.
func (s *Service) SeedAdmin(ctx context.Context, name, email, password string) (bool, error) {
	if s.repository == nil {
		return false, entity.ErrStoreUnavailable
	}
	count, err := s.repository.CountAdminUsers(ctx)
	if err != nil {
		return false, entity.StoreFailure(err)
	}
	if count > 0 {
		return false, nil
	}

	user, err := entity.NewAdminUser(name, email, password, entity.AdminRole, time.Now().UTC())
	if err != nil {
		return false, err
	}
	id, err := s.repository.InsertAdminUser(ctx, user)
	if err != nil {
		return false, entity.StoreFailure(err)
	}

	s.log.With(
		slog.String("id", id),
		slog.String("email", user.Email),
	).Warn("default admin created, change its password")
	return true, nil
}
