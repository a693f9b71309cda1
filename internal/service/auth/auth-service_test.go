package auth

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"CollegeAdmin/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	users []entity.AdminUser
	err   error
}

func (m *memRepo) CountAdminUsers(_ context.Context) (int64, error) {
	return int64(len(m.users)), m.err
}

func (m *memRepo) InsertAdminUser(_ context.Context, user *entity.AdminUser) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	user.ID = fmt.Sprintf("%024x", len(m.users)+1)
	m.users = append(m.users, *user)
	return user.ID, nil
}

func (m *memRepo) GetActiveAdminByEmail(_ context.Context, email string) (*entity.AdminUser, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.Email == email && u.IsActive {
			return &u, nil
		}
	}
	return nil, nil
}

func newService(repo Repository) *Service {
	s := NewAuthService(slog.New(slog.NewTextHandler(io.Discard, nil)))
	if repo != nil {
		s.SetRepository(repo)
	}
	return s
}

func TestSeedAdmin_Idempotent(t *testing.T) {
	repo := &memRepo{}
	s := newService(repo)
	ctx := context.Background()

	created, err := s.SeedAdmin(ctx, "Administrator", "admin@college.edu", "admin123")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = s.SeedAdmin(ctx, "Administrator", "admin@college.edu", "admin123")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Len(t, repo.users, 1)
	assert.NotEqual(t, "admin123", repo.users[0].Password)
}

func TestSeedAdmin_LogKeepsPasswordOut(t *testing.T) {
	var out bytes.Buffer
	s := NewAuthService(slog.New(slog.NewTextHandler(&out, nil)))
	s.SetRepository(&memRepo{})

	created, err := s.SeedAdmin(context.Background(), "Administrator", "admin@college.edu", "s3cret-pass")
	require.NoError(t, err)
	require.True(t, created)

	logged := out.String()
	assert.Contains(t, logged, "default admin created")
	assert.Contains(t, logged, "admin@college.edu")
	assert.NotContains(t, logged, "s3cret-pass")
	assert.NotContains(t, logged, "s3***ss")
}

func TestLogin(t *testing.T) {
	repo := &memRepo{}
	s := newService(repo)
	ctx := context.Background()

	_, err := s.SeedAdmin(ctx, "Administrator", "admin@college.edu", "admin123")
	require.NoError(t, err)

	inactive, err := entity.NewAdminUser("Old Staff", "old@college.edu", "staff123", entity.StaffRole, time.Now())
	require.NoError(t, err)
	inactive.IsActive = false
	_, err = repo.InsertAdminUser(ctx, inactive)
	require.NoError(t, err)

	summary, err := s.Login(ctx, " Admin@College.edu ", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "Administrator", summary.Name)
	assert.Equal(t, "admin@college.edu", summary.Email)
	assert.Equal(t, entity.AdminRole, summary.Role)
	assert.NotEmpty(t, summary.ID)

	cases := []struct {
		name, email, password string
	}{
		{"wrong password", "admin@college.edu", "admin124"},
		{"wrong email", "nobody@college.edu", "admin123"},
		{"inactive user", "old@college.edu", "staff123"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Login(ctx, tc.email, tc.password)
			assert.Equal(t, entity.ErrUnauthorized, err)
		})
	}
}

func TestLogin_StoreErrors(t *testing.T) {
	_, err := newService(nil).Login(context.Background(), "a@b.c", "secret1")
	assert.ErrorIs(t, err, entity.ErrStoreUnavailable)

	repo := &memRepo{err: errors.New("connection refused")}
	_, err = newService(repo).Login(context.Background(), "a@b.c", "secret1")
	assert.ErrorIs(t, err, entity.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, entity.ErrUnauthorized)
}
