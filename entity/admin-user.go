package entity

import (
	"CollegeAdmin/internal/lib/validate"
	"errors"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	AdminRole = "admin"
	StaffRole = "staff"
)

// AdminUser can log in to manage admissions and attendance. Password holds a
// bcrypt hash, never the plain value.
type AdminUser struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name" validate:"required"`
	Email     string    `json:"email" bson:"email" validate:"required,email"`
	Password  string    `json:"-" bson:"password"`
	Role      string    `json:"role" bson:"role" validate:"oneof=admin staff"`
	IsActive  bool      `json:"is_active" bson:"is_active"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// AdminSummary is what a successful login reveals about the user.
type AdminSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (l *LoginRequest) Bind(_ *http.Request) error {
	l.Email = strings.ToLower(strings.TrimSpace(l.Email))
	return validate.Struct(l)
}

// NewAdminUser validates the plain password and stores its bcrypt hash.
func NewAdminUser(name, email, password, role string, now time.Time) (*AdminUser, error) {
	if role == "" {
		role = AdminRole
	}
	if err := validate.Var(password, "required,min=6"); err != nil {
		return nil, errors.New("password must be at least 6 characters")
	}
	user := &AdminUser{
		Name:      strings.TrimSpace(name),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Role:      role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := validate.Struct(user); err != nil {
		return nil, err
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *AdminUser) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

func (u *AdminUser) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

func (u *AdminUser) Summary() AdminSummary {
	return AdminSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
