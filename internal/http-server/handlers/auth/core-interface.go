package auth

import (
	"CollegeAdmin/entity"
	"context"
)

type Core interface {
	Login(ctx context.Context, email, password string) (*entity.AdminSummary, error)
}
