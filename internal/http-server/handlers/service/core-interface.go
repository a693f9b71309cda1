package service

import (
	"CollegeAdmin/entity"
	"context"
)

type Service interface {
	StoreStatus(ctx context.Context) entity.StoreStatus
}
