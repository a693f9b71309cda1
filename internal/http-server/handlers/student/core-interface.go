package student

import (
	"CollegeAdmin/entity"
	"context"
)

type Core interface {
	ListStudents(ctx context.Context) ([]entity.Student, error)
	GetStudent(ctx context.Context, id string) (*entity.Student, error)
}
