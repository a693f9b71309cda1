package core

import (
	"CollegeAdmin/entity"
	"CollegeAdmin/internal/lib/sl"
	"context"
	"fmt"
)

func (c *Core) ListStudents(ctx context.Context) ([]entity.Student, error) {
	if c.repo == nil {
		return nil, entity.ErrStoreUnavailable
	}
	students, err := c.repo.ListStudents(ctx)
	if err != nil {
		c.log.With(sl.Err(err)).Error("list students")
		return nil, entity.StoreFailure(err)
	}
	return students, nil
}

func (c *Core) GetStudent(ctx context.Context, id string) (*entity.Student, error) {
	if c.repo == nil {
		return nil, entity.ErrStoreUnavailable
	}
	student, err := c.repo.GetStudent(ctx, id)
	if err != nil {
		return nil, entity.StoreFailure(err)
	}
	if student == nil {
		return nil, fmt.Errorf("student %w", entity.ErrNotFound)
	}
	return student, nil
}
