package core

import (
	"CollegeAdmin/entity"
	"CollegeAdmin/internal/lib/sl"
	"context"
	"fmt"
	"log/slog"
)

// RecordAttendance writes the attendance of an existing student for a day.
// Repeating the call for the same student and day updates the one record.
func (c *Core) RecordAttendance(ctx context.Context, input entity.AttendanceInput) error {
	if err := input.Validate(); err != nil {
		return fmt.Errorf("%w: %s", entity.ErrValidation, err)
	}
	if _, err := c.GetStudent(ctx, input.StudentID); err != nil {
		return err
	}

	err := c.repo.UpsertAttendance(ctx, input.StudentID, input.Date, input.Status, input.Note, c.now())
	if err != nil {
		c.log.With(sl.Err(err)).Error("upsert attendance")
		return entity.StoreFailure(err)
	}

	c.log.With(
		slog.String("student_id", input.StudentID),
		slog.String("date", input.Date.String()),
		slog.String("status", input.Status),
	).Debug("attendance recorded")
	c.publish(EventAttendanceRecorded, input)

	return nil
}

// QueryAttendance filters by student and day; zero fields are not filtered on.
func (c *Core) QueryAttendance(ctx context.Context, filter entity.AttendanceFilter) ([]entity.Attendance, error) {
	if c.repo == nil {
		return nil, entity.ErrStoreUnavailable
	}
	records, err := c.repo.ListAttendance(ctx, filter)
	if err != nil {
		c.log.With(sl.Err(err)).Error("list attendance")
		return nil, entity.StoreFailure(err)
	}
	return records, nil
}
