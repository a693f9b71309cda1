package attendance

import (
	"CollegeAdmin/entity"
	"context"
)

type Core interface {
	RecordAttendance(ctx context.Context, input entity.AttendanceInput) error
	QueryAttendance(ctx context.Context, filter entity.AttendanceFilter) ([]entity.Attendance, error)
}
