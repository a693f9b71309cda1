package entity

import (
	"CollegeAdmin/internal/lib/validate"
	"strings"
	"time"
)

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
)

// Attendance is the single record kept for a student on a calendar day.
type Attendance struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	StudentID string    `json:"student_id" bson:"student_id"`
	Date      Date      `json:"date" bson:"date"`
	Status    string    `json:"status" bson:"status"`
	Note      *string   `json:"note" bson:"note"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

type AttendanceInput struct {
	StudentID string  `json:"student_id" validate:"required"`
	Date      Date    `json:"date" validate:"required"`
	Status    string  `json:"status" validate:"oneof=present absent late"`
	Note      *string `json:"note,omitempty"`
}

// Validate fills the default status before checking the fields.
func (a *AttendanceInput) Validate() error {
	a.StudentID = strings.TrimSpace(a.StudentID)
	a.Status = strings.ToLower(strings.TrimSpace(a.Status))
	if a.Status == "" {
		a.Status = AttendancePresent
	}
	return validate.Struct(a)
}

// AttendanceFilter selects attendance records; empty fields match everything.
type AttendanceFilter struct {
	StudentID string
	Date      Date
}
