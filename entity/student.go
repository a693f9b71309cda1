package entity

import "time"

const FirstYear = 1

type Student struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	AdmissionID string    `json:"admission_id,omitempty" bson:"admission_id,omitempty"`
	FullName    string    `json:"full_name" bson:"full_name"`
	Email       string    `json:"email" bson:"email"`
	Program     string    `json:"program" bson:"program"`
	RollNo      *string   `json:"roll_no" bson:"roll_no"`
	Year        *int      `json:"year" bson:"year" validate:"omitempty,min=1,max=6"`
	IsActive    bool      `json:"is_active" bson:"is_active"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// NewStudentFromAdmission builds the student record created when an admission
// is accepted. The roll number is assigned later.
func NewStudentFromAdmission(a *Admission, now time.Time) *Student {
	year := FirstYear
	return &Student{
		AdmissionID: a.ID,
		FullName:    a.FullName,
		Email:       a.Email,
		Program:     a.Program,
		RollNo:      nil,
		Year:        &year,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
