package entity

import (
	"CollegeAdmin/internal/lib/validate"
	"strings"
	"time"
)

const (
	AdmissionPending  = "pending"
	AdmissionAccepted = "accepted"
	AdmissionRejected = "rejected"
)

// Admission is an application submitted by a prospective student.
type Admission struct {
	ID                string    `json:"id" bson:"_id,omitempty"`
	FullName          string    `json:"full_name" bson:"full_name"`
	Email             string    `json:"email" bson:"email"`
	Phone             string    `json:"phone" bson:"phone"`
	Address           string    `json:"address" bson:"address"`
	Program           string    `json:"program" bson:"program"`
	DateOfBirth       Date      `json:"date_of_birth" bson:"date_of_birth"`
	PreviousEducation string    `json:"previous_education,omitempty" bson:"previous_education,omitempty"`
	Status            string    `json:"status" bson:"status"`
	CreatedAt         time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" bson:"updated_at"`
}

// AdmissionInput holds the fields an applicant submits.
type AdmissionInput struct {
	FullName          string `json:"full_name" validate:"required"`
	Email             string `json:"email" validate:"required,email"`
	Phone             string `json:"phone" validate:"required"`
	Address           string `json:"address" validate:"required"`
	Program           string `json:"program" validate:"required"`
	DateOfBirth       Date   `json:"date_of_birth" validate:"required"`
	PreviousEducation string `json:"previous_education,omitempty" validate:"omitempty"`
}

func (a *AdmissionInput) Validate() error {
	a.FullName = strings.TrimSpace(a.FullName)
	a.Email = strings.TrimSpace(a.Email)
	a.Phone = strings.TrimSpace(a.Phone)
	a.Address = strings.TrimSpace(a.Address)
	a.Program = strings.TrimSpace(a.Program)
	return validate.Struct(a)
}

// NewAdmission creates a pending admission from a validated input.
func NewAdmission(input AdmissionInput, now time.Time) *Admission {
	return &Admission{
		FullName:          input.FullName,
		Email:             input.Email,
		Phone:             input.Phone,
		Address:           input.Address,
		Program:           input.Program,
		DateOfBirth:       input.DateOfBirth,
		PreviousEducation: input.PreviousEducation,
		Status:            AdmissionPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (a *Admission) IsPending() bool {
	return a.Status == AdmissionPending
}
