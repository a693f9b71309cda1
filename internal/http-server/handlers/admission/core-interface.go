package admission

import (
	"CollegeAdmin/entity"
	"context"
)

type Core interface {
	SubmitAdmission(ctx context.Context, input entity.AdmissionInput) (string, error)
	ListAdmissions(ctx context.Context, status string) ([]entity.Admission, error)
	GetAdmission(ctx context.Context, id string) (*entity.Admission, error)
	AcceptAdmission(ctx context.Context, id string) (string, error)
}
