package core

import (
	"CollegeAdmin/entity"
	"CollegeAdmin/internal/lib/sl"
	"context"
	"fmt"
	"log/slog"
	"time"
)

// revertTimeout bounds the status rollback after a failed student insert. The
// rollback does not inherit the request's cancellation.
const revertTimeout = 5 * time.Second

// SubmitAdmission stores a new pending admission and returns its id.
func (c *Core) SubmitAdmission(ctx context.Context, input entity.AdmissionInput) (string, error) {
	if err := input.Validate(); err != nil {
		return "", fmt.Errorf("%w: %s", entity.ErrValidation, err)
	}
	if c.repo == nil {
		return "", entity.ErrStoreUnavailable
	}

	admission := entity.NewAdmission(input, c.now())
	id, err := c.repo.InsertAdmission(ctx, admission)
	if err != nil {
		c.log.With(sl.Err(err)).Error("insert admission")
		return "", entity.StoreFailure(err)
	}
	admission.ID = id

	c.log.With(
		slog.String("admission_id", id),
		slog.String("program", admission.Program),
	).Info("admission submitted")
	c.publish(EventAdmissionSubmitted, admission)

	return id, nil
}

// ListAdmissions returns all admissions, or those whose status equals the
// given value. A value no admission carries yields an empty list.
func (c *Core) ListAdmissions(ctx context.Context, status string) ([]entity.Admission, error) {
	if c.repo == nil {
		return nil, entity.ErrStoreUnavailable
	}

	admissions, err := c.repo.ListAdmissions(ctx, status)
	if err != nil {
		c.log.With(sl.Err(err)).Error("list admissions")
		return nil, entity.StoreFailure(err)
	}
	return admissions, nil
}

func (c *Core) GetAdmission(ctx context.Context, id string) (*entity.Admission, error) {
	if c.repo == nil {
		return nil, entity.ErrStoreUnavailable
	}
	admission, err := c.repo.GetAdmission(ctx, id)
	if err != nil {
		return nil, entity.StoreFailure(err)
	}
	if admission == nil {
		return nil, fmt.Errorf("admission %w", entity.ErrNotFound)
	}
	return admission, nil
}

// AcceptAdmission turns a pending admission into a student record and returns
// the new student id. The admission is claimed with a conditional status
// update first, so only one caller can create the student; if the insert then
// fails the admission is put back to pending.
func (c *Core) AcceptAdmission(ctx context.Context, id string) (string, error) {
	admission, err := c.GetAdmission(ctx, id)
	if err != nil {
		return "", err
	}
	if !admission.IsPending() {
		return "", fmt.Errorf("%w: status is %s", entity.ErrAlreadyProcessed, admission.Status)
	}

	log := c.log.With(slog.String("admission_id", id))

	now := c.now()
	claimed, err := c.repo.SetAdmissionStatus(ctx, id, entity.AdmissionPending, entity.AdmissionAccepted, now)
	if err != nil {
		log.With(sl.Err(err)).Error("claim admission")
		return "", entity.StoreFailure(err)
	}
	if !claimed {
		return "", fmt.Errorf("%w: accepted concurrently", entity.ErrAlreadyProcessed)
	}

	student := entity.NewStudentFromAdmission(admission, now)
	studentID, err := c.repo.InsertStudent(ctx, student)
	if err != nil {
		log.With(sl.Err(err)).Error("insert student")
		c.revertClaim(ctx, id, log)
		return "", entity.StoreFailure(err)
	}
	student.ID = studentID

	log.With(slog.String("student_id", studentID)).Info("admission accepted")
	c.publish(EventAdmissionAccepted, student)

	return studentID, nil
}

func (c *Core) revertClaim(ctx context.Context, id string, log *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), revertTimeout)
	defer cancel()

	reverted, err := c.repo.SetAdmissionStatus(ctx, id, entity.AdmissionAccepted, entity.AdmissionPending, c.now())
	if err != nil {
		log.With(sl.Err(err)).Error("revert admission status")
		return
	}
	if !reverted {
		log.Warn("admission changed before revert")
	}
}
