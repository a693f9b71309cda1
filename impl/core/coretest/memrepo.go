// Package coretest provides an in-memory repository for exercising the core in tests.
package coretest

import (
	"CollegeAdmin/entity"
	"context"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// MemRepo keeps collections in memory and validates ids the way the mongo
// repository does: 24 hex characters. Writes on the admission status and
// student collections fail once their context is done.
type MemRepo struct {
	mu         sync.Mutex
	seq        int
	admissions map[string]entity.Admission
	students   map[string]entity.Student
	attendance []entity.Attendance

	// FailStudentInsert is returned by InsertStudent when set.
	FailStudentInsert error
	// FailAll is returned by the admission insert and list calls when set.
	FailAll error
}

func NewMemRepo() *MemRepo {
	return &MemRepo{
		admissions: make(map[string]entity.Admission),
		students:   make(map[string]entity.Student),
	}
}

func (m *MemRepo) nextID() string {
	m.seq++
	return fmt.Sprintf("%024x", m.seq)
}

func checkID(id string) error {
	if _, err := hex.DecodeString(id); err != nil || len(id) != 24 {
		return fmt.Errorf("%w: %q", entity.ErrInvalidID, id)
	}
	return nil
}

func (m *MemRepo) InsertAdmission(_ context.Context, a *entity.Admission) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailAll != nil {
		return "", m.FailAll
	}
	doc := *a
	doc.ID = m.nextID()
	m.admissions[doc.ID] = doc
	return doc.ID, nil
}

func (m *MemRepo) ListAdmissions(_ context.Context, status string) ([]entity.Admission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailAll != nil {
		return nil, m.FailAll
	}
	out := make([]entity.Admission, 0)
	for _, a := range m.admissions {
		if status == "" || a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MemRepo) GetAdmission(_ context.Context, id string) (*entity.Admission, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.admissions[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (m *MemRepo) SetAdmissionStatus(ctx context.Context, id, from, to string, now time.Time) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.admissions[id]
	if !ok || a.Status != from {
		return false, nil
	}
	a.Status = to
	a.UpdatedAt = now
	m.admissions[id] = a
	return true, nil
}

func (m *MemRepo) InsertStudent(ctx context.Context, s *entity.Student) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailStudentInsert != nil {
		return "", m.FailStudentInsert
	}
	doc := *s
	doc.ID = m.nextID()
	m.students[doc.ID] = doc
	return doc.ID, nil
}

func (m *MemRepo) ListStudents(_ context.Context) ([]entity.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.Student, 0, len(m.students))
	for _, s := range m.students {
		out = append(out, s)
	}
	return out, nil
}

func (m *MemRepo) GetStudent(_ context.Context, id string) (*entity.Student, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.students[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *MemRepo) UpsertAttendance(_ context.Context, studentID string, date entity.Date, status string, note *string, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, rec := range m.attendance {
		if rec.StudentID == studentID && rec.Date.Equal(date.Time) {
			m.attendance[i].Status = status
			m.attendance[i].Note = note
			m.attendance[i].UpdatedAt = now
			return nil
		}
	}
	m.attendance = append(m.attendance, entity.Attendance{
		ID:        m.nextID(),
		StudentID: studentID,
		Date:      date,
		Status:    status,
		Note:      note,
		CreatedAt: now,
		UpdatedAt: now,
	})
	return nil
}

func (m *MemRepo) ListAttendance(_ context.Context, f entity.AttendanceFilter) ([]entity.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.Attendance, 0)
	for _, rec := range m.attendance {
		if f.StudentID != "" && rec.StudentID != f.StudentID {
			continue
		}
		if !f.Date.IsZero() && !rec.Date.Equal(f.Date.Time) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (m *MemRepo) Status(_ context.Context) entity.StoreStatus {
	return entity.StoreStatus{Backend: "memory", Connected: true}
}
