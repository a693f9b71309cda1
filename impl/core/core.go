package core

import (
	"CollegeAdmin/entity"
	"CollegeAdmin/internal/lib/sl"
	"context"
	"crypto/subtle"
	"log/slog"
	"time"
)

type Repository interface {
	InsertAdmission(ctx context.Context, admission *entity.Admission) (string, error)
	ListAdmissions(ctx context.Context, status string) ([]entity.Admission, error)
	GetAdmission(ctx context.Context, id string) (*entity.Admission, error)
	SetAdmissionStatus(ctx context.Context, id, from, to string, now time.Time) (bool, error)

	InsertStudent(ctx context.Context, student *entity.Student) (string, error)
	ListStudents(ctx context.Context) ([]entity.Student, error)
	GetStudent(ctx context.Context, id string) (*entity.Student, error)

	UpsertAttendance(ctx context.Context, studentID string, date entity.Date, status string, note *string, now time.Time) error
	ListAttendance(ctx context.Context, filter entity.AttendanceFilter) ([]entity.Attendance, error)

	Status(ctx context.Context) entity.StoreStatus
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*entity.AdminSummary, error)
}

// EventPublisher receives lifecycle events for connected dashboards.
type EventPublisher interface {
	Publish(eventType string, data interface{})
}

const (
	EventAdmissionSubmitted = "admission_submitted"
	EventAdmissionAccepted  = "admission_accepted"
	EventAttendanceRecorded = "attendance_recorded"
)

type Core struct {
	repo        Repository
	authService AuthService
	events      EventPublisher
	about       entity.About
	contact     entity.Contact
	authKey     string
	now         func() time.Time
	log         *slog.Logger
}

func New(log *slog.Logger) *Core {
	return &Core{
		log: log.With(sl.Module("core")),
		now: func() time.Time {
			return time.Now().UTC().Truncate(time.Millisecond)
		},
	}
}

func (c *Core) SetRepository(repo Repository) {
	c.repo = repo
}

func (c *Core) SetAuthService(auth AuthService) {
	c.authService = auth
}

func (c *Core) SetEventPublisher(events EventPublisher) {
	c.events = events
}

func (c *Core) SetAuthKey(key string) {
	c.authKey = key
}

// ValidateToken checks a dashboard token against the configured api key.
// Without a configured key every token is accepted.
func (c *Core) ValidateToken(token string) (string, error) {
	if c.authKey == "" {
		return "anonymous", nil
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(c.authKey)) != 1 {
		return "", entity.ErrUnauthorized
	}
	return "api-key", nil
}

func (c *Core) SetInfo(about entity.About, contact entity.Contact) {
	c.about = about
	c.contact = contact
}

func (c *Core) About() entity.About {
	return c.about
}

func (c *Core) Contact() entity.Contact {
	return c.contact
}

func (c *Core) Login(ctx context.Context, email, password string) (*entity.AdminSummary, error) {
	if c.authService == nil {
		return nil, entity.ErrStoreUnavailable
	}
	return c.authService.Login(ctx, email, password)
}

// StoreStatus describes the database for the diagnostic endpoint; it never fails.
func (c *Core) StoreStatus(ctx context.Context) entity.StoreStatus {
	if c.repo == nil {
		return entity.StoreStatus{
			Backend: "mongodb",
			Error:   "database not configured",
		}
	}
	return c.repo.Status(ctx)
}

func (c *Core) publish(eventType string, data interface{}) {
	if c.events == nil {
		return
	}
	c.events.Publish(eventType, data)
}
