package repository

import (
	"CollegeAdmin/entity"
	"CollegeAdmin/internal/config"
	"CollegeAdmin/internal/lib/sl"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	admissionsCollection = "admission"
	studentsCollection   = "student"
	attendanceCollection = "attendance"
	adminUsersCollection = "adminuser"
)

type MongoDB struct {
	client   *mongo.Client
	database string
	url      string
	log      *slog.Logger
}

// NewMongoClient returns nil without an error when no database url is
// configured. The driver connects lazily, so an unreachable server surfaces as
// errors from the individual operations.
func NewMongoClient(conf *config.Config, logger *slog.Logger) (*MongoDB, error) {
	if conf.Mongo.URL == "" {
		return nil, nil
	}
	clientOptions := options.Client().
		ApplyURI(conf.Mongo.URL).
		SetTimeout(time.Duration(conf.Mongo.Timeout) * time.Second).
		SetServerSelectionTimeout(time.Duration(conf.Mongo.Timeout) * time.Second)

	client, err := mongo.Connect(context.Background(), clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongodb connect error: %w", err)
	}
	return &MongoDB{
		client:   client,
		database: conf.Mongo.Database,
		url:      redact(conf.Mongo.URL),
		log:      logger.With(sl.Module("mongodb")),
	}, nil
}

// URL returns the connection string with credentials hidden.
func (m *MongoDB) URL() string {
	return m.url
}

func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *MongoDB) collection(name string) *mongo.Collection {
	return m.client.Database(m.database).Collection(name)
}

func (m *MongoDB) findError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	return fmt.Errorf("mongodb find error: %w", err)
}

// EnsureIndexes creates the indexes the collections rely on. The attendance
// index backs the one-record-per-student-per-day rule.
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	_, err := m.collection(attendanceCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "student_id", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("student_date_unique"),
	})
	if err != nil {
		return fmt.Errorf("attendance index: %w", err)
	}
	_, err = m.collection(admissionsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("admission index: %w", err)
	}
	return nil
}

// Status pings the server and lists the collections of the configured database.
func (m *MongoDB) Status(ctx context.Context) entity.StoreStatus {
	status := entity.StoreStatus{
		Backend:  "mongodb",
		Database: m.database,
		URL:      m.url,
	}
	db := m.client.Database(m.database)
	if err := m.client.Ping(ctx, nil); err != nil {
		status.Error = truncate(err.Error(), 80)
		return status
	}
	status.Connected = true
	names, err := db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		status.Error = truncate(err.Error(), 80)
		return status
	}
	if len(names) > 10 {
		names = names[:10]
	}
	status.Collections = names
	return status
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", entity.ErrInvalidID, id)
	}
	return oid, nil
}

func insertedID(res *mongo.InsertOneResult) string {
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(res.InsertedID)
}

// redact hides the userinfo of a connection string. Mongo seed lists
// (host1,host2) are not valid for net/url, so the authority is cut by hand.
func redact(raw string) string {
	scheme, rest, ok := strings.Cut(raw, "://")
	if !ok {
		return "invalid url"
	}
	authority, tail := rest, ""
	if i := strings.IndexAny(rest, "/?"); i >= 0 {
		authority, tail = rest[:i], rest[i:]
	}
	if i := strings.LastIndex(authority, "@"); i >= 0 {
		authority = "***@" + authority[i+1:]
	}
	return scheme + "://" + authority + tail
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
