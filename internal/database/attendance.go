package repository

import (
	"CollegeAdmin/entity"
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpsertAttendance writes the record for (studentID, date) in one operation.
// created_at is only set when the record is inserted.
func (m *MongoDB) UpsertAttendance(ctx context.Context, studentID string, date entity.Date, status string, note *string, now time.Time) error {
	filter := bson.D{{Key: "student_id", Value: studentID}, {Key: "date", Value: date}}
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "status", Value: status},
			{Key: "note", Value: note},
			{Key: "updated_at", Value: now},
		}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "created_at", Value: now},
		}},
	}
	opts := options.Update().SetUpsert(true)

	_, err := m.collection(attendanceCollection).UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("mongodb upsert error: %w", err)
	}
	return nil
}

func (m *MongoDB) ListAttendance(ctx context.Context, f entity.AttendanceFilter) ([]entity.Attendance, error) {
	filter := bson.D{}
	if f.StudentID != "" {
		filter = append(filter, bson.E{Key: "student_id", Value: f.StudentID})
	}
	if !f.Date.IsZero() {
		filter = append(filter, bson.E{Key: "date", Value: f.Date})
	}

	cursor, err := m.collection(attendanceCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("mongodb find error: %w", err)
	}
	defer cursor.Close(ctx)

	records := make([]entity.Attendance, 0)
	if err = cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("mongodb decode error: %w", err)
	}
	return records, nil
}
