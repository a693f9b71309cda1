package repository

import (
	"CollegeAdmin/entity"
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

func (m *MongoDB) InsertAdmission(ctx context.Context, admission *entity.Admission) (string, error) {
	res, err := m.collection(admissionsCollection).InsertOne(ctx, admission)
	if err != nil {
		return "", fmt.Errorf("mongodb insert error: %w", err)
	}
	return insertedID(res), nil
}

// ListAdmissions returns admissions in natural order, filtered by status when set.
func (m *MongoDB) ListAdmissions(ctx context.Context, status string) ([]entity.Admission, error) {
	filter := bson.D{}
	if status != "" {
		filter = append(filter, bson.E{Key: "status", Value: status})
	}

	cursor, err := m.collection(admissionsCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("mongodb find error: %w", err)
	}
	defer cursor.Close(ctx)

	admissions := make([]entity.Admission, 0)
	if err = cursor.All(ctx, &admissions); err != nil {
		return nil, fmt.Errorf("mongodb decode error: %w", err)
	}
	return admissions, nil
}

// GetAdmission returns nil when no admission has the given id.
func (m *MongoDB) GetAdmission(ctx context.Context, id string) (*entity.Admission, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var admission entity.Admission
	err = m.collection(admissionsCollection).FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&admission)
	if err != nil {
		return nil, m.findError(err)
	}
	return &admission, nil
}

// SetAdmissionStatus moves an admission from one status to another. It reports
// false when the admission was not in the expected status.
func (m *MongoDB) SetAdmissionStatus(ctx context.Context, id, from, to string, now time.Time) (bool, error) {
	oid, err := objectID(id)
	if err != nil {
		return false, err
	}

	filter := bson.D{{Key: "_id", Value: oid}, {Key: "status", Value: from}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: to},
		{Key: "updated_at", Value: now},
	}}}

	res, err := m.collection(admissionsCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("mongodb update error: %w", err)
	}
	return res.MatchedCount == 1, nil
}
