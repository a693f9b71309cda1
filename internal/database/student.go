package repository

import (
	"CollegeAdmin/entity"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

func (m *MongoDB) InsertStudent(ctx context.Context, student *entity.Student) (string, error) {
	res, err := m.collection(studentsCollection).InsertOne(ctx, student)
	if err != nil {
		return "", fmt.Errorf("mongodb insert error: %w", err)
	}
	return insertedID(res), nil
}

func (m *MongoDB) ListStudents(ctx context.Context) ([]entity.Student, error) {
	cursor, err := m.collection(studentsCollection).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("mongodb find error: %w", err)
	}
	defer cursor.Close(ctx)

	students := make([]entity.Student, 0)
	if err = cursor.All(ctx, &students); err != nil {
		return nil, fmt.Errorf("mongodb decode error: %w", err)
	}
	return students, nil
}

// GetStudent returns nil when no student has the given id.
func (m *MongoDB) GetStudent(ctx context.Context, id string) (*entity.Student, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var student entity.Student
	err = m.collection(studentsCollection).FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&student)
	if err != nil {
		return nil, m.findError(err)
	}
	return &student, nil
}
