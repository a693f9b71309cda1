package repository

import (
	"CollegeAdmin/entity"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

func (m *MongoDB) CountAdminUsers(ctx context.Context) (int64, error) {
	count, err := m.collection(adminUsersCollection).CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("mongodb count error: %w", err)
	}
	return count, nil
}

func (m *MongoDB) InsertAdminUser(ctx context.Context, user *entity.AdminUser) (string, error) {
	res, err := m.collection(adminUsersCollection).InsertOne(ctx, user)
	if err != nil {
		return "", fmt.Errorf("mongodb insert error: %w", err)
	}
	return insertedID(res), nil
}

// GetActiveAdminByEmail returns nil when no active user has the email.
func (m *MongoDB) GetActiveAdminByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	filter := bson.D{{Key: "email", Value: email}, {Key: "is_active", Value: true}}

	var user entity.AdminUser
	err := m.collection(adminUsersCollection).FindOne(ctx, filter).Decode(&user)
	if err != nil {
		return nil, m.findError(err)
	}
	return &user, nil
}
