package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string `json:"full_name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Status string `json:"status" validate:"omitempty,oneof=present absent"`
}

func TestStruct(t *testing.T) {
	require.NoError(t, Struct(&sample{Name: "Jane", Email: "jane@example.com"}))

	err := Struct(&sample{Email: "not-an-email", Status: "gone"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "full_name is required")
	assert.Contains(t, err.Error(), "email is not a valid email")
	assert.Contains(t, err.Error(), "status must be one of [present absent]")
}

func TestVar(t *testing.T) {
	assert.NoError(t, Var("late", "oneof=present absent late"))
	assert.Error(t, Var("early", "oneof=present absent late"))
}
