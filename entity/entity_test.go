package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestDate_JSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-01"`), &d))
	assert.Equal(t, "2024-03-01", d.String())

	require.NoError(t, json.Unmarshal([]byte(`"2024-03-01T17:45:00Z"`), &d))
	assert.Equal(t, "2024-03-01", d.String())
	assert.Equal(t, 0, d.Hour())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-03-01"`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`"01/03/2024"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20240301`), &d))
}

func TestDate_BSON(t *testing.T) {
	type doc struct {
		Day Date `bson:"day"`
	}
	in := doc{Day: DateOf(time.Date(2024, 3, 1, 13, 30, 0, 0, time.UTC))}

	raw, err := bson.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, bson.TypeDateTime, bson.Raw(raw).Lookup("day").Type)

	var out doc
	require.NoError(t, bson.Unmarshal(raw, &out))
	assert.True(t, in.Day.Equal(out.Day.Time))
}

func TestAdmissionInput_Validate(t *testing.T) {
	dob, _ := ParseDate("2004-05-06")
	input := AdmissionInput{
		FullName: " Jane Doe ",
		Email:    "jane@example.com",
		Phone:    "555-0100",
		Address:  "1 College Rd",
		Program:  "Engineering",

		DateOfBirth: dob,
	}
	require.NoError(t, input.Validate())
	assert.Equal(t, "Jane Doe", input.FullName)

	bad := input
	bad.Email = "jane-at-example"
	bad.Program = ""
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")
	assert.Contains(t, err.Error(), "program is required")

	noDob := input
	noDob.DateOfBirth = Date{}
	assert.Error(t, noDob.Validate())
}

func TestNewStudentFromAdmission(t *testing.T) {
	now := time.Now()
	a := &Admission{ID: "65f1c0ffee0000000000abcd", FullName: "Jane Doe", Email: "jane@example.com", Program: "Engineering"}

	s := NewStudentFromAdmission(a, now)
	assert.Equal(t, a.FullName, s.FullName)
	assert.Equal(t, a.Email, s.Email)
	assert.Equal(t, a.Program, s.Program)
	assert.Equal(t, a.ID, s.AdmissionID)
	assert.Nil(t, s.RollNo)
	require.NotNil(t, s.Year)
	assert.Equal(t, 1, *s.Year)
	assert.True(t, s.IsActive)
	assert.Empty(t, s.ID)
}

func TestAttendanceInput_DefaultStatus(t *testing.T) {
	day, _ := ParseDate("2024-03-01")
	input := AttendanceInput{StudentID: "65f1c0ffee0000000000abcd", Date: day}
	require.NoError(t, input.Validate())
	assert.Equal(t, AttendancePresent, input.Status)

	input.Status = "sleeping"
	assert.Error(t, input.Validate())
}

func TestAdminUser_Password(t *testing.T) {
	u, err := NewAdminUser("Admin", "Admin@College.edu", "admin123", "", time.Now())
	require.NoError(t, err)
	assert.Equal(t, AdminRole, u.Role)
	assert.Equal(t, "admin@college.edu", u.Email)
	assert.NotEqual(t, "admin123", u.Password)
	assert.True(t, u.CheckPassword("admin123"))
	assert.False(t, u.CheckPassword("admin124"))

	_, err = NewAdminUser("Admin", "admin@college.edu", "short", "", time.Now())
	assert.Error(t, err)

	_, err = NewAdminUser("Admin", "admin@college.edu", "admin123", "owner", time.Now())
	assert.Error(t, err)
}
