package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/LidiaAlemu/meditrack/internal"
	"github.com/LidiaAlemu/meditrack/internal/storage"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func testUser() *internal.User    { return &internal.User{ID: "u1", Name: "Test User"} }

func TestValidateVitalLogRequest_Ranges(t *testing.T) {
	tests := []struct {
		name    string
		req     VitalLogRequest
		wantErr bool
	}{
		{"all fields in range", VitalLogRequest{Systolic: intPtr(120), Diastolic: intPtr(80), HeartRate: intPtr(72), Weight: floatPtr(70.5), BloodSugar: intPtr(100)}, false},
		{"empty request is valid", VitalLogRequest{}, false},
		{"systolic too high", VitalLogRequest{Systolic: intPtr(251)}, true},
		{"systolic too low", VitalLogRequest{Systolic: intPtr(49)}, true},
		{"diastolic too high", VitalLogRequest{Diastolic: intPtr(151)}, true},
		{"heart rate too low", VitalLogRequest{HeartRate: intPtr(29)}, true},
		{"weight fractional in range", VitalLogRequest{Weight: floatPtr(20.5)}, false},
		{"weight too high", VitalLogRequest{Weight: floatPtr(300.1)}, true},
		{"blood sugar too high", VitalLogRequest{BloodSugar: intPtr(501)}, true},
		{"boundary values accepted", VitalLogRequest{Systolic: intPtr(250), Diastolic: intPtr(30), BloodSugar: intPtr(50)}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateVitalLogRequest(&tc.req)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateVitalLog_AssignsIdentityAndOwner(t *testing.T) {
	repo, _ := storage.NewMemoryRepositories()
	user := testUser()

	log, err := CreateVitalLog(context.Background(), repo, user, &VitalLogRequest{Systolic: intPtr(130)})
	assert.NoError(t, err)
	assert.NotEmpty(t, log.ID)
	assert.Equal(t, "u1", log.UserID)
	assert.False(t, log.Date.IsZero())

	logs, err := ListVitalLogs(context.Background(), repo, user, 50)
	assert.NoError(t, err)
	assert.Len(t, logs, 1)
	assert.Equal(t, log.ID, logs[0].ID)
}

func TestCreateVitalLog_HonorsProvidedDate(t *testing.T) {
	repo, _ := storage.NewMemoryRepositories()
	date := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	log, err := CreateVitalLog(context.Background(), repo, testUser(), &VitalLogRequest{Weight: floatPtr(71.2), Date: &date})
	assert.NoError(t, err)
	assert.Equal(t, date, log.Date)
}

func TestListVitalLogs_CapsLimit(t *testing.T) {
	repo, _ := storage.NewMemoryRepositories()
	user := testUser()
	for i := 0; i < 60; i++ {
		_, err := CreateVitalLog(context.Background(), repo, user, &VitalLogRequest{HeartRate: intPtr(60 + i%40)})
		assert.NoError(t, err)
	}

	logs, err := ListVitalLogs(context.Background(), repo, user, 0)
	assert.NoError(t, err)
	assert.Len(t, logs, VitalLogListLimit)

	logs, err = ListVitalLogs(context.Background(), repo, user, 500)
	assert.NoError(t, err)
	assert.Len(t, logs, VitalLogListLimit)
}

func TestDeleteVitalLog_SecondDeleteFails(t *testing.T) {
	repo, _ := storage.NewMemoryRepositories()
	user := testUser()
	log, err := CreateVitalLog(context.Background(), repo, user, &VitalLogRequest{Systolic: intPtr(110)})
	assert.NoError(t, err)

	assert.NoError(t, DeleteVitalLog(context.Background(), repo, user, log.ID))
	err = DeleteVitalLog(context.Background(), repo, user, log.ID)
	assert.ErrorIs(t, err, internal.ErrNotFound)
}
