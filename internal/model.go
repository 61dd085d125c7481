package internal

import "time"

// User is the authenticated caller resolved by the auth provider. Users are
// owned by the identity service and never persisted here.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// VitalLog is a single timestamped measurement snapshot. Every numeric field
// is optional; a log with none of them set is still stored.
type VitalLog struct {
	ID         string    `json:"id" bson:"_id"`
	UserID     string    `json:"userId" bson:"userId"`
	Systolic   *int      `json:"systolic,omitempty" bson:"systolic,omitempty"`
	Diastolic  *int      `json:"diastolic,omitempty" bson:"diastolic,omitempty"`
	HeartRate  *int      `json:"heartRate,omitempty" bson:"heartRate,omitempty"`
	Weight     *float64  `json:"weight,omitempty" bson:"weight,omitempty"`
	BloodSugar *int      `json:"bloodSugar,omitempty" bson:"bloodSugar,omitempty"`
	Notes      string    `json:"notes,omitempty" bson:"notes,omitempty"`
	Date       time.Time `json:"date" bson:"date"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}

// Medication is a tracked prescription entry. LastTaken records the last
// false→true toggle and is never cleared by toggling back.
type Medication struct {
	ID        string     `json:"id" bson:"_id"`
	UserID    string     `json:"userId" bson:"userId"`
	Name      string     `json:"name" bson:"name"`
	Dosage    string     `json:"dosage" bson:"dosage"`
	Frequency string     `json:"frequency" bson:"frequency"`
	IsTaken   bool       `json:"isTaken" bson:"isTaken"`
	LastTaken *time.Time `json:"lastTaken,omitempty" bson:"lastTaken,omitempty"`
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
}
