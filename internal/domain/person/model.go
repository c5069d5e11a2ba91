package person

import "time"

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

func ValidGender(g Gender) bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

type HealthStatus string

const (
	HealthHealthy    HealthStatus = "HEALTHY"
	HealthInjured    HealthStatus = "INJURED"
	HealthCritical   HealthStatus = "CRITICAL"
	HealthRecovering HealthStatus = "RECOVERING"
)

func ValidHealthStatus(s HealthStatus) bool {
	switch s {
	case HealthHealthy, HealthInjured, HealthCritical, HealthRecovering:
		return true
	}
	return false
}

const (
	MinAge = 0
	MaxAge = 120
)

// Person is a sheltered-person record. Rows are append-only: the shelter
// reference is immutable, and re-registration at a different shelter is a new
// record rather than an update.
type Person struct {
	ID           string       `gorm:"type:uuid;primaryKey"`
	FullName     string       `gorm:"not null;index"`
	Age          int          `gorm:"not null"`
	Gender       Gender       `gorm:"type:varchar(8);not null"`
	NIC          *string      `gorm:"size:12;index"`
	PhotoURL     *string      `gorm:""`
	HealthStatus HealthStatus `gorm:"type:varchar(16);not null"`
	ShelterID    string       `gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time    `gorm:"autoCreateTime"`
}

// TableName pins the table to "persons"; gorm would otherwise pluralize the
// struct name to "people".
func (Person) TableName() string {
	return "persons"
}
