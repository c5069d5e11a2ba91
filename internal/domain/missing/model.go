package missing

import (
	"time"

	"github.com/playershyan/iSafe-sub001/internal/domain/person"
	"github.com/playershyan/iSafe-sub001/internal/domain/shelter"
)

type Status string

const (
	StatusMissing Status = "MISSING"
	StatusFound   Status = "FOUND"
)

// MissingReport is filed anonymously; ReporterClientID is the client-generated
// identifier that later authorizes marking the report found. Reports are never
// hard-deleted and the poster code never changes once assigned.
type MissingReport struct {
	ID               string           `gorm:"type:uuid;primaryKey"`
	FullName         string           `gorm:"not null;index"`
	Age              int              `gorm:"not null"`
	Gender           person.Gender    `gorm:"type:varchar(8);not null"`
	NIC              *string          `gorm:"size:12;index"`
	PhotoURL         *string          `gorm:""`
	LastSeenLocation string           `gorm:"not null"`
	LastSeenDistrict shelter.District `gorm:"type:varchar(16);not null;index"`
	LastSeenDate     *time.Time       `gorm:""`
	Clothing         *string          `gorm:""`
	ReporterName     string           `gorm:"not null"`
	ReporterPhone    string           `gorm:"size:20;not null"`
	ReporterClientID string           `gorm:"size:64;not null;index"`
	Status           Status           `gorm:"type:varchar(8);not null;index"`
	PosterCode       string           `gorm:"size:7;not null;uniqueIndex"`
	CreatedAt        time.Time        `gorm:"autoCreateTime"`
}
