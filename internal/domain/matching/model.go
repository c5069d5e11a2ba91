package matching

import (
	"time"

	"github.com/playershyan/iSafe-sub001/internal/domain/missing"
	"github.com/playershyan/iSafe-sub001/internal/domain/person"
)

// Candidate carries the attributes of a newly registered person that the
// finder ranks open reports against. NIC, when present, must already be in
// canonical form.
type Candidate struct {
	FullName string
	Age      int
	Gender   person.Gender
	NIC      string
}

// PotentialMatch is one ranked suggestion for staff review. Score is the
// composite in [0,1]; NICMatch marks the identity short-circuit, which always
// outranks heuristic scores.
type PotentialMatch struct {
	Report   missing.MissingReport
	Score    float64
	NICMatch bool
}

// Confidence flattens the match quality to the 0-100 scale that confirmed
// matches are recorded with.
func (m PotentialMatch) Confidence() int {
	if m.NICMatch {
		return 100
	}
	return int(m.Score*100 + 0.5)
}

const (
	MinConfidence = 0
	MaxConfidence = 100
)

// Match is one confirmed (person, report) pairing. At most one row may exist
// per pair; the unique index on the pair backs the pre-insert check.
type Match struct {
	ID              string    `gorm:"type:uuid;primaryKey"`
	PersonID        string    `gorm:"type:uuid;not null;index:idx_matches_pair,unique"`
	MissingReportID string    `gorm:"type:uuid;not null;index:idx_matches_pair,unique"`
	Confidence      int       `gorm:"not null"`
	ConfirmedAt     time.Time `gorm:"autoCreateTime"`
}
