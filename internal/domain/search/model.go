package search

import (
	"time"

	"github.com/playershyan/iSafe-sub001/internal/domain/missing"
	"github.com/playershyan/iSafe-sub001/internal/domain/person"
)

type Kind string

const (
	KindPerson        Kind = "person"
	KindMissingReport Kind = "missingReport"
)

type Status string

const (
	// Person registered at a shelter, no confirmed match yet.
	StatusSheltered Status = "SHELTERED"
	// Person whose registration has been matched to a report.
	StatusFoundAndSheltered Status = "FOUND_AND_SHELTERED"
	// Report still open.
	StatusMissing Status = "MISSING"
	// Report closed, either by the reporter or through a confirmed match.
	StatusFound Status = "FOUND"
)

// UnifiedResult is a tagged variant over the two entity kinds: exactly one of
// Person / Report is set, per Kind.
type UnifiedResult struct {
	Kind      Kind
	Status    Status
	CreatedAt time.Time
	Person    *person.Person
	Report    *missing.MissingReport
}
