package matching

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/playershyan/iSafe-sub001/internal/domain/missing"
	"github.com/playershyan/iSafe-sub001/internal/domain/person"
)

// Recorder persists staff-confirmed matches. Confirmation is the point where
// a report transitions to FOUND, so the match insert and the status update
// share one transaction.
type Recorder struct {
	repo Repository
}

func NewRecorder(repo Repository) *Recorder {
	return &Recorder{repo: repo}
}

// Confirm records the pairing exactly once. A second confirmation of the same
// pair returns ErrMatchAlreadyConfirmed and leaves the first row untouched.
func (r *Recorder) Confirm(ctx context.Context, personID, reportID string, confidence int) (*Match, error) {
	personID = strings.TrimSpace(personID)
	reportID = strings.TrimSpace(reportID)
	if personID == "" {
		return nil, fmt.Errorf("%w: person id is required", ErrInvalidInput)
	}
	if reportID == "" {
		return nil, fmt.Errorf("%w: report id is required", ErrInvalidInput)
	}
	if confidence < MinConfidence || confidence > MaxConfidence {
		return nil, fmt.Errorf("%w: confidence must be between %d and %d", ErrInvalidInput, MinConfidence, MaxConfidence)
	}

	var result Match
	err := r.repo.Transaction(ctx, func(tx Repository) error {
		personOK, err := tx.PersonExists(ctx, personID)
		if err != nil {
			return err
		}
		if !personOK {
			return person.ErrPersonNotFound
		}

		reportOK, err := tx.ReportExists(ctx, reportID)
		if err != nil {
			return err
		}
		if !reportOK {
			return missing.ErrReportNotFound
		}

		confirmed, err := tx.MatchExists(ctx, personID, reportID)
		if err != nil {
			return err
		}
		if confirmed {
			return ErrMatchAlreadyConfirmed
		}

		match := Match{
			ID:              uuid.NewString(),
			PersonID:        personID,
			MissingReportID: reportID,
			Confidence:      confidence,
		}
		if err := tx.CreateMatch(ctx, &match); err != nil {
			return err
		}

		if err := tx.MarkReportFound(ctx, reportID); err != nil {
			return err
		}

		result = match
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
