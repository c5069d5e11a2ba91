package search

import (
	"context"

	"github.com/playershyan/iSafe-sub001/internal/domain/missing"
	"github.com/playershyan/iSafe-sub001/internal/domain/person"
)

type Repository interface {
	SearchPersonsByName(ctx context.Context, query string, limit int) ([]person.Person, error)
	SearchReportsByName(ctx context.Context, query string, limit int) ([]missing.MissingReport, error)
	FindPersonsByNIC(ctx context.Context, nic string, limit int) ([]person.Person, error)
	// MatchedPersonIDs returns the subset of personIDs that have a confirmed
	// match linked to them.
	MatchedPersonIDs(ctx context.Context, personIDs []string) (map[string]struct{}, error)
	// PersonIDsByReport returns reportID -> matched personID for reports that
	// have a confirmed match.
	PersonIDsByReport(ctx context.Context, reportIDs []string) (map[string]string, error)
}
