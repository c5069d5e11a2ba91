package matching

import (
	"context"

	"github.com/playershyan/iSafe-sub001/internal/domain/missing"
)

// ReportSource is the read side the finder needs: every report still open.
type ReportSource interface {
	ListMissingReports(ctx context.Context) ([]missing.MissingReport, error)
}

// Repository is the write side for confirmations. Existence probes live here
// rather than on the person/missing repositories so the whole confirmation
// runs inside one transaction.
type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	PersonExists(ctx context.Context, personID string) (bool, error)
	ReportExists(ctx context.Context, reportID string) (bool, error)
	MatchExists(ctx context.Context, personID, reportID string) (bool, error)
	CreateMatch(ctx context.Context, match *Match) error
	MarkReportFound(ctx context.Context, reportID string) error
}
