package missing

import "context"

type Repository interface {
	Create(ctx context.Context, report *MissingReport) error
	GetByID(ctx context.Context, id string) (*MissingReport, error)
	GetByPosterCode(ctx context.Context, code string) (*MissingReport, error)
	ListByReporter(ctx context.Context, clientID string) ([]MissingReport, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	IsPosterCodeTaken(ctx context.Context, code string) (bool, error)
}
