package missing

import (
	"context"
	"errors"

	missingdomain "github.com/playershyan/iSafe-sub001/internal/domain/missing"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, report *missingdomain.MissingReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*missingdomain.MissingReport, error) {
	var report missingdomain.MissingReport
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, missingdomain.ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (r *PostgresRepository) GetByPosterCode(ctx context.Context, code string) (*missingdomain.MissingReport, error) {
	var report missingdomain.MissingReport
	if err := r.db.WithContext(ctx).Where("poster_code = ?", code).First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, missingdomain.ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (r *PostgresRepository) ListByReporter(ctx context.Context, clientID string) ([]missingdomain.MissingReport, error) {
	var reports []missingdomain.MissingReport
	if err := r.db.WithContext(ctx).
		Where("reporter_client_id = ?", clientID).
		Order("created_at desc").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// ListMissingReports serves the candidate finder: every still-open report.
func (r *PostgresRepository) ListMissingReports(ctx context.Context) ([]missingdomain.MissingReport, error) {
	var reports []missingdomain.MissingReport
	if err := r.db.WithContext(ctx).
		Where("status = ?", missingdomain.StatusMissing).
		Order("created_at desc").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status missingdomain.Status) error {
	return r.db.WithContext(ctx).Model(&missingdomain.MissingReport{}).Where("id = ?", id).Update("status", status).Error
}

func (r *PostgresRepository) IsPosterCodeTaken(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&missingdomain.MissingReport{}).Where("poster_code = ?", code).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
