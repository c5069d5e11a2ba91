package match

import (
	"context"

	matchingdomain "github.com/playershyan/iSafe-sub001/internal/domain/matching"
	missingdomain "github.com/playershyan/iSafe-sub001/internal/domain/missing"
	persondomain "github.com/playershyan/iSafe-sub001/internal/domain/person"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(matchingdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) PersonExists(ctx context.Context, personID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&persondomain.Person{}).Where("id = ?", personID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) ReportExists(ctx context.Context, reportID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&missingdomain.MissingReport{}).Where("id = ?", reportID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) MatchExists(ctx context.Context, personID, reportID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&matchingdomain.Match{}).
		Where("person_id = ? AND missing_report_id = ?", personID, reportID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) CreateMatch(ctx context.Context, match *matchingdomain.Match) error {
	return r.db.WithContext(ctx).Create(match).Error
}

func (r *PostgresRepository) MarkReportFound(ctx context.Context, reportID string) error {
	return r.db.WithContext(ctx).Model(&missingdomain.MissingReport{}).
		Where("id = ?", reportID).
		Update("status", missingdomain.StatusFound).Error
}
