package search

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

func (r *PostgresRepository) SearchPersonsByName(ctx context.Context, query string, limit int) ([]persondomain.Person, error) {
	var persons []persondomain.Person
	q := r.db.WithContext(ctx).
		Where("full_name ILIKE ?", "%"+escapeLike(query)+"%").
		Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&persons).Error; err != nil {
		return nil, err
	}
	return persons, nil
}

func (r *PostgresRepository) SearchReportsByName(ctx context.Context, query string, limit int) ([]missingdomain.MissingReport, error) {
	var reports []missingdomain.MissingReport
	q := r.db.WithContext(ctx).
		Where("full_name ILIKE ?", "%"+escapeLike(query)+"%").
		Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *PostgresRepository) FindPersonsByNIC(ctx context.Context, nic string, limit int) ([]persondomain.Person, error) {
	var persons []persondomain.Person
	q := r.db.WithContext(ctx).
		Where("UPPER(nic) = ?", nic).
		Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&persons).Error; err != nil {
		return nil, err
	}
	return persons, nil
}

func (r *PostgresRepository) MatchedPersonIDs(ctx context.Context, personIDs []string) (map[string]struct{}, error) {
	if len(personIDs) == 0 {
		return map[string]struct{}{}, nil
	}

	var ids []string
	if err := r.db.WithContext(ctx).Model(&matchingdomain.Match{}).
		Where("person_id IN ?", personIDs).
		Distinct().
		Pluck("person_id", &ids).Error; err != nil {
		return nil, err
	}

	result := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		result[id] = struct{}{}
	}
	return result, nil
}

func (r *PostgresRepository) PersonIDsByReport(ctx context.Context, reportIDs []string) (map[string]string, error) {
	if len(reportIDs) == 0 {
		return map[string]string{}, nil
	}

	type row struct {
		PersonID        string `gorm:"column:person_id"`
		MissingReportID string `gorm:"column:missing_report_id"`
	}

	var rows []row
	if err := r.db.WithContext(ctx).Model(&matchingdomain.Match{}).
		Select("person_id, missing_report_id").
		Where("missing_report_id IN ?", reportIDs).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make(map[string]string, len(rows))
	for _, item := range rows {
		result[item.MissingReportID] = item.PersonID
	}
	return result, nil
}

// escapeLike neutralizes LIKE wildcards in user input so a query of "%" does
// not scan the whole table.
func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
