package person

import (
	"context"
	"errors"

	persondomain "github.com/playershyan/iSafe-sub001/internal/domain/person"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, person *persondomain.Person) error {
	return r.db.WithContext(ctx).Create(person).Error
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*persondomain.Person, error) {
	var person persondomain.Person
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&person).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, persondomain.ErrPersonNotFound
		}
		return nil, err
	}
	return &person, nil
}

func (r *PostgresRepository) ListByShelter(ctx context.Context, shelterID string) ([]persondomain.Person, error) {
	var persons []persondomain.Person
	if err := r.db.WithContext(ctx).
		Where("shelter_id = ?", shelterID).
		Order("created_at desc").
		Find(&persons).Error; err != nil {
		return nil, err
	}
	return persons, nil
}

func (r *PostgresRepository) UpdateHealthStatus(ctx context.Context, id string, status persondomain.HealthStatus) error {
	return r.db.WithContext(ctx).Model(&persondomain.Person{}).Where("id = ?", id).Update("health_status", status).Error
}

func (r *PostgresRepository) UpdatePhoto(ctx context.Context, id string, photoURL string) error {
	return r.db.WithContext(ctx).Model(&persondomain.Person{}).Where("id = ?", id).Update("photo_url", photoURL).Error
}
