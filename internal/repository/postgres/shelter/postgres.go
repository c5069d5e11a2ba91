package shelter

import (
	"context"
	"errors"

	shelterdomain "github.com/playershyan/iSafe-sub001/internal/domain/shelter"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, shelter *shelterdomain.Shelter) error {
	return r.db.WithContext(ctx).Create(shelter).Error
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*shelterdomain.Shelter, error) {
	var shelter shelterdomain.Shelter
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&shelter).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shelterdomain.ErrShelterNotFound
		}
		return nil, err
	}
	return &shelter, nil
}

func (r *PostgresRepository) GetByCode(ctx context.Context, code string) (*shelterdomain.Shelter, error) {
	var shelter shelterdomain.Shelter
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&shelter).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shelterdomain.ErrShelterNotFound
		}
		return nil, err
	}
	return &shelter, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]shelterdomain.Shelter, error) {
	var shelters []shelterdomain.Shelter
	if err := r.db.WithContext(ctx).Order("name asc").Find(&shelters).Error; err != nil {
		return nil, err
	}
	return shelters, nil
}

func (r *PostgresRepository) IsCodeTaken(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&shelterdomain.Shelter{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&shelterdomain.Shelter{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
