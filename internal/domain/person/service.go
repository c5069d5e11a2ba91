package person

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type RegisterInput struct {
	FullName     string
	Age          int
	Gender       Gender
	NIC          string
	PhotoURL     string
	HealthStatus HealthStatus
	ShelterID    string
}

type Service struct {
	repo     Repository
	shelters ShelterDirectory
}

func NewService(repo Repository, shelters ShelterDirectory) *Service {
	return &Service{repo: repo, shelters: shelters}
}

func (s *Service) Register(ctx context.Context, input RegisterInput) (*Person, error) {
	input.FullName = strings.TrimSpace(input.FullName)
	if input.FullName == "" {
		return nil, fmt.Errorf("%w: full name is required", ErrInvalidInput)
	}
	if input.Age < MinAge || input.Age > MaxAge {
		return nil, fmt.Errorf("%w: age must be between %d and %d", ErrInvalidInput, MinAge, MaxAge)
	}
	if !ValidGender(input.Gender) {
		return nil, fmt.Errorf("%w: unknown gender %q", ErrInvalidInput, input.Gender)
	}
	if input.HealthStatus == "" {
		input.HealthStatus = HealthHealthy
	}
	if !ValidHealthStatus(input.HealthStatus) {
		return nil, fmt.Errorf("%w: unknown health status %q", ErrInvalidInput, input.HealthStatus)
	}

	var nic *string
	if strings.TrimSpace(input.NIC) != "" {
		normalized := NormalizeNIC(input.NIC)
		if !ValidNIC(normalized) {
			return nil, fmt.Errorf("%w: NIC %q is not in canonical form", ErrInvalidInput, input.NIC)
		}
		nic = &normalized
	}

	if strings.TrimSpace(input.ShelterID) == "" {
		return nil, fmt.Errorf("%w: shelter id is required", ErrInvalidInput)
	}
	exists, err := s.shelters.Exists(ctx, input.ShelterID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrShelterUnknown
	}

	record := Person{
		ID:           uuid.NewString(),
		FullName:     input.FullName,
		Age:          input.Age,
		Gender:       input.Gender,
		NIC:          nic,
		HealthStatus: input.HealthStatus,
		ShelterID:    input.ShelterID,
	}
	if photo := strings.TrimSpace(input.PhotoURL); photo != "" {
		record.PhotoURL = &photo
	}

	if err := s.repo.Create(ctx, &record); err != nil {
		return nil, err
	}

	return &record, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Person, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: person id is required", ErrInvalidInput)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByShelter(ctx context.Context, shelterID string) ([]Person, error) {
	if strings.TrimSpace(shelterID) == "" {
		return nil, fmt.Errorf("%w: shelter id is required", ErrInvalidInput)
	}
	return s.repo.ListByShelter(ctx, shelterID)
}

func (s *Service) UpdateHealthStatus(ctx context.Context, id string, status HealthStatus) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: person id is required", ErrInvalidInput)
	}
	if !ValidHealthStatus(status) {
		return fmt.Errorf("%w: unknown health status %q", ErrInvalidInput, status)
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.UpdateHealthStatus(ctx, id, status)
}
