package shelter

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type CreateInput struct {
	Name     string
	Code     string
	District District
	Phone    string
	Address  string
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*Shelter, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	input.Code = strings.ToUpper(strings.TrimSpace(input.Code))
	if input.Code == "" {
		return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}
	if !ValidDistrict(input.District) {
		return nil, fmt.Errorf("%w: unknown district %q", ErrInvalidInput, input.District)
	}

	taken, err := s.repo.IsCodeTaken(ctx, input.Code)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrShelterCodeTaken
	}

	record := Shelter{
		ID:       uuid.NewString(),
		Name:     input.Name,
		Code:     input.Code,
		District: input.District,
		Phone:    strings.TrimSpace(input.Phone),
		Address:  strings.TrimSpace(input.Address),
	}
	if err := s.repo.Create(ctx, &record); err != nil {
		return nil, err
	}

	return &record, nil
}

func (s *Service) GetByCode(ctx context.Context, code string) (*Shelter, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}
	return s.repo.GetByCode(ctx, code)
}

func (s *Service) List(ctx context.Context) ([]Shelter, error) {
	return s.repo.List(ctx)
}
