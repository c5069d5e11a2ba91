package shelter

import (
	"context"
	"errors"
	"testing"
)

type fakeShelterRepo struct {
	shelters map[string]*Shelter
}

func newFakeShelterRepo() *fakeShelterRepo {
	return &fakeShelterRepo{shelters: make(map[string]*Shelter)}
}

func (r *fakeShelterRepo) Create(ctx context.Context, shelter *Shelter) error {
	r.shelters[shelter.ID] = shelter
	return nil
}

func (r *fakeShelterRepo) GetByID(ctx context.Context, id string) (*Shelter, error) {
	shelter, ok := r.shelters[id]
	if !ok {
		return nil, ErrShelterNotFound
	}
	copied := *shelter
	return &copied, nil
}

func (r *fakeShelterRepo) GetByCode(ctx context.Context, code string) (*Shelter, error) {
	for _, shelter := range r.shelters {
		if shelter.Code == code {
			copied := *shelter
			return &copied, nil
		}
	}
	return nil, ErrShelterNotFound
}

func (r *fakeShelterRepo) List(ctx context.Context) ([]Shelter, error) {
	var result []Shelter
	for _, shelter := range r.shelters {
		result = append(result, *shelter)
	}
	return result, nil
}

func (r *fakeShelterRepo) IsCodeTaken(ctx context.Context, code string) (bool, error) {
	for _, shelter := range r.shelters {
		if shelter.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeShelterRepo) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := r.shelters[id]
	return ok, nil
}

func TestCreateShelter(t *testing.T) {
	svc := NewService(newFakeShelterRepo())

	result, err := svc.Create(context.Background(), CreateInput{
		Name:     "Galle Central College",
		Code:     "gl-001",
		District: DistrictGalle,
		Phone:    "+94912223344",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if result.Code != "GL-001" {
		t.Errorf("code not upper-cased, got %q", result.Code)
	}

	if _, err := svc.Create(context.Background(), CreateInput{
		Name:     "Another Shelter",
		Code:     "GL-001",
		District: DistrictGalle,
	}); !errors.Is(err, ErrShelterCodeTaken) {
		t.Errorf("duplicate code: error = %v, want ErrShelterCodeTaken", err)
	}
}

func TestCreateShelterValidation(t *testing.T) {
	svc := NewService(newFakeShelterRepo())

	tests := []struct {
		name  string
		input CreateInput
	}{
		{"empty name", CreateInput{Code: "GL-001", District: DistrictGalle}},
		{"empty code", CreateInput{Name: "Shelter", District: DistrictGalle}},
		{"bad district", CreateInput{Name: "Shelter", Code: "GL-001", District: "NOWHERE"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), tt.input); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Create() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestGetByCode(t *testing.T) {
	svc := NewService(newFakeShelterRepo())

	created, err := svc.Create(context.Background(), CreateInput{
		Name:     "Galle Central College",
		Code:     "GL-001",
		District: DistrictGalle,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := svc.GetByCode(context.Background(), " gl-001 ")
	if err != nil {
		t.Fatalf("GetByCode() error = %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("GetByCode() returned wrong shelter")
	}

	if _, err := svc.GetByCode(context.Background(), "NO-SUCH"); !errors.Is(err, ErrShelterNotFound) {
		t.Errorf("GetByCode() unknown: error = %v, want ErrShelterNotFound", err)
	}
}
