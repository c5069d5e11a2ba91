package person

import (
	"context"
	"errors"
	"testing"
)

type fakePersonRepo struct {
	persons map[string]*Person
}

func newFakePersonRepo() *fakePersonRepo {
	return &fakePersonRepo{persons: make(map[string]*Person)}
}

func (r *fakePersonRepo) Create(ctx context.Context, person *Person) error {
	r.persons[person.ID] = person
	return nil
}

func (r *fakePersonRepo) GetByID(ctx context.Context, id string) (*Person, error) {
	person, ok := r.persons[id]
	if !ok {
		return nil, ErrPersonNotFound
	}
	copied := *person
	return &copied, nil
}

func (r *fakePersonRepo) ListByShelter(ctx context.Context, shelterID string) ([]Person, error) {
	var result []Person
	for _, person := range r.persons {
		if person.ShelterID == shelterID {
			result = append(result, *person)
		}
	}
	return result, nil
}

func (r *fakePersonRepo) UpdateHealthStatus(ctx context.Context, id string, status HealthStatus) error {
	person, ok := r.persons[id]
	if !ok {
		return ErrPersonNotFound
	}
	person.HealthStatus = status
	return nil
}

type fakeShelterDirectory struct {
	known map[string]bool
}

func (d *fakeShelterDirectory) Exists(ctx context.Context, shelterID string) (bool, error) {
	return d.known[shelterID], nil
}

const testShelterID = "3f1b0c7a-0000-0000-0000-000000000001"

func newTestService() (*Service, *fakePersonRepo) {
	repo := newFakePersonRepo()
	shelters := &fakeShelterDirectory{known: map[string]bool{testShelterID: true}}
	return NewService(repo, shelters), repo
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		FullName:  "Nimal Perera",
		Age:       34,
		Gender:    GenderMale,
		ShelterID: testShelterID,
	}
}

func TestRegister(t *testing.T) {
	svc, repo := newTestService()

	result, err := svc.Register(context.Background(), validRegisterInput())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if result.ID == "" {
		t.Error("Register() did not assign an id")
	}
	if result.HealthStatus != HealthHealthy {
		t.Errorf("default health status = %q, want %q", result.HealthStatus, HealthHealthy)
	}
	if _, ok := repo.persons[result.ID]; !ok {
		t.Error("Register() did not persist the record")
	}
}

func TestRegisterNormalizesNIC(t *testing.T) {
	svc, _ := newTestService()

	input := validRegisterInput()
	input.NIC = " 123456789v "
	result, err := svc.Register(context.Background(), input)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if result.NIC == nil || *result.NIC != "123456789V" {
		t.Errorf("NIC not normalized, got %v", result.NIC)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestService()

	tests := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{"empty name", func(in *RegisterInput) { in.FullName = "  " }},
		{"age too low", func(in *RegisterInput) { in.Age = -1 }},
		{"age too high", func(in *RegisterInput) { in.Age = 121 }},
		{"bad gender", func(in *RegisterInput) { in.Gender = "N/A" }},
		{"bad health status", func(in *RegisterInput) { in.HealthStatus = "FINE" }},
		{"bad nic", func(in *RegisterInput) { in.NIC = "99" }},
		{"empty shelter", func(in *RegisterInput) { in.ShelterID = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRegisterInput()
			tt.mutate(&input)
			if _, err := svc.Register(context.Background(), input); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Register() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestRegisterUnknownShelter(t *testing.T) {
	svc, _ := newTestService()

	input := validRegisterInput()
	input.ShelterID = "3f1b0c7a-0000-0000-0000-00000000dead"
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, ErrShelterUnknown) {
		t.Errorf("Register() error = %v, want ErrShelterUnknown", err)
	}
}

func TestUpdateHealthStatus(t *testing.T) {
	svc, repo := newTestService()

	result, err := svc.Register(context.Background(), validRegisterInput())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if err := svc.UpdateHealthStatus(context.Background(), result.ID, HealthInjured); err != nil {
		t.Fatalf("UpdateHealthStatus() error = %v", err)
	}
	if repo.persons[result.ID].HealthStatus != HealthInjured {
		t.Errorf("health status not updated")
	}

	if err := svc.UpdateHealthStatus(context.Background(), result.ID, "WORSE"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("UpdateHealthStatus() bad status: error = %v, want ErrInvalidInput", err)
	}
	if err := svc.UpdateHealthStatus(context.Background(), "no-such-id", HealthInjured); !errors.Is(err, ErrPersonNotFound) {
		t.Errorf("UpdateHealthStatus() unknown id: error = %v, want ErrPersonNotFound", err)
	}
}
