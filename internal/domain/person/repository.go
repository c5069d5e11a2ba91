package person

import "context"

type Repository interface {
	Create(ctx context.Context, person *Person) error
	GetByID(ctx context.Context, id string) (*Person, error)
	ListByShelter(ctx context.Context, shelterID string) ([]Person, error)
	UpdateHealthStatus(ctx context.Context, id string, status HealthStatus) error
}

// ShelterDirectory is the slice of the shelter domain the registration flow
// needs: only an existence probe for the foreign key.
type ShelterDirectory interface {
	Exists(ctx context.Context, shelterID string) (bool, error)
}
