package shelter

import "context"

type Repository interface {
	Create(ctx context.Context, shelter *Shelter) error
	GetByID(ctx context.Context, id string) (*Shelter, error)
	GetByCode(ctx context.Context, code string) (*Shelter, error)
	List(ctx context.Context) ([]Shelter, error)
	IsCodeTaken(ctx context.Context, code string) (bool, error)
	Exists(ctx context.Context, id string) (bool, error)
}
