package player

import "context"

// ListFilter narrows and pages player listings.
type ListFilter struct {
	Role  *Role
	Skip  int
	Limit int
}

// Repository describes player persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, p Player) error
	GetByID(ctx context.Context, id string) (Player, bool, error)
	List(ctx context.Context, filter ListFilter) ([]Player, error)
	ListAll(ctx context.Context) ([]Player, error)
	Update(ctx context.Context, p Player) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
