package match

import "context"

// ListFilter pages match listings, most recent first.
type ListFilter struct {
	Skip  int
	Limit int
}

// Repository describes match persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, m Match) (Match, error)
	GetByID(ctx context.Context, id int64) (Match, bool, error)
	List(ctx context.Context, filter ListFilter) ([]Match, error)
	Update(ctx context.Context, m Match) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
