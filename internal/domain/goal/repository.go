package goal

import "context"

// ListFilter narrows goal listings.
type ListFilter struct {
	MatchID  *int64
	PlayerID *string
	Skip     int
	Limit    int
}

// Repository describes goal persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, g Goal) (Goal, error)
	GetByID(ctx context.Context, id int64) (Goal, bool, error)
	List(ctx context.Context, filter ListFilter) ([]Goal, error)
	ListByMatch(ctx context.Context, matchID int64) ([]Goal, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
