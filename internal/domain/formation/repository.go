package formation

import "context"

// ListFilter narrows formation listings.
type ListFilter struct {
	MatchID  *int64
	PlayerID *string
	Skip     int
	Limit    int
}

// Repository describes lineup persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, e Entry) (Entry, error)
	GetByID(ctx context.Context, id int64) (Entry, bool, error)
	List(ctx context.Context, filter ListFilter) ([]Entry, error)
	ListByMatch(ctx context.Context, matchID int64) ([]Entry, error)
	// ReplaceByMatch swaps the whole lineup of a match atomically:
	// either all entries are stored or none are.
	ReplaceByMatch(ctx context.Context, matchID int64, entries []Entry) ([]Entry, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
