package feedback

import "context"

// Repo persists feedback entries. List returns entries newest first along
// with the total count.
type Repo interface {
	Create(ctx context.Context, entry Entry) error
	List(ctx context.Context, offset, limit int) ([]Entry, int, error)
}
