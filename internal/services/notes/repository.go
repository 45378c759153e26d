package notes

import (
	"context"
)

// Repository is the document-store contract the service relies on.
//
// FindAll returns notes in the store's natural retrieval order.
// FindByID returns ErrNoteNotFound when the id is absent.
// Save inserts or replaces by id and assigns an id when n.ID is empty.
// DeleteByID is a no-op for a missing id.
type Repository interface {
	FindAll(ctx context.Context) ([]*Note, error)
	FindByID(ctx context.Context, id string) (*Note, error)
	Save(ctx context.Context, n *Note) (*Note, error)
	DeleteByID(ctx context.Context, id string) error
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
