package memory

import (
	"context"
	"crypto/rand"
	"sync"
	"time"

	"notes-api/internal/services/notes"

	"github.com/oklog/ulid/v2"
)

// NotesRepo is a process-local notes.Repository. Natural order is first
// insertion order; replacing an existing note keeps its position.
type NotesRepo struct {
	mu    sync.RWMutex
	byID  map[string]*notes.Note
	order []string
}

// NewNotesRepo creates an empty in-memory repository
func NewNotesRepo() *NotesRepo {
	return &NotesRepo{
		byID: make(map[string]*notes.Note),
	}
}

// FindAll returns copies of every note in insertion order
func (r *NotesRepo) FindAll(ctx context.Context) ([]*notes.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*notes.Note, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out, nil
}

// FindByID returns a copy of the note or notes.ErrNoteNotFound
func (r *NotesRepo) FindByID(ctx context.Context, id string) (*notes.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.byID[id]
	if !ok {
		return nil, notes.ErrNoteNotFound
	}
	return n.Clone(), nil
}

// Save upserts n by id, generating a ULID when the id is empty
func (r *NotesRepo) Save(ctx context.Context, n *notes.Note) (*notes.Note, error) {
	if n == nil {
		return nil, notes.ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stored := n.Clone()
	if stored.ID == "" {
		stored.ID = ulid.MustNew(ulid.Timestamp(time.Now().UTC()), rand.Reader).String()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[stored.ID]; !exists {
		r.order = append(r.order, stored.ID)
	}
	r.byID[stored.ID] = stored

	return stored.Clone(), nil
}

// DeleteByID removes the note; unknown ids are ignored
func (r *NotesRepo) DeleteByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return nil
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Ping always succeeds
func (r *NotesRepo) Ping(context.Context) error {
	return nil
}
