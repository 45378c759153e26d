package mongo

import (
	"context"
	"errors"
	"fmt"

	"notes-api/internal/logger"
	"notes-api/internal/services/notes"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// NotesRepo implements notes.Repository on a single MongoDB collection.
// Documents use string _id values so ids stay opaque to clients.
type NotesRepo struct {
	collection *mongo.Collection
}

func repoCtx(parent context.Context) (context.Context, context.CancelFunc) {
	return WithRepoTimeout(parent, OpTimeout)
}

// translateNotFound maps the driver ErrNoDocuments to the domain-level ErrNoteNotFound.
func translateNotFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return notes.ErrNoteNotFound
	}
	return err
}

// NewNotesRepo binds the repository to db.collection. No secondary index is
// created: every lookup goes through _id and listing uses natural order.
func NewNotesRepo(db *mongo.Database, collection string) *NotesRepo {
	return &NotesRepo{collection: db.Collection(collection)}
}

// FindAll returns every note in natural order
func (r *NotesRepo) FindAll(ctx context.Context) ([]*notes.Note, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find notes: %w", err)
	}
	defer func() {
		if cerr := cursor.Close(ctx); cerr != nil {
			logger.L().Warn("failed to close cursor", "error", cerr)
		}
	}()

	out := make([]*notes.Note, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode notes: %w", err)
	}
	return out, nil
}

// FindByID returns the note or notes.ErrNoteNotFound
func (r *NotesRepo) FindByID(ctx context.Context, id string) (*notes.Note, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	var n notes.Note
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&n)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &n, nil
}

// Save upserts the note by id. An empty id gets a fresh ObjectID in hex form.
func (r *NotesRepo) Save(ctx context.Context, n *notes.Note) (*notes.Note, error) {
	if n == nil {
		return nil, notes.ErrInvalidArgument
	}

	ctx, cancel := repoCtx(ctx)
	defer cancel()

	stored := n.Clone()
	if stored.ID == "" {
		stored.ID = bson.NewObjectID().Hex()
	}

	_, err := r.collection.ReplaceOne(ctx,
		bson.M{"_id": stored.ID},
		stored,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save note: %w", err)
	}
	return stored, nil
}

// DeleteByID removes the note; deleting a missing id is not an error
func (r *NotesRepo) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}

// Ping checks the primary is reachable
func (r *NotesRepo) Ping(ctx context.Context) error {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	return r.collection.Database().Client().Ping(ctx, readpref.Primary())
}
