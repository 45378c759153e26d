package redis

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"notes-api/internal/logger"
	"notes-api/internal/services/notes"

	"github.com/oklog/ulid/v2"
	"github.com/redis/go-redis/v9"
)

// NotesRepo implements notes.Repository on Redis.
//
// Layout under prefix:
//
//	{prefix}:note:{id}  JSON document
//	{prefix}:index      sorted set of ids scored by first insertion
//	{prefix}:seq        counter feeding the index scores
type NotesRepo struct {
	rdb    redis.UniversalClient
	prefix string
}

// NewNotesRepo creates a repository storing keys under prefix
func NewNotesRepo(rdb redis.UniversalClient, prefix string) *NotesRepo {
	return &NotesRepo{rdb: rdb, prefix: prefix}
}

func (r *NotesRepo) noteKey(id string) string { return r.prefix + ":note:" + id }
func (r *NotesRepo) indexKey() string         { return r.prefix + ":index" }
func (r *NotesRepo) seqKey() string           { return r.prefix + ":seq" }

// FindAll returns every note ordered by first insertion
func (r *NotesRepo) FindAll(ctx context.Context) ([]*notes.Note, error) {
	ids, err := r.rdb.ZRange(ctx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read notes index: %w", err)
	}

	out := make([]*notes.Note, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.noteKey(id)
	}

	vals, err := r.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load notes: %w", err)
	}

	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			// deleted between ZRANGE and MGET
			logger.L().Debug("skipping dangling index entry", "id", ids[i])
			continue
		}
		n, err := decodeNote(s)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// FindByID returns the note or notes.ErrNoteNotFound
func (r *NotesRepo) FindByID(ctx context.Context, id string) (*notes.Note, error) {
	s, err := r.rdb.Get(ctx, r.noteKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, notes.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return decodeNote(s)
}

// Save upserts the note by id, generating a ULID when the id is empty.
// A replaced note keeps its original index position.
func (r *NotesRepo) Save(ctx context.Context, n *notes.Note) (*notes.Note, error) {
	if n == nil {
		return nil, notes.ErrInvalidArgument
	}

	stored := n.Clone()
	if stored.ID == "" {
		stored.ID = ulid.MustNew(ulid.Timestamp(time.Now().UTC()), rand.Reader).String()
	}

	payload, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("failed to encode note: %w", err)
	}

	seq, err := r.rdb.Incr(ctx, r.seqKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate note sequence: %w", err)
	}

	_, err = r.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, r.noteKey(stored.ID), payload, 0)
		p.ZAddNX(ctx, r.indexKey(), redis.Z{Score: float64(seq), Member: stored.ID})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save note: %w", err)
	}
	return stored, nil
}

// DeleteByID removes the note; deleting a missing id is not an error
func (r *NotesRepo) DeleteByID(ctx context.Context, id string) error {
	_, err := r.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Del(ctx, r.noteKey(id))
		p.ZRem(ctx, r.indexKey(), id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}

// Ping checks the server answers
func (r *NotesRepo) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

func decodeNote(s string) (*notes.Note, error) {
	var n notes.Note
	if err := json.Unmarshal([]byte(s), &n); err != nil {
		return nil, fmt.Errorf("failed to decode note: %w", err)
	}
	return &n, nil
}
