package notes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/go-playground/validator/v10"
)

// Service handles notes business logic. Every operation reports its outcome
// as a Result; store errors never escape as Go errors.
type Service struct {
	repo     Repository
	validate *validator.Validate
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new notes service
func NewService(repo Repository, validate *validator.Validate, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		validate: validate,
		log:      log,
		now:      timestamp,
	}
}

// timestamp returns the current UTC time at millisecond precision, the
// finest precision every store keeps. Rounding is upwards so the value never
// predates the moment it was taken.
func timestamp() time.Time {
	return ceilMillis(time.Now().UTC())
}

func ceilMillis(t time.Time) time.Time {
	ms := t.Truncate(time.Millisecond)
	if ms.Before(t) {
		ms = ms.Add(time.Millisecond)
	}
	return ms
}

// List returns every note, most recently inserted first.
func (s *Service) List(ctx context.Context) Result[[]*Note] {
	found, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("failed to list notes", "error", err)
		return Fail[[]*Note](http.StatusInternalServerError, MsgListFailedPrefix+err.Error())
	}

	// the store hands notes back in insertion order
	slices.Reverse(found)
	if found == nil {
		found = []*Note{}
	}

	s.log.Info("retrieved notes", "count", len(found))
	return Succeed(found)
}

// Create validates and stores a new note. The description is stored exactly
// as sent; any client supplied id or timestamp is discarded.
func (s *Service) Create(ctx context.Context, in Note) Result[*Note] {
	note := &Note{
		Description: in.Description,
	}

	if err := s.validate.StructCtx(ctx, note); err != nil {
		s.log.Warn("note validation failed", "error", err)
		return Fail[*Note](http.StatusBadRequest, MsgDescriptionEmpty)
	}

	note.DateTime = s.now()

	saved, err := s.repo.Save(ctx, note)
	if err != nil {
		if errors.Is(err, ErrInvalidArgument) {
			s.log.Warn("note rejected by store", "error", err)
			return Fail[*Note](http.StatusBadRequest, MsgSaveInvalidPrefix+err.Error())
		}
		s.log.Error("failed to create note", "error", err)
		return Fail[*Note](http.StatusInternalServerError, MsgSaveFailedPrefix+err.Error())
	}

	s.log.Info("note created", "note_id", saved.ID)
	return Succeed(saved)
}

// Get looks a note up by id. A missing note is a bad request, not a 404.
func (s *Service) Get(ctx context.Context, id string) Result[*Note] {
	note, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNoteNotFound) {
			s.log.Info("note not found", "note_id", id)
			return Fail[*Note](http.StatusBadRequest, MsgNoteNotFoundPrefix+id)
		}
		s.log.Error("failed to get note", "error", err, "note_id", id)
		return Fail[*Note](http.StatusInternalServerError, MsgGetFailedPrefix+id)
	}

	return Succeed(note)
}

// Update saves the note as given. The store upserts by id, so an unknown id
// creates a new note; dateTime is stored as sent and is not refreshed.
func (s *Service) Update(ctx context.Context, in Note) Result[*Note] {
	note := in

	updated, err := s.repo.Save(ctx, &note)
	if err != nil {
		s.log.Error("failed to update note", "error", err, "note_id", in.ID)
		return Fail[*Note](http.StatusInternalServerError, MsgUpdateFailedPrefix+err.Error())
	}

	s.log.Info("note updated", "note_id", updated.ID)
	return Succeed(updated)
}

// Delete removes a note by id. Deleting an unknown id succeeds.
func (s *Service) Delete(ctx context.Context, id string) Result[string] {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.log.Error("failed to delete note", "error", err, "note_id", id)
		return Fail[string](http.StatusInternalServerError, MsgDeleteFailedPrefix+id)
	}

	s.log.Info("note deleted", "note_id", id)
	return Succeed(fmt.Sprintf(MsgDeletedFormat, id))
}
