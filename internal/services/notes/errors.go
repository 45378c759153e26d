package notes

import "errors"

// ErrNoteNotFound is returned by repositories when no note has the given id.
var ErrNoteNotFound = errors.New("note not found")

// ErrInvalidArgument is returned by repositories when a note cannot be stored as given.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrCreateNotesRepo is returned when notes repository creation fails.
var ErrCreateNotesRepo = errors.New("failed to create notes repository")

// Error details rendered in ErrorResponse envelopes.
const (
	MsgDescriptionEmpty   = "Validation error: Description is 'Null/Empty'"
	MsgNoteNotFoundPrefix = "No note found for id -> "
	MsgSaveInvalidPrefix  = "Validation error occurred while saving note: "
	MsgSaveFailedPrefix   = "Unexpected error occurred while saving note: "
	MsgGetFailedPrefix    = "Unexpected error occurred while retrieving note with ID: "
	MsgListFailedPrefix   = "Unexpected error occurred while retrieving notes: "
	MsgUpdateFailedPrefix = "Unexpected error occurred while updating note: "
	MsgDeleteFailedPrefix = "Unexpected error occurred while deleting note with ID: "
	MsgDeletedFormat      = "Note with id -> %s successfully deleted."
)
