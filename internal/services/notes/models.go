package notes

import (
	"time"
)

// Note represents a persisted note
type Note struct {
	ID          string    `bson:"_id,omitempty" json:"id,omitempty" example:"683cdb8aa96ad71e8e075bd1"`
	Description string    `bson:"description" json:"description" validate:"required,notblank" example:"Buy milk"`
	DateTime    time.Time `bson:"dateTime" json:"dateTime" example:"2025-06-01T23:00:26.005Z"`
}

// Clone returns a copy that does not share memory with n.
func (n *Note) Clone() *Note {
	if n == nil {
		return nil
	}
	c := *n
	return &c
}
