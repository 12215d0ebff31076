package book

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when no book matches the requested id.
var ErrNotFound = errors.New("book not found")

// ConstraintViolationError reports a store-level unique constraint
// violation, carrying the field the constraint guards.
type ConstraintViolationError struct {
	Field string
}

func (e *ConstraintViolationError) Error() string {
	return fmt.Sprintf("unique constraint violated on %s", e.Field)
}

// Book represents a book record.
type Book struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	ISBN          *string   `json:"isbn"`
	PublishedYear *int      `json:"published_year"`
	Genre         *string   `json:"genre"`
	Description   *string   `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Input carries the six business fields accepted on create and update.
// Optional fields stay nil and are stored as NULL.
type Input struct {
	Title         string
	Author        string
	ISBN          *string
	PublishedYear *int
	Genre         *string
	Description   *string
}
