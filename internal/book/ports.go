package book

import "context"

// Repository describes the persistence operations the handlers depend on.
//
//go:generate mockgen -source=ports.go -destination=mocks/mock_repository.go -package=mocks
type Repository interface {
	// List returns every book, newest first by creation time.
	List(ctx context.Context) ([]Book, error)
	// GetByID returns the matching book or ErrNotFound.
	GetByID(ctx context.Context, id int64) (Book, error)
	// Create inserts a new book and returns the stored row, including
	// the generated id and timestamps. A duplicate isbn yields a
	// *ConstraintViolationError.
	Create(ctx context.Context, in Input) (Book, error)
	// Update overwrites all business fields of the book with the given
	// id and refreshes updated_at. Returns ErrNotFound if no row
	// matched, or *ConstraintViolationError on a duplicate isbn.
	Update(ctx context.Context, id int64, in Input) (Book, error)
	// DeleteByID removes the book and returns its pre-deletion
	// snapshot, or ErrNotFound.
	DeleteByID(ctx context.Context, id int64) (Book, error)
}
