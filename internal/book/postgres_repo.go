package book

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

const bookColumns = "id, title, author, isbn, published_year, genre, description, created_at, updated_at"

func scanBook(row pgx.Row) (Book, error) {
	var b Book
	err := row.Scan(
		&b.ID, &b.Title, &b.Author, &b.ISBN, &b.PublishedYear,
		&b.Genre, &b.Description, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

// constraintErr maps a Postgres unique violation to the typed error the
// handlers classify on; any other error passes through untouched.
func constraintErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return &ConstraintViolationError{Field: "isbn"}
	}
	return err
}

func (r *PostgresRepo) List(ctx context.Context) ([]Book, error) {
	query := `
	SELECT ` + bookColumns + `
	FROM books
	ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Book, error) {
	query := `
	SELECT ` + bookColumns + `
	FROM books
	WHERE id = $1
	`
	b, err := scanBook(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

// Create inserts the row, then re-reads it so the caller gets the
// store-generated id and timestamps. The two steps are deliberately
// separate statements; no atomicity across them is assumed.
func (r *PostgresRepo) Create(ctx context.Context, in Input) (Book, error) {
	query := `
	INSERT INTO books (title, author, isbn, published_year, genre, description)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id
	`
	var id int64
	err := r.db.QueryRow(ctx, query,
		in.Title, in.Author, in.ISBN, in.PublishedYear, in.Genre, in.Description,
	).Scan(&id)
	if err != nil {
		return Book{}, constraintErr(err)
	}
	return r.GetByID(ctx, id)
}

func (r *PostgresRepo) Update(ctx context.Context, id int64, in Input) (Book, error) {
	query := `
	UPDATE books
	SET title = $2, author = $3, isbn = $4, published_year = $5,
	    genre = $6, description = $7, updated_at = now()
	WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		id, in.Title, in.Author, in.ISBN, in.PublishedYear, in.Genre, in.Description,
	)
	if err != nil {
		return Book{}, constraintErr(err)
	}
	if tag.RowsAffected() == 0 {
		return Book{}, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// DeleteByID fetches the row before deleting so the caller receives the
// pre-deletion snapshot. Concurrent deletes of the same id may race;
// the store's own isolation decides the outcome.
func (r *PostgresRepo) DeleteByID(ctx context.Context, id int64) (Book, error) {
	b, err := r.GetByID(ctx, id)
	if err != nil {
		return Book{}, err
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id); err != nil {
		return Book{}, err
	}
	return b, nil
}
