package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"bookcrud/internal/book"
)

type BookHandler struct {
	repo book.Repository
}

func NewBookHandler(repo book.Repository) *BookHandler {
	return &BookHandler{repo: repo}
}

type bookReq struct {
	Title         string  `json:"title" validate:"required,notblank"`
	Author        string  `json:"author" validate:"required,notblank"`
	ISBN          *string `json:"isbn"`
	PublishedYear *int    `json:"published_year"`
	Genre         *string `json:"genre"`
	Description   *string `json:"description"`
}

func (req bookReq) toInput() book.Input {
	return book.Input{
		Title:         strings.TrimSpace(req.Title),
		Author:        strings.TrimSpace(req.Author),
		ISBN:          req.ISBN,
		PublishedYear: req.PublishedYear,
		Genre:         req.Genre,
		Description:   req.Description,
	}
}

// decodeBookReq parses and validates the request body. It returns false
// after writing the error response, so callers can bail with a bare
// return; the store is never touched on a validation failure.
func decodeBookReq(w http.ResponseWriter, r *http.Request) (bookReq, bool) {
	var req bookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid request body")
		return bookReq{}, false
	}
	if len(ValidateStruct(req)) > 0 {
		JSONError(w, http.StatusBadRequest, "Title and author are required")
		return bookReq{}, false
	}
	return req, true
}

// parseID reads the {id} path value. A non-numeric id cannot match any
// row, so it reports not-found rather than a server error.
func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		JSONError(w, http.StatusNotFound, "Book not found")
		return 0, false
	}
	return id, true
}

// writeRepoError translates data-access failures: typed constraint
// violations become a 400 conflict, missing rows a 404, everything else
// a 500 with the raw error text attached.
func writeRepoError(w http.ResponseWriter, err error) {
	var cv *book.ConstraintViolationError
	switch {
	case errors.As(err, &cv):
		JSONError(w, http.StatusBadRequest, "ISBN already exists")
	case errors.Is(err, book.ErrNotFound):
		JSONError(w, http.StatusNotFound, "Book not found")
	default:
		JSONErrorDetail(w, http.StatusInternalServerError, "Internal server error", err)
	}
}

// @Summary List books
// @Description Get all books, newest first
// @Tags books
// @Produce json
// @Success 200 {object} Response
// @Router /api/books [get]
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.repo.List(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	JSONList(w, books, len(books))
}

// @Summary Get book by id
// @Tags books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/books/{id} [get]
func (h *BookHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	b, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	JSONSuccess(w, "", b)
}

// @Summary Create book
// @Tags books
// @Accept json
// @Produce json
// @Param book body bookReq true "Book fields"
// @Success 201 {object} Response
// @Failure 400 {object} Response
// @Router /api/books [post]
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeBookReq(w, r)
	if !ok {
		return
	}
	b, err := h.repo.Create(r.Context(), req.toInput())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	JSONSuccessCreated(w, "Book created successfully", b)
}

// @Summary Update book
// @Tags books
// @Accept json
// @Produce json
// @Param id path int true "Book ID"
// @Param book body bookReq true "Book fields"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/books/{id} [put]
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	req, ok := decodeBookReq(w, r)
	if !ok {
		return
	}
	b, err := h.repo.Update(r.Context(), id, req.toInput())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	JSONSuccess(w, "Book updated successfully", b)
}

// @Summary Delete book
// @Tags books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/books/{id} [delete]
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	b, err := h.repo.DeleteByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	JSONSuccess(w, "Book deleted successfully", map[string]any{
		"deletedBook": b,
	})
}
