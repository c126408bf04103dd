package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fjod/go_bookstore/internal/catalog"
	"github.com/fjod/go_bookstore/internal/domain"
)

type BookHandler struct {
	catalog catalog.Store
}

func NewBookHandler(c catalog.Store) *BookHandler {
	return &BookHandler{catalog: c}
}

type BookRequestDTO struct {
	Title           string  `json:"title"`
	AuthorID        int64   `json:"author_id"`
	ISBN            string  `json:"isbn"`
	PublicationYear int     `json:"publication_year"`
	Price           float64 `json:"price"`
	Stock           int     `json:"stock"`
}

func (dto BookRequestDTO) toBook() domain.Book {
	return domain.Book{
		Title:           dto.Title,
		AuthorID:        dto.AuthorID,
		ISBN:            dto.ISBN,
		PublicationYear: dto.PublicationYear,
		Price:           dto.Price,
		Stock:           dto.Stock,
	}
}

func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req BookRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Title == "" {
		respondError(w, http.StatusBadRequest, "invalid_title", "title must not be empty")
		return
	}

	book, err := h.catalog.CreateBook(req.toBook())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, book)
}

func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "bookId")
	if !ok {
		return
	}

	book, err := h.catalog.GetBook(id)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, book)
}

func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.ListBooks())
}

func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "bookId")
	if !ok {
		return
	}

	var req BookRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Title == "" {
		respondError(w, http.StatusBadRequest, "invalid_title", "title must not be empty")
		return
	}

	book, err := h.catalog.UpdateBook(id, req.toBook())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, book)
}

func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "bookId")
	if !ok {
		return
	}

	if err := h.catalog.DeleteBook(id); err != nil {
		handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// pathID parses a positive integer URL parameter, responding with 400 on
// anything else
func pathID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_id", param+" must be a positive integer")
		return 0, false
	}
	return id, true
}
