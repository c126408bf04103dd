package http

import (
	"encoding/json"
	"net/http"

	"github.com/fjod/go_bookstore/internal/catalog"
	"github.com/fjod/go_bookstore/internal/domain"
)

type AuthorHandler struct {
	catalog catalog.Store
}

func NewAuthorHandler(c catalog.Store) *AuthorHandler {
	return &AuthorHandler{catalog: c}
}

type AuthorRequestDTO struct {
	Name      string `json:"name"`
	Biography string `json:"biography"`
}

func (h *AuthorHandler) CreateAuthor(w http.ResponseWriter, r *http.Request) {
	var req AuthorRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "invalid_name", "name must not be empty")
		return
	}

	author, err := h.catalog.CreateAuthor(domain.Author{Name: req.Name, Biography: req.Biography})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, author)
}

func (h *AuthorHandler) GetAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "authorId")
	if !ok {
		return
	}

	author, err := h.catalog.GetAuthor(id)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, author)
}

func (h *AuthorHandler) ListAuthors(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.ListAuthors())
}

func (h *AuthorHandler) UpdateAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "authorId")
	if !ok {
		return
	}

	var req AuthorRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "invalid_name", "name must not be empty")
		return
	}

	author, err := h.catalog.UpdateAuthor(id, domain.Author{Name: req.Name, Biography: req.Biography})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, author)
}

func (h *AuthorHandler) DeleteAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "authorId")
	if !ok {
		return
	}

	if err := h.catalog.DeleteAuthor(id); err != nil {
		handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /api/v1/authors/{authorId}/books
func (h *AuthorHandler) ListAuthorBooks(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "authorId")
	if !ok {
		return
	}

	if _, err := h.catalog.GetAuthor(id); err != nil {
		handleDomainError(w, err)
		return
	}
	books := h.catalog.BooksByAuthor(id)
	if books == nil {
		books = []domain.Book{}
	}
	respondJSON(w, http.StatusOK, books)
}
