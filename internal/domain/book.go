package domain

type Book struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	AuthorID        int64   `json:"author_id"`
	ISBN            string  `json:"isbn"`
	PublicationYear int     `json:"publication_year"`
	Price           float64 `json:"price"`
	Stock           int     `json:"stock"`
}

type Author struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Biography string `json:"biography,omitempty"`
}
