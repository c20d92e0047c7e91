package models

// Movie is a catalog entry. Identity is ID.
type Movie struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Year  int    `json:"year"`
	Image string `json:"image"` // Opaque asset reference
}
