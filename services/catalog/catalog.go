// Package catalog holds the static list of bookable movies.
package catalog

import (
	"iter"
	"strings"

	"almanack/models"
)

// Catalog is an immutable, ordered list of movies.
type Catalog struct {
	movies []models.Movie
	byID   map[string]int
}

// New returns a catalog over movies in the given order. The slice is copied.
func New(movies ...models.Movie) *Catalog {
	c := &Catalog{
		movies: append([]models.Movie(nil), movies...),
		byID:   make(map[string]int, len(movies)),
	}
	for i, m := range c.movies {
		c.byID[m.ID] = i
	}
	return c
}

// Default returns the compiled-in reference catalog.
func Default() *Catalog {
	return New(defaultMovies...)
}

// List yields every movie in catalog order. The sequence can be ranged over
// any number of times.
func (c *Catalog) List() iter.Seq[models.Movie] {
	return func(yield func(models.Movie) bool) {
		for _, m := range c.movies {
			if !yield(m) {
				return
			}
		}
	}
}

// Filter returns the movies whose name contains query, ignoring case, in
// catalog order. An empty query matches everything.
func (c *Catalog) Filter(query string) []models.Movie {
	q := strings.ToLower(query)
	out := make([]models.Movie, 0, len(c.movies))
	for m := range c.List() {
		if strings.Contains(strings.ToLower(m.Name), q) {
			out = append(out, m)
		}
	}
	return out
}

// Get looks a movie up by id.
func (c *Catalog) Get(id string) (models.Movie, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Movie{}, false
	}
	return c.movies[i], true
}

func (c *Catalog) Len() int { return len(c.movies) }
