package handlers

import (
	"net/http"

	"almanack/services/store"
	"almanack/utils"

	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	store *store.Store
}

func NewMovieHandler(s *store.Store) *MovieHandler {
	return &MovieHandler{store: s}
}

// ListMovies returns the catalog filtered by the optional "q" query.
func (h *MovieHandler) ListMovies(c *gin.Context) {
	movies := h.store.FilterMovies(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"movies": movies, "count": len(movies)})
}

func (h *MovieHandler) GetMovie(c *gin.Context) {
	movie, ok := h.store.Movie(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Movie not found", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, movie)
}

// NewDraft returns the default selection form for a movie.
func (h *MovieHandler) NewDraft(c *gin.Context) {
	movie, ok := h.store.Movie(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Movie not found", c.Param("id"))
		return
	}
	draft := h.store.NewDraft(movie)
	c.JSON(http.StatusOK, gin.H{
		"draft":     draft,
		"unitPrice": h.store.UnitPrice(),
	})
}
