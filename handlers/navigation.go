package handlers

import (
	"net/http"

	"almanack/services/navigation"
	"almanack/services/store"
	"almanack/utils"

	"github.com/gin-gonic/gin"
)

type NavigationHandler struct {
	store *store.Store
}

func NewNavigationHandler(s *store.Store) *NavigationHandler {
	return &NavigationHandler{store: s}
}

// EnterScreen is consulted by the screen router before rendering a path.
// movieId carries the selection payload and is only honoured for catalog
// movies.
func (h *NavigationHandler) EnterScreen(c *gin.Context) {
	var input struct {
		Path    string `json:"path" binding:"required"`
		MovieID string `json:"movieId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	req := navigation.Request{Screen: navigation.ParseScreen(input.Path)}
	if input.MovieID != "" {
		if movie, ok := h.store.Movie(input.MovieID); ok {
			req.Movie = &movie
		}
	}

	decision, final := h.store.Route(req)
	finalPath := final.Screen.Path()
	if final.Screen == navigation.Selection {
		finalPath += "/" + req.Movie.ID
	}
	c.JSON(http.StatusOK, gin.H{
		"decision":  decision,
		"final":     final,
		"finalPath": finalPath,
	})
}
