package handlers

import (
	"net/http"
	"strconv"

	"github.com/rahulbattula415/NBAShotPrediction/internal/models"
)

// ListPlayers returns the roster with pagination and optional name search
// @Summary List players
// @Tags Players
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page (max 100)"
// @Param search query string false "Search players by name"
// @Success 200 {object} models.PlayersPage
// @Router /players [get]
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	perPage := queryInt(r, "per_page", 50)
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 50
	}

	if search := r.URL.Query().Get("search"); search != "" {
		matches := h.players.SearchPlayers(search)

		start := (page - 1) * perPage
		end := start + perPage
		if start > len(matches) {
			start = len(matches)
		}
		if end > len(matches) {
			end = len(matches)
		}

		h.jsonResponse(w, http.StatusOK, models.PlayersPage{
			Players: matches[start:end],
			Total:   len(matches),
			Page:    page,
			PerPage: perPage,
		})
		return
	}

	h.jsonResponse(w, http.StatusOK, h.players.ListPlayers(page, perPage))
}

func queryInt(r *http.Request, key string, fallback int) int {
	if value := r.URL.Query().Get(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
