package handlers

import (
	"net/http"

	"headshotai/internal/styles"
)

type styleItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Styles handles GET /api/styles, mirroring the static style catalog.
func (a *App) Styles(w http.ResponseWriter, r *http.Request) {
	defs := styles.All()
	items := make([]styleItem, len(defs))
	for i, def := range defs {
		items[i] = styleItem{ID: def.Key, Name: def.Name, Description: def.Description}
	}
	a.json(w, http.StatusOK, map[string][]styleItem{"styles": items})
}
