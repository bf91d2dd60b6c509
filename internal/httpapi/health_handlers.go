package httpapi

import (
	"net/http"

	"jobmatch-engine/internal/catalog"
)

type HealthHandler struct {
	Catalog *catalog.Catalog
}

func (h HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"ok":   true,
		"jobs": h.Catalog.Len(),
	})
}
