package httpapi

import (
	"net/http"
	"strings"

	"jobmatch-engine/internal/catalog"
)

type FiltersHandler struct {
	Catalog *catalog.Catalog
}

// Get returns the distinct values of one field (?field=industry) or of every
// filterable field.
func (h FiltersHandler) Get(w http.ResponseWriter, r *http.Request) {
	if field := strings.TrimSpace(r.URL.Query().Get("field")); field != "" {
		vals, err := h.Catalog.UniqueValues(field)
		if err != nil {
			writeErr(w, r, err)
			return
		}
		writeJSON(w, map[string]any{"field": field, "values": vals})
		return
	}

	out := make(map[string][]string, len(catalog.Fields))
	for _, f := range catalog.Fields {
		vals, err := h.Catalog.UniqueValues(f)
		if err != nil {
			writeErr(w, r, err)
			return
		}
		out[f] = vals
	}
	writeJSON(w, out)
}
