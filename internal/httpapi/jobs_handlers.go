package httpapi

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"jobmatch-engine/internal/catalog"
	"jobmatch-engine/internal/domain"
)

type JobsHandler struct {
	Catalog *catalog.Catalog
	Log     zerolog.Logger
}

func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.Catalog.Jobs(r.Context())
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, jobs)
}

func (h JobsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var j domain.Job
	if err := decodeBody(r, &j); err != nil {
		badRequest(w, r, err)
		return
	}
	if err := h.Catalog.Add(j); err != nil {
		writeErr(w, r, err)
		return
	}
	h.Log.Info().
		Str("request_id", RequestIDFrom(r.Context())).
		Str("job_id", j.ID).
		Int("catalog_size", h.Catalog.Len()).
		Msg("job added")

	saved, err := h.Catalog.Get(j.ID)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, saved)
}

func (h JobsHandler) GetByPath(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimPrefix(r.URL.Path, "/jobs/")
	id, err := url.PathUnescape(raw)
	if err != nil || strings.TrimSpace(id) == "" || strings.Contains(id, "/") {
		WriteError(w, r, http.StatusNotFound, "not_found", "unknown job path")
		return
	}

	j, err := h.Catalog.Get(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteError(w, r, http.StatusNotFound, "not_found", "job "+id+" not found")
			return
		}
		writeErr(w, r, err)
		return
	}
	writeJSON(w, j)
}
