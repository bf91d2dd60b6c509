package httpapi

import (
	"net/http"

	"github.com/rs/zerolog"

	"jobmatch-engine/internal/config"
	"jobmatch-engine/internal/rank"
)

// WeightsHandler reads and replaces the matcher's weights. With Persist set,
// a new weight set is written to the user config before it takes effect.
type WeightsHandler struct {
	Matcher     *rank.Matcher
	UserCfgPath string
	Persist     bool
	Log         zerolog.Logger
}

func weightsJSON(w rank.Weights) map[string]float64 {
	out := make(map[string]float64, len(w))
	for c, v := range w {
		out[string(c)] = v
	}
	return out
}

func (h WeightsHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, weightsJSON(h.Matcher.Weights()))
}

func (h WeightsHandler) Put(w http.ResponseWriter, r *http.Request) {
	var raw map[string]float64
	if err := decodeBody(r, &raw); err != nil {
		badRequest(w, r, err)
		return
	}
	if len(raw) == 0 {
		WriteError(w, r, http.StatusBadRequest, "validation_error", "validation: weights: at least one criterion is required")
		return
	}

	weights, err := rank.ParseWeights(raw)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	if h.Persist && h.UserCfgPath != "" {
		err := config.Update(h.UserCfgPath, func(c *config.Config) error {
			c.Matching.Weights = weightsJSON(weights)
			return nil
		})
		if err != nil {
			writeErr(w, r, err)
			return
		}
	}

	if err := h.Matcher.ConfigureWeights(weights); err != nil {
		writeErr(w, r, err)
		return
	}
	h.Log.Info().
		Str("request_id", RequestIDFrom(r.Context())).
		Bool("persisted", h.Persist).
		Msg("weights replaced")
	writeJSON(w, weightsJSON(h.Matcher.Weights()))
}
