package httpapi

import (
	"github.com/rs/zerolog"

	"jobmatch-engine/internal/catalog"
	"jobmatch-engine/internal/rank"
)

type Deps struct {
	Catalog *catalog.Catalog
	Matcher *rank.Matcher

	Log zerolog.Logger

	// Limiter is optional; nil disables request limiting.
	Limiter *ClientLimiter

	// Weight persistence
	UserCfgPath    string
	PersistWeights bool
}
