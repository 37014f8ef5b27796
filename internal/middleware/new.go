package middleware

import (
	pkgLog "dayflow/pkg/log"
)

// Middleware bundles the cross-cutting gin middleware used by every route
// group: request IDs, owner scoping, and rate limiting.
type Middleware struct {
	l          pkgLog.Logger
	ratePerMin int
	rateBurst  int
}

// Config holds middleware tuning knobs.
type Config struct {
	RatePerMin int // sustained requests per minute per client, 0 disables limiting
	RateBurst  int // burst allowance, defaults to RatePerMin when 0
}

func New(l pkgLog.Logger, cfg Config) Middleware {
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = cfg.RatePerMin
	}
	return Middleware{
		l:          l,
		ratePerMin: cfg.RatePerMin,
		rateBurst:  burst,
	}
}
