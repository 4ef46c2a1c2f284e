package middleware

import (
	"cie-dashboard/pkg/log"
)

// Middleware bundles the gin handlers shared by every route group.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the middleware set. requestsPerMin <= 0 disables rate limiting.
func New(l log.Logger, requestsPerMin int) Middleware {
	m := Middleware{l: l}
	if requestsPerMin > 0 {
		m.limiter = newRateLimiter(requestsPerMin)
	}
	return m
}
