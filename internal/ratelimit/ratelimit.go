package ratelimit

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

type Options struct {
	PerMinute int
	Burst     int
	// IdleTTL drops a key's limiter after this long without requests.
	IdleTTL time.Duration
}

// Registry hands out one token bucket per key, such as a chat ID or client IP.
type Registry struct {
	mu       sync.Mutex
	limiters *cache.Cache
	limit    rate.Limit
	burst    int
	idleTTL  time.Duration
}

func New(opts Options) *Registry {
	perMinute := opts.PerMinute
	if perMinute <= 0 {
		perMinute = 30
	}
	burst := opts.Burst
	if burst <= 0 {
		burst = 1
	}
	idle := opts.IdleTTL
	if idle <= 0 {
		idle = 10 * time.Minute
	}

	return &Registry{
		limiters: cache.New(idle, idle),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
		idleTTL:  idle,
	}
}

// Allow reports whether key may proceed now, consuming a token if so.
func (r *Registry) Allow(key string) bool {
	return r.limiter(key).Allow()
}

func (r *Registry) limiter(key string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.limiters.Get(key); ok {
		l := v.(*rate.Limiter)
		r.limiters.Set(key, l, r.idleTTL)
		return l
	}
	l := rate.NewLimiter(r.limit, r.burst)
	r.limiters.Set(key, l, r.idleTTL)
	return l
}
