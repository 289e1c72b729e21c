package ratelimit

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

// Limiter throttles by caller address. Public lead forms are a spam magnet;
// a fixed window per address is enough to blunt scripted submissions.
type Limiter interface {
	Allow(addr string) bool
}

type window struct {
	count int
	start time.Time
}

type FixedWindow struct {
	maxRequests int
	interval    time.Duration
	windows     map[string]*window
	mu          sync.Mutex
}

func New(maxRequests int, interval time.Duration) *FixedWindow {
	return &FixedWindow{
		maxRequests: maxRequests,
		interval:    interval,
		windows:     make(map[string]*window),
	}
}

func (f *FixedWindow) Allow(addr string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := time.Now()
	w := f.windows[addr]

	if w == nil || now.Sub(w.start) > f.interval {
		if f.maxRequests == 0 {
			return false
		}
		f.windows[addr] = &window{count: 1, start: now}
		return true
	}

	if w.count >= f.maxRequests {
		return false
	}
	w.count++

	return true
}

// Middleware rejects over-limit callers with 429 before the handler runs.
// RemoteAddr is used as the key; chi's RealIP middleware rewrites it from
// the proxy headers first.
func Middleware(limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(r.RemoteAddr) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "Too many requests"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
