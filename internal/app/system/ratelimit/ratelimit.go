// internal/app/system/ratelimit/ratelimit.go
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dalemusser/guildroster/internal/app/system/httpjson"
	"github.com/puzpuzpuz/xsync/v4"
)

// Limiter counts requests per client in fixed windows. It is safe for
// concurrent use; windows for idle clients are dropped by a background
// sweep.
type Limiter struct {
	windows  *xsync.Map[string, *window]
	limit    int
	duration time.Duration
	done     chan struct{}
}

type window struct {
	mu        sync.Mutex
	count     int
	expiresAt time.Time
}

// New creates a limiter allowing limit requests per duration per client.
func New(limit int, duration time.Duration) *Limiter {
	l := &Limiter{
		windows:  xsync.NewMap[string, *window](),
		limit:    limit,
		duration: duration,
		done:     make(chan struct{}),
	}
	go l.sweep()
	return l
}

// Close stops the background sweep. The limiter keeps counting after Close;
// idle windows are just no longer reclaimed.
func (l *Limiter) Close() {
	close(l.done)
}

// Allow reports whether a request from key fits in the current window.
func (l *Limiter) Allow(key string) bool {
	w, _ := l.windows.LoadOrStore(key, &window{})

	w.mu.Lock()
	defer w.mu.Unlock()
	now := time.Now()
	if now.After(w.expiresAt) {
		w.count = 1
		w.expiresAt = now.Add(l.duration)
		return true
	}
	if w.count >= l.limit {
		return false
	}
	w.count++
	return true
}

func (l *Limiter) sweep() {
	ticker := time.NewTicker(l.duration * 2)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			now := time.Now()
			l.windows.Range(func(key string, w *window) bool {
				w.mu.Lock()
				expired := now.After(w.expiresAt)
				w.mu.Unlock()
				if expired {
					l.windows.Delete(key)
				}
				return true
			})
		}
	}
}

// Middleware rejects requests over the limit with 429, keyed by client IP.
func Middleware(l *Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow(clientIP(r)) {
				httpjson.Error(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP prefers proxy headers over RemoteAddr.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if ip := strings.TrimSpace(strings.SplitN(xff, ",", 2)[0]); ip != "" {
			return ip
		}
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
