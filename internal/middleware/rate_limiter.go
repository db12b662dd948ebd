package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ipEntry tracks attempts per IP within a fixed window.
type ipEntry struct {
	count     int
	windowEnd time.Time
}

// limitador is a per-IP fixed-window counter. Each middleware built by
// LoginRateLimiter or RateLimiter owns one.
type limitador struct {
	mu      sync.Mutex
	entries map[string]*ipEntry
	limit   int
	window  time.Duration
	now     func() time.Time
}

func newLimitador(limit int, window time.Duration) *limitador {
	return &limitador{entries: make(map[string]*ipEntry), limit: limit, window: window, now: time.Now}
}

// permitir counts one attempt for ip and reports whether it is within the
// limit, plus the end of the current window.
func (l *limitador) permitir(ip string) (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry, ok := l.entries[ip]
	if !ok || now.After(entry.windowEnd) {
		entry = &ipEntry{windowEnd: now.Add(l.window)}
		l.entries[ip] = entry
	}
	entry.count++
	return entry.count <= l.limit, entry.windowEnd
}

// purgar removes expired windows and returns how many were dropped.
func (l *limitador) purgar() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	n := 0
	for ip, e := range l.entries {
		if now.After(e.windowEnd) {
			delete(l.entries, ip)
			n++
		}
	}
	return n
}

const purgeInterval = 5 * time.Minute

// purgarPeriodicamente drops expired windows every interval until ctx is done.
func (l *limitador) purgarPeriodicamente(ctx context.Context, nombre string, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := l.purgar(); n > 0 {
				log.Debug().Str("limiter", nombre).Int("purged", n).Msg("rate limiter map purged")
			}
		}
	}
}

// LoginRateLimiter limits login attempts to limit per minute per IP. Rejected
// attempts get a 429 page. The purge goroutine stops with ctx.
func LoginRateLimiter(ctx context.Context, limit int) gin.HandlerFunc {
	l := newLimitador(limit, time.Minute)
	go l.purgarPeriodicamente(ctx, "login", purgeInterval)
	return func(c *gin.Context) {
		if ok, _ := l.permitir(c.ClientIP()); !ok {
			log.Warn().
				Str("request_id", c.GetString(RequestIDKey)).
				Str("ip", c.ClientIP()).
				Msg("login rate limit exceeded")
			c.HTML(http.StatusTooManyRequests, "error", gin.H{
				"Titulo":  "Demasiados intentos",
				"Mensaje": "Demasiados intentos de inicio de sesión. Intenta de nuevo en 1 minuto.",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RateLimiter is a general-purpose per-IP limiter for every route.
func RateLimiter(ctx context.Context, limit int, window time.Duration) gin.HandlerFunc {
	l := newLimitador(limit, window)
	go l.purgarPeriodicamente(ctx, "global", purgeInterval)
	return func(c *gin.Context) {
		ok, windowEnd := l.permitir(c.ClientIP())
		if !ok {
			c.Header("Retry-After", windowEnd.UTC().Format(http.TimeFormat))
			c.HTML(http.StatusTooManyRequests, "error", gin.H{
				"Titulo":  "Demasiadas solicitudes",
				"Mensaje": "Demasiadas solicitudes. Intenta nuevamente en un momento.",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
