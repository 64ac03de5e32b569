package limiter

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type visitors struct {
	mu    sync.Mutex
	items map[string]*visitor
	rps   rate.Limit
	burst int
	ttl   time.Duration
}

func newVisitors(rps int, burst int, ttl time.Duration) *visitors {
	return &visitors{
		items: make(map[string]*visitor),
		rps:   rate.Limit(rps),
		burst: burst,
		ttl:   ttl,
	}
}

func (v *visitors) get(ip string) *rate.Limiter {
	v.mu.Lock()
	defer v.mu.Unlock()

	now := time.Now()
	if item, ok := v.items[ip]; ok {
		item.lastSeen = now
		return item.limiter
	}

	l := rate.NewLimiter(v.rps, v.burst)
	v.items[ip] = &visitor{limiter: l, lastSeen: now}
	return l
}

// cleanup drops visitors idle for longer than ttl.
func (v *visitors) cleanup(now time.Time) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for ip, item := range v.items {
		if now.Sub(item.lastSeen) > v.ttl {
			delete(v.items, ip)
		}
	}
}

func (v *visitors) cleanupLoop() {
	ticker := time.NewTicker(v.ttl)
	defer ticker.Stop()

	for now := range ticker.C {
		v.cleanup(now)
	}
}

// Limit is a per client IP token bucket: rps requests per second with bursts up to burst.
func Limit(rps int, burst int, ttl time.Duration) gin.HandlerFunc {
	v := newVisitors(rps, burst, ttl)
	go v.cleanupLoop()

	return func(c *gin.Context) {
		if !v.get(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
