package auth

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long a key must go without attempts before it is forgotten.
const limiterIdleTTL = 10 * time.Minute

type loginEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LoginLimiter throttles login attempts per key.
type LoginLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*loginEntry
	perMin    int
	now       func() time.Time
	lastSweep time.Time
}

func NewLoginLimiter(perMinute int) *LoginLimiter {
	if perMinute <= 0 {
		perMinute = 10
	}
	return &LoginLimiter{
		limiters: make(map[string]*loginEntry),
		perMin:   perMinute,
		now:      time.Now,
	}
}

func (l *LoginLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	entry, ok := l.limiters[key]
	if !ok {
		entry = &loginEntry{
			limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.perMin)), l.perMin),
		}
		l.limiters[key] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

// sweep drops keys idle for longer than limiterIdleTTL. A key that keeps
// trying is never dropped, so it cannot earn a fresh burst.
func (l *LoginLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < time.Minute {
		return
	}
	l.lastSweep = now
	for key, entry := range l.limiters {
		if now.Sub(entry.lastSeen) > limiterIdleTTL {
			delete(l.limiters, key)
		}
	}
}
