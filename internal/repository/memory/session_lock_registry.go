package memory

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// SessionLockRegistry hands out one mutex per chat session so each
// turn runs read-transition-write without interleaving with a
// concurrent turn on the same session. Idle locks are evicted after
// the expiration window.
type SessionLockRegistry interface {
	Acquire(sessionToken string) *sync.Mutex
}

type SessionLockRegistryImpl struct {
	mu    sync.Mutex
	locks *gocache.Cache
}

func NewSessionLockRegistry() SessionLockRegistry {
	return &SessionLockRegistryImpl{
		locks: gocache.New(30*time.Minute, 10*time.Minute),
	}
}

func (r *SessionLockRegistryImpl) Acquire(sessionToken string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, found := r.locks.Get(sessionToken); found {
		// Touch the entry so an active session is never evicted mid-turn.
		r.locks.SetDefault(sessionToken, cached)
		return cached.(*sync.Mutex)
	}

	lock := &sync.Mutex{}
	r.locks.SetDefault(sessionToken, lock)
	return lock
}
