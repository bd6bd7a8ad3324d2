package middleware

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

// SerializeSession lets at most one request per session id run at a time; later
// requests wait for the earlier one to finish. Waiting ends early if the client goes away.
// Must run after Session.
func (m Middleware) SerializeSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString(SessionIDKey)
		if sessionID == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		release, err := m.locks.acquire(ctx, sessionID)
		if err != nil {
			m.l.Warnf(ctx, "middleware.SerializeSession: session %s: %v", sessionID, err)
			c.AbortWithStatus(http.StatusRequestTimeout)
			return
		}
		defer release()

		c.Next()
	}
}

// sessionLocks hands out one lock per session id. An entry lives only while some
// request holds or waits on it, so a held lock is never dropped.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	ch   chan struct{}
	refs int
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[string]*sessionLock)}
}

// acquire blocks until the session's lock is free or ctx is done.
func (s *sessionLocks) acquire(ctx context.Context, key string) (func(), error) {
	s.mu.Lock()
	lock, ok := s.locks[key]
	if !ok {
		lock = &sessionLock{ch: make(chan struct{}, 1)}
		s.locks[key] = lock
	}
	lock.refs++
	s.mu.Unlock()

	select {
	case lock.ch <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() {
				<-lock.ch
				s.unref(key, lock)
			})
		}, nil
	case <-ctx.Done():
		s.unref(key, lock)
		return nil, ctx.Err()
	}
}

func (s *sessionLocks) unref(key string, lock *sessionLock) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock.refs--
	if lock.refs == 0 {
		delete(s.locks, key)
	}
}

// len reports how many session ids currently have a lock entry.
func (s *sessionLocks) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.locks)
}
