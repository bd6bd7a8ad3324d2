package memory

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"coder-chat/internal/chat"
	"coder-chat/internal/chat/repository"
	pkgLog "coder-chat/pkg/log"
)

const (
	DefaultCapacity = 10000
	DefaultTTL      = 24 * time.Hour
)

// implRepository keeps session histories in an expirable LRU: least recently written
// sessions are evicted past capacity and idle sessions expire after the TTL.
type implRepository struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, []chat.Turn]
	l        pkgLog.Logger
}

var _ repository.HistoryRepository = (*implRepository)(nil)

// New creates an in-memory history repository.
func New(capacity int, ttl time.Duration, l pkgLog.Logger) *implRepository {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implRepository{
		sessions: expirable.NewLRU[string, []chat.Turn](capacity, nil, ttl),
		l:        l,
	}
}
