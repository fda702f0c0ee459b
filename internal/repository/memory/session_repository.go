package memory

import (
	"time"

	"markethub-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps chat sessions in process memory. Sessions idle for
// longer than ttl are evicted; a ttl of zero keeps them forever.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	expiration := ttl
	cleanup := 10 * time.Minute
	if ttl <= 0 {
		expiration = cache.NoExpiration
		cleanup = 0
	}
	return &SessionRepository{
		cache: cache.New(expiration, cleanup),
	}
}

func (r *SessionRepository) Save(session *entity.ChatSession) {
	r.cache.Set(session.Id, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionId string) (*entity.ChatSession, bool) {
	if x, found := r.cache.Get(sessionId); found {
		return x.(*entity.ChatSession), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionId string) {
	r.cache.Delete(sessionId)
}

func (r *SessionRepository) All() []*entity.ChatSession {
	items := r.cache.Items()
	out := make([]*entity.ChatSession, 0, len(items))
	for _, item := range items {
		out = append(out, item.Object.(*entity.ChatSession))
	}
	return out
}
