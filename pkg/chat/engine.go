// Package chat implements the storefront assistant: session tracking plus a
// keyword classifier that picks canned responses.
package chat

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"markethub-be/internal/entity"
	"markethub-be/internal/pkg/logger"

	"github.com/google/uuid"
)

const (
	DefaultMinLatency = 800 * time.Millisecond
	DefaultMaxLatency = 2000 * time.Millisecond
)

// ErrEmptyMessage is returned to callers that try to send blank input.
var ErrEmptyMessage = errors.New("message must not be blank")

// SessionStore keeps sessions by id. Implementations must be safe for concurrent use.
type SessionStore interface {
	Save(session *entity.ChatSession)
	Get(sessionId string) (*entity.ChatSession, bool)
	Delete(sessionId string)
	All() []*entity.ChatSession
}

// Context carries what the presentation layer knows about the shopper.
type Context struct {
	CurrentStore *entity.Store
	Stores       []entity.Store
	CartCount    int
	UserHistory  []string
}

type Option func(*Engine)

// WithSeed makes response selection and latency deterministic.
func WithSeed(seed uint64) Option {
	return func(e *Engine) { e.rng = rand.New(rand.NewPCG(seed, seed)) }
}

func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithLatency sets the simulated thinking time window. Zero disables the wait.
func WithLatency(min, max time.Duration) Option {
	return func(e *Engine) {
		e.minLatency = min
		e.maxLatency = max
	}
}

func WithSleep(sleep func(time.Duration)) Option {
	return func(e *Engine) { e.sleep = sleep }
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithLogger(l logger.ILogger) Option {
	return func(e *Engine) { e.logger = l }
}

type Engine struct {
	mu        sync.RWMutex
	store     SessionStore
	currentId string

	rngMu sync.Mutex
	rng   *rand.Rand

	minLatency time.Duration
	maxLatency time.Duration
	sleep      func(time.Duration)
	now        func() time.Time
	logger     logger.ILogger
}

func NewEngine(store SessionStore, opts ...Option) *Engine {
	e := &Engine{
		store:      store,
		rng:        rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15)),
		minLatency: DefaultMinLatency,
		maxLatency: DefaultMaxLatency,
		sleep:      time.Sleep,
		now:        time.Now,
		logger:     logger.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) StartSession() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.startSessionLocked()
}

// GetCurrentSession returns the active session id, starting one if needed.
func (e *Engine) GetCurrentSession() string {
	e.mu.RLock()
	id := e.currentId
	e.mu.RUnlock()
	if id != "" {
		if _, ok := e.store.Get(id); ok {
			return id
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currentSessionLocked().Id
}

// AddMessage appends a message to the current session and returns the stored copy.
func (e *Engine) AddMessage(role, content string) entity.ChatMessage {
	e.mu.Lock()
	defer e.mu.Unlock()

	session := e.currentSessionLocked()
	ts := e.now()
	if n := len(session.Messages); n > 0 && ts.Before(session.Messages[n-1].Timestamp) {
		ts = session.Messages[n-1].Timestamp
	}

	msg := entity.ChatMessage{
		Id:        "msg_" + uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: ts,
	}
	session.Messages = append(session.Messages, msg)
	session.LastActivity = ts
	e.store.Save(session)
	return msg
}

// GetConversation returns a copy of the named session, or of the current one
// when sessionId is empty.
func (e *Engine) GetConversation(sessionId string) (*entity.ChatSession, bool) {
	if sessionId == "" {
		sessionId = e.GetCurrentSession()
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	session, ok := e.store.Get(sessionId)
	if !ok {
		return nil, false
	}
	out := session.Clone()
	return &out, true
}

func (e *Engine) AllConversations() []entity.ChatSession {
	e.mu.RLock()
	defer e.mu.RUnlock()

	sessions := e.store.All()
	out := make([]entity.ChatSession, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, s.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out
}

// ClearConversation discards the named session (or the current one).
func (e *Engine) ClearConversation(sessionId string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if sessionId == "" {
		sessionId = e.currentId
	}
	if sessionId == "" {
		return
	}
	e.store.Delete(sessionId)
	if sessionId == e.currentId {
		e.currentId = ""
	}
}

// GenerateResponse waits for the simulated latency, then classifies text and
// renders a reply. It never fails; internal faults yield ApologyMessage.
func (e *Engine) GenerateResponse(text string, cc Context) (reply string) {
	e.sleep(e.latency())

	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("CHAT", "Response generation failed", map[string]interface{}{
				"error": fmt.Sprint(r),
			})
			reply = ApologyMessage
		}
	}()

	category := Classify(text)
	e.logger.Debug("CHAT", "Classified message", map[string]interface{}{
		"category": string(category),
	})
	return e.respond(category, cc)
}

func (e *Engine) respond(category Category, cc Context) string {
	switch category {
	case CategoryGreeting:
		return e.pick(greetingReplies)
	case CategoryStore:
		return storeReply(cc)
	case CategoryCart:
		return cartReply(cc)
	case CategoryRecommendation:
		return e.pick(recommendationReplies)
	case CategoryDefault:
		return e.pick(defaultReplies)
	}
	if pool, ok := fixedReplies[category]; ok {
		return e.pick(pool)
	}
	return e.pick(defaultReplies)
}

func (e *Engine) pick(pool []string) string {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return pool[e.rng.IntN(len(pool))]
}

func (e *Engine) latency() time.Duration {
	if e.maxLatency <= 0 {
		return 0
	}
	if e.maxLatency <= e.minLatency {
		return e.minLatency
	}
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return e.minLatency + time.Duration(e.rng.Int64N(int64(e.maxLatency-e.minLatency)+1))
}

func (e *Engine) currentSessionLocked() *entity.ChatSession {
	if e.currentId != "" {
		if session, ok := e.store.Get(e.currentId); ok {
			return session
		}
	}
	id := e.startSessionLocked()
	session, _ := e.store.Get(id)
	return session
}

func (e *Engine) startSessionLocked() string {
	now := e.now()
	session := &entity.ChatSession{
		Id:           "chat_" + uuid.NewString(),
		Messages:     []entity.ChatMessage{},
		StartTime:    now,
		LastActivity: now,
	}
	e.store.Save(session)
	e.currentId = session.Id
	return session.Id
}
