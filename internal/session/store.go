package session

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"flyergen/internal/flyer"
)

var ErrNoFlyer = errors.New("no flyer compiled yet")

// Session is the last flyer compiled in a chat plus the feedback applied to it.
type Session struct {
	ChatID      int64
	Username    string
	Config      flyer.Configuration
	Package     flyer.PromptPackage
	Refinements []string
	UpdatedAt   time.Time
}

type Options struct {
	TTL            time.Duration
	MaxRefinements int
}

// Store keeps sessions in memory and forgets them after TTL of inactivity.
type Store struct {
	mu             sync.Mutex
	items          *cache.Cache
	ttl            time.Duration
	maxRefinements int
}

func NewStore(opts Options) *Store {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	maxRefinements := opts.MaxRefinements
	if maxRefinements <= 0 {
		maxRefinements = 20
	}

	return &Store{
		items:          cache.New(ttl, ttl/2),
		ttl:            ttl,
		maxRefinements: maxRefinements,
	}
}

func (s *Store) Get(chatID int64) (Session, bool) {
	v, ok := s.items.Get(key(chatID))
	if !ok {
		return Session{}, false
	}
	return clone(v.(*Session)), true
}

// Start records a freshly compiled flyer, replacing any earlier one.
func (s *Store) Start(chatID int64, username string, cfg flyer.Configuration, pkg flyer.PromptPackage) Session {
	sess := &Session{
		ChatID:    chatID,
		Username:  username,
		Config:    cfg,
		Package:   pkg,
		UpdatedAt: time.Now(),
	}

	s.mu.Lock()
	s.items.Set(key(chatID), sess, s.ttl)
	s.mu.Unlock()

	return clone(sess)
}

// Refine replaces the main prompt with the result of apply and remembers the
// feedback. It fails with ErrNoFlyer when the chat has nothing to refine.
func (s *Store) Refine(chatID int64, feedback string, apply func(prompt string) string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.items.Get(key(chatID))
	if !ok {
		return Session{}, ErrNoFlyer
	}
	sess := clone(v.(*Session))
	sess.Package.MainPrompt = apply(sess.Package.MainPrompt)
	sess.Refinements = append(sess.Refinements, feedback)
	if len(sess.Refinements) > s.maxRefinements {
		sess.Refinements = sess.Refinements[len(sess.Refinements)-s.maxRefinements:]
	}
	sess.UpdatedAt = time.Now()

	s.items.Set(key(chatID), &sess, s.ttl)
	return clone(&sess), nil
}

func (s *Store) Clear(chatID int64) {
	s.items.Delete(key(chatID))
}

func (s *Store) Len() int {
	return s.items.ItemCount()
}

func key(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}

func clone(sess *Session) Session {
	out := *sess
	out.Refinements = append([]string(nil), sess.Refinements...)
	return out
}
