package textgroup

import (
	"strings"
	"sync"
	"time"
)

// Item is one incoming text message. Telegram splits long pastes into
// several messages sent back to back.
type Item struct {
	ChatID       int64
	UserID       int64
	Username     string
	LanguageCode string
	Text         string
}

// Group is the text of consecutive messages from one chat, joined in arrival
// order.
type Group struct {
	ChatID       int64
	UserID       int64
	Username     string
	LanguageCode string
	Parts        []string
}

func (g Group) Text() string {
	return strings.Join(g.Parts, "")
}

type Options struct {
	Debounce time.Duration
	OnFlush  func(Group)
}

type Aggregator struct {
	mu       sync.Mutex
	debounce time.Duration
	onFlush  func(Group)
	groups   map[int64]*pendingGroup
}

type pendingGroup struct {
	group Group
	timer *time.Timer
}

func New(opts Options) *Aggregator {
	return &Aggregator{
		debounce: opts.Debounce,
		onFlush:  opts.OnFlush,
		groups:   make(map[int64]*pendingGroup),
	}
}

// Add queues a message and restarts the chat's quiet timer. With no debounce
// the message is flushed immediately.
func (a *Aggregator) Add(item Item) {
	if item.Text == "" {
		return
	}
	if a.debounce <= 0 {
		if a.onFlush != nil {
			a.onFlush(Group{
				ChatID:       item.ChatID,
				UserID:       item.UserID,
				Username:     item.Username,
				LanguageCode: item.LanguageCode,
				Parts:        []string{item.Text},
			})
		}
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	pg, ok := a.groups[item.ChatID]
	if !ok {
		pg = &pendingGroup{
			group: Group{
				ChatID:       item.ChatID,
				UserID:       item.UserID,
				Username:     item.Username,
				LanguageCode: item.LanguageCode,
			},
		}
		a.groups[item.ChatID] = pg
	}
	pg.group.Parts = append(pg.group.Parts, item.Text)

	if pg.timer != nil {
		pg.timer.Stop()
	}
	chatID := item.ChatID
	pg.timer = time.AfterFunc(a.debounce, func() {
		a.flush(chatID)
	})
}

// Flush delivers any pending text for the chat right away.
func (a *Aggregator) Flush(chatID int64) {
	a.mu.Lock()
	if pg, ok := a.groups[chatID]; ok && pg.timer != nil {
		pg.timer.Stop()
	}
	a.mu.Unlock()
	a.flush(chatID)
}

func (a *Aggregator) flush(chatID int64) {
	a.mu.Lock()
	pg, ok := a.groups[chatID]
	if !ok {
		a.mu.Unlock()
		return
	}
	delete(a.groups, chatID)
	group := pg.group
	onFlush := a.onFlush
	a.mu.Unlock()

	if onFlush != nil {
		onFlush(group)
	}
}
