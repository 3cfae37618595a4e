package textgroup

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collector struct {
	mu     sync.Mutex
	groups []Group
}

func (c *collector) add(g Group) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.groups = append(c.groups, g)
}

func (c *collector) snapshot() []Group {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Group(nil), c.groups...)
}

func TestAggregator_JoinsConsecutiveMessages(t *testing.T) {
	var c collector
	a := New(Options{Debounce: 30 * time.Millisecond, OnFlush: c.add})

	a.Add(Item{ChatID: 1, UserID: 10, Username: "ana", Text: `{"category":`})
	a.Add(Item{ChatID: 1, UserID: 10, Username: "ana", Text: `"event"}`})

	require.Eventually(t, func() bool { return len(c.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	g := c.snapshot()[0]
	assert.Equal(t, int64(1), g.ChatID)
	assert.Equal(t, "ana", g.Username)
	assert.Equal(t, `{"category":"event"}`, g.Text())
}

func TestAggregator_SeparatesChats(t *testing.T) {
	var c collector
	a := New(Options{Debounce: 20 * time.Millisecond, OnFlush: c.add})

	a.Add(Item{ChatID: 1, Text: "a"})
	a.Add(Item{ChatID: 2, Text: "b"})

	require.Eventually(t, func() bool { return len(c.snapshot()) == 2 }, time.Second, 5*time.Millisecond)
	texts := map[int64]string{}
	for _, g := range c.snapshot() {
		texts[g.ChatID] = g.Text()
	}
	assert.Equal(t, map[int64]string{1: "a", 2: "b"}, texts)
}

func TestAggregator_ZeroDebounceFlushesImmediately(t *testing.T) {
	var c collector
	a := New(Options{OnFlush: c.add})

	a.Add(Item{ChatID: 5, Text: "hello"})
	a.Add(Item{ChatID: 5, Text: ""})

	groups := c.snapshot()
	require.Len(t, groups, 1)
	assert.Equal(t, "hello", groups[0].Text())
}

func TestAggregator_FlushNow(t *testing.T) {
	var c collector
	a := New(Options{Debounce: time.Hour, OnFlush: c.add})

	a.Add(Item{ChatID: 3, Text: "x"})
	a.Flush(3)
	a.Flush(3)

	groups := c.snapshot()
	require.Len(t, groups, 1)
	assert.Equal(t, "x", groups[0].Text())
}
