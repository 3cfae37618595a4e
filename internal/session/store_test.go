package session

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flyergen/internal/flyer"
)

func appendTag(tag string) func(string) string {
	return func(p string) string { return p + " " + tag }
}

func TestStore_StartAndGet(t *testing.T) {
	s := NewStore(Options{})

	_, ok := s.Get(1)
	assert.False(t, ok)

	cfg := flyer.Configuration{Category: flyer.CategoryEvent}
	s.Start(1, "ana", cfg, flyer.PromptPackage{MainPrompt: "base"})

	got, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, "base", got.Package.MainPrompt)
	assert.Equal(t, "ana", got.Username)
	assert.Equal(t, flyer.CategoryEvent, got.Config.Category)
	assert.Equal(t, 1, s.Len())
}

func TestStore_Refine(t *testing.T) {
	s := NewStore(Options{MaxRefinements: 2})

	_, err := s.Refine(7, "brighter", appendTag("x"))
	assert.True(t, errors.Is(err, ErrNoFlyer))

	s.Start(7, "", flyer.Configuration{}, flyer.PromptPackage{MainPrompt: "p"})
	for _, fb := range []string{"a", "b", "c"} {
		_, err := s.Refine(7, fb, appendTag(fb))
		require.NoError(t, err)
	}

	got, ok := s.Get(7)
	require.True(t, ok)
	assert.Equal(t, "p a b c", got.Package.MainPrompt)
	assert.Equal(t, []string{"b", "c"}, got.Refinements)
}

func TestStore_StartResetsRefinements(t *testing.T) {
	s := NewStore(Options{})
	s.Start(3, "", flyer.Configuration{}, flyer.PromptPackage{MainPrompt: "one"})
	_, err := s.Refine(3, "bolder", appendTag("bolder"))
	require.NoError(t, err)

	s.Start(3, "", flyer.Configuration{}, flyer.PromptPackage{MainPrompt: "two"})
	got, _ := s.Get(3)
	assert.Equal(t, "two", got.Package.MainPrompt)
	assert.Empty(t, got.Refinements)
}

func TestStore_ReturnedSessionsAreCopies(t *testing.T) {
	s := NewStore(Options{})
	s.Start(4, "", flyer.Configuration{}, flyer.PromptPackage{MainPrompt: "p"})
	sess, err := s.Refine(4, "a", appendTag("a"))
	require.NoError(t, err)

	sess.Refinements[0] = "mutated"
	got, _ := s.Get(4)
	assert.Equal(t, []string{"a"}, got.Refinements)
}

func TestStore_Clear(t *testing.T) {
	s := NewStore(Options{})
	s.Start(5, "", flyer.Configuration{}, flyer.PromptPackage{})
	s.Clear(5)
	_, ok := s.Get(5)
	assert.False(t, ok)
}

func TestStore_Expires(t *testing.T) {
	s := NewStore(Options{TTL: 20 * time.Millisecond})
	s.Start(6, "", flyer.Configuration{}, flyer.PromptPackage{})
	assert.Eventually(t, func() bool {
		_, ok := s.Get(6)
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestStore_ConcurrentRefine(t *testing.T) {
	s := NewStore(Options{MaxRefinements: 100})
	s.Start(9, "", flyer.Configuration{}, flyer.PromptPackage{MainPrompt: "p"})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = s.Refine(9, fmt.Sprint(i), appendTag("."))
		}(i)
	}
	wg.Wait()

	got, _ := s.Get(9)
	assert.Len(t, got.Refinements, 50)
}
