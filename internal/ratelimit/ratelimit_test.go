package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_BurstThenDeny(t *testing.T) {
	r := New(Options{PerMinute: 1, Burst: 2})

	assert.True(t, r.Allow("chat:1"))
	assert.True(t, r.Allow("chat:1"))
	assert.False(t, r.Allow("chat:1"))
}

func TestRegistry_KeysAreIndependent(t *testing.T) {
	r := New(Options{PerMinute: 1, Burst: 1})

	assert.True(t, r.Allow("a"))
	assert.False(t, r.Allow("a"))
	assert.True(t, r.Allow("b"))
}

func TestRegistry_Defaults(t *testing.T) {
	r := New(Options{})
	assert.True(t, r.Allow("x"))
	assert.False(t, r.Allow("x"))
}
