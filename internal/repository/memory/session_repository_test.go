package memory

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-agent-be/pkg/store"
)

func TestAppendAndRecent(t *testing.T) {
	r := NewSessionRepository(10, time.Hour)

	r.Append("s1", store.RoleUser, "hello")
	r.Append("s1", store.RoleAssistant, "hi there")

	msgs := r.Recent("s1", 0)
	require.Len(t, msgs, 2)
	assert.Equal(t, store.RoleUser, msgs[0].Role)
	assert.Equal(t, "hello", msgs[0].Content)
	assert.Equal(t, "hi there", msgs[1].Content)
}

func TestRecentWindow(t *testing.T) {
	r := NewSessionRepository(10, time.Hour)
	for i := 0; i < 5; i++ {
		r.Append("s1", store.RoleUser, fmt.Sprintf("msg %d", i))
	}

	msgs := r.Recent("s1", 2)
	require.Len(t, msgs, 2)
	assert.Equal(t, "msg 3", msgs[0].Content)
	assert.Equal(t, "msg 4", msgs[1].Content)
}

func TestMaxHistoryEviction(t *testing.T) {
	r := NewSessionRepository(10, time.Hour)
	for i := 0; i < 15; i++ {
		r.Append("s1", store.RoleUser, fmt.Sprintf("msg %d", i))
	}

	msgs := r.Recent("s1", 0)
	require.Len(t, msgs, 10, "history is capped at maxHistory")
	assert.Equal(t, "msg 5", msgs[0].Content, "oldest messages evicted first")
	assert.Equal(t, "msg 14", msgs[9].Content)
}

func TestSessionsAreIsolated(t *testing.T) {
	r := NewSessionRepository(10, time.Hour)
	r.Append("a", store.RoleUser, "from a")
	r.Append("b", store.RoleUser, "from b")

	require.Len(t, r.Recent("a", 0), 1)
	assert.Equal(t, "from a", r.Recent("a", 0)[0].Content)
	assert.Equal(t, "from b", r.Recent("b", 0)[0].Content)
	assert.Equal(t, 2, r.ActiveSessions())
}

func TestClear(t *testing.T) {
	r := NewSessionRepository(10, time.Hour)
	r.Append("s1", store.RoleUser, "hello")

	assert.True(t, r.Clear("s1"))
	assert.Empty(t, r.Recent("s1", 0))
	assert.False(t, r.Clear("s1"), "second clear finds nothing")
}

func TestUnknownSessionRecent(t *testing.T) {
	r := NewSessionRepository(10, time.Hour)
	assert.Empty(t, r.Recent("ghost", 5))
}

func TestConcurrentAppends(t *testing.T) {
	r := NewSessionRepository(200, time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Append("s1", store.RoleUser, fmt.Sprintf("msg %d", i))
		}(i)
	}
	wg.Wait()

	assert.Len(t, r.Recent("s1", 0), 100)
}
