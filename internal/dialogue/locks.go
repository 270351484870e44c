package dialogue

import "sync"

// chatLocks serializes work per chat. Waiters for a chat are granted the
// lock in the order they asked for it. Entries are dropped once no goroutine
// holds or waits for them.
type chatLocks struct {
	mu    sync.Mutex
	locks map[int64]*chatLock
}

// chatLock is owned by whoever was last granted it; waiters are closed one
// at a time on release.
type chatLock struct {
	waiters []chan struct{}
}

func newChatLocks() *chatLocks {
	return &chatLocks{locks: make(map[int64]*chatLock)}
}

// lock blocks until chatID is free and returns the matching unlock func.
func (c *chatLocks) lock(chatID int64) func() {
	c.mu.Lock()
	l, held := c.locks[chatID]
	if !held {
		l = &chatLock{}
		c.locks[chatID] = l
		c.mu.Unlock()
		return func() { c.release(chatID, l) }
	}

	ready := make(chan struct{})
	l.waiters = append(l.waiters, ready)
	c.mu.Unlock()

	<-ready
	return func() { c.release(chatID, l) }
}

// release hands the lock to the oldest waiter, or forgets the chat.
func (c *chatLocks) release(chatID int64, l *chatLock) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(l.waiters) == 0 {
		delete(c.locks, chatID)
		return
	}
	next := l.waiters[0]
	l.waiters[0] = nil
	l.waiters = l.waiters[1:]
	close(next)
}

func (c *chatLocks) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.locks)
}
