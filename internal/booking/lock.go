package booking

import "sync"

// roomLocks serializes read-validate-write sequences per room so that
// two concurrent creates for the same room cannot both pass the overlap
// check.  One mutex is kept per room identifier; the map only ever
// grows, bounded by the number of rooms in the hotel.
type roomLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newRoomLocks() *roomLocks {
	return &roomLocks{locks: make(map[int64]*sync.Mutex)}
}

// lock acquires the mutex for roomID and returns its release function.
// Callers must defer the returned function so the lock is released on
// every exit path.
func (l *roomLocks) lock(roomID int64) func() {
	l.mu.Lock()
	m, ok := l.locks[roomID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[roomID] = m
	}
	l.mu.Unlock()
	m.Lock()
	return m.Unlock
}
