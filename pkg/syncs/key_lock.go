package syncs

import "sync"

// KeyLock is a set of read/write mutexes indexed by key. Holders of different
// keys never block each other. The zero value is ready to use.
type KeyLock[K comparable] struct {
	locks map[K]*sync.RWMutex
	mu    sync.Mutex
}

func (kl *KeyLock[K]) get(key K) *sync.RWMutex {
	kl.mu.Lock()
	defer kl.mu.Unlock()

	if kl.locks == nil {
		kl.locks = make(map[K]*sync.RWMutex)
	}

	l, ok := kl.locks[key]
	if !ok {
		l = &sync.RWMutex{}
		kl.locks[key] = l
	}

	return l
}

// Lock acquires the write lock for key.
func (kl *KeyLock[K]) Lock(key K) { kl.get(key).Lock() }

// Unlock releases the write lock for key.
func (kl *KeyLock[K]) Unlock(key K) { kl.get(key).Unlock() }

// RLock acquires a read lock for key.
func (kl *KeyLock[K]) RLock(key K) { kl.get(key).RLock() }

// RUnlock releases a read lock for key.
func (kl *KeyLock[K]) RUnlock(key K) { kl.get(key).RUnlock() }

// Do runs fn while holding the write lock for key.
func (kl *KeyLock[K]) Do(key K, fn func() error) error {
	kl.Lock(key)
	defer kl.Unlock(key)

	return fn()
}
