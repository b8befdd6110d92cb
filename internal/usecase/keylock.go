package usecase

import (
	"hash/fnv"
	"sync"
)

// keyLock — полосатый набор мьютексов по ключу пользователя.
// Сериализует read-modify-write одной корзины, не блокируя остальных.
type keyLock struct {
	mus [64]sync.Mutex
}

func (l *keyLock) of(key string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return &l.mus[h.Sum32()%uint32(len(l.mus))]
}
