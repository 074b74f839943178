package tx

import (
	"context"
	"sync"
)

// KeyFunc извлекает из контекста ключ, в пределах которого операции сериализуются.
type KeyFunc func(ctx context.Context) string

// Manager сериализует изменения состояния в пределах одного ключа (сессии).
// Данные живут только в памяти, поэтому вместо транзакций БД здесь
// используется мьютекс на ключ; операции разных ключей не блокируют друг друга.
type Manager struct {
	keyFn KeyFunc

	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

// New создаёт новый менеджер.
func New(keyFn KeyFunc) *Manager {
	return &Manager{
		keyFn: keyFn,
		locks: make(map[string]*keyLock),
	}
}

// Do выполняет fn под блокировкой ключа из ctx. Повторный вход с тем же
// ключом внутри fn приведёт к дедлоку, вложенные вызовы не поддерживаются.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := m.keyFn(ctx)
	lock := m.acquire(key)
	defer m.release(key, lock)

	return fn(ctx)
}

func (m *Manager) acquire(key string) *keyLock {
	m.mu.Lock()
	lock, ok := m.locks[key]
	if !ok {
		lock = &keyLock{}
		m.locks[key] = lock
	}
	lock.refs++
	m.mu.Unlock()

	lock.mu.Lock()
	return lock
}

func (m *Manager) release(key string, lock *keyLock) {
	lock.mu.Unlock()

	m.mu.Lock()
	lock.refs--
	if lock.refs == 0 {
		delete(m.locks, key)
	}
	m.mu.Unlock()
}
