package keymutex

import "sync"

// KeyMutex пул эксклюзивных блокировок по строковому ключу
// Блокировка создается при первом обращении и удаляется из пула, когда
// последний держатель её отпустил: память ограничена числом ключей,
// заблокированных прямо сейчас, а не всей историей
type KeyMutex struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// New создает пустой пул блокировок
func New() *KeyMutex {
	return &KeyMutex{locks: make(map[string]*entry)}
}

// Lock захватывает блокировку для ключа, блокируясь до её освобождения
// Счетчик ссылок увеличивается под общим мьютексом до захвата, поэтому
// гонки "создал-и-тут-же-удалили" между Lock и Unlock невозможны
func (km *KeyMutex) Lock(key string) {
	km.mu.Lock()
	e, ok := km.locks[key]
	if !ok {
		e = &entry{}
		km.locks[key] = e
	}
	e.refs++
	km.mu.Unlock()

	e.mu.Lock()
}

// Unlock освобождает блокировку ключа и удаляет её из пула,
// если других ожидающих нет
func (km *KeyMutex) Unlock(key string) {
	km.mu.Lock()
	e, ok := km.locks[key]
	if !ok {
		km.mu.Unlock()
		panic("keymutex: unlock of unlocked key " + key)
	}
	e.refs--
	if e.refs == 0 {
		delete(km.locks, key)
	}
	km.mu.Unlock()

	e.mu.Unlock()
}

// Len возвращает число ключей с активными блокировками (для тестов и метрик)
func (km *KeyMutex) Len() int {
	km.mu.Lock()
	defer km.mu.Unlock()
	return len(km.locks)
}
