package keymutex

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyMutexSerializesSameKey(t *testing.T) {
	km := New()

	var counter int
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			km.Lock("booking-1")
			defer km.Unlock("booking-1")
			counter++
		}()
	}
	wg.Wait()

	require.Equal(t, 50, counter)
}

func TestKeyMutexIndependentKeys(t *testing.T) {
	km := New()

	km.Lock("a")
	done := make(chan struct{})
	go func() {
		km.Lock("b")
		km.Unlock("b")
		close(done)
	}()
	<-done // ключ "b" не блокируется ключом "a"
	km.Unlock("a")
}

func TestKeyMutexCleansUpEntries(t *testing.T) {
	km := New()

	km.Lock("x")
	km.Unlock("x")
	km.Lock("y")
	km.Unlock("y")

	require.Equal(t, 0, km.Len())
}
