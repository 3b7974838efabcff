package util

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenericMapConcurrentStore(t *testing.T) {
	m := NewGenericMap[int, string]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m.Store(i, "v")
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, m.Len())

	v, ok := m.Load(7)
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	_, ok = m.LoadAndDelete(7)
	assert.True(t, ok)
	_, ok = m.Load(7)
	assert.False(t, ok)
	_, ok = m.LoadAndDelete(7)
	assert.False(t, ok)
}
