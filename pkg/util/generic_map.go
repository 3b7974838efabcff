package util

import "sync"

// GenericMap is a concurrent safe map with generic key and value types.
type GenericMap[K comparable, V any] struct {
	m sync.Map
}

func NewGenericMap[K comparable, V any]() *GenericMap[K, V] {
	return &GenericMap[K, V]{}
}

// Load returns the value stored for key and whether it was present.
func (m *GenericMap[K, V]) Load(key K) (value V, ok bool) {
	v, loaded := m.m.Load(key)
	if !loaded {
		return value, false
	}
	return v.(V), true
}

func (m *GenericMap[K, V]) Store(key K, value V) {
	m.m.Store(key, value)
}

// LoadAndDelete removes key, returning the previous value if any.
func (m *GenericMap[K, V]) LoadAndDelete(key K) (value V, loaded bool) {
	v, loaded := m.m.LoadAndDelete(key)
	if !loaded {
		return value, false
	}
	return v.(V), true
}

// Range calls f for every entry until f returns false.
func (m *GenericMap[K, V]) Range(f func(key K, value V) bool) {
	m.m.Range(func(k, v any) bool {
		return f(k.(K), v.(V))
	})
}

// Len counts the entries. It walks the whole map.
func (m *GenericMap[K, V]) Len() int {
	n := 0
	m.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
