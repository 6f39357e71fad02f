package cache

import "time"

// Mock is an in-memory Repository for tests
type Mock struct {
	Data map[string]string
}

func NewMock() *Mock {
	return &Mock{
		Data: make(map[string]string),
	}
}

func (m *Mock) Get(key string) (string, bool) {
	val, ok := m.Data[key]
	return val, ok
}

func (m *Mock) Set(key string, value string, _ time.Duration) error {
	m.Data[key] = value
	return nil
}
