package cache

import "time"

// Repository is a minimal key/value cache used for recommendation results
type Repository interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration) error
}
