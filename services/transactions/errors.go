package transactions

import "errors"

var (
	// ErrNotFound indicates the requested transaction has no matching record
	ErrNotFound = errors.New("transaction not found")

	// ErrCacheMiss indicates the cache holds no entry for the requested key
	ErrCacheMiss = errors.New("cache miss")
)
