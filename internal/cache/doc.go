// Package cache provides a byte-bounded LRU for storage values.
//
// [LRU] tracks the total size of cached values and evicts the least recently
// used entries once the configured capacity is exceeded. Values larger than
// the capacity are never cached.
package cache
