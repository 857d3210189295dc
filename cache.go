// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rcode

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// DecodeCache memoizes decode results by the xxHash64 of the input bytes,
// so byte-identical inputs handed to the same cache are decoded once
// (cmd/rcodedump's dump command keeps one cache for its whole invocation).
// Entries live in memory only and are not kept between process runs. It is
// safe for concurrent use.
type DecodeCache struct {
	mu      sync.RWMutex
	entries map[uint64]*RCodeInfo
}

// NewDecodeCache returns an empty DecodeCache.
func NewDecodeCache() *DecodeCache {
	return &DecodeCache{entries: make(map[uint64]*RCodeInfo)}
}

// key hashes data with xxHash64, the same primitive mebo's internal/hash
// package wraps for its own content-addressed IDs.
func (c *DecodeCache) key(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Decode returns the cached RCodeInfo for data if present, decoding and
// caching it otherwise. A cache hit skips the decode entirely.
func (c *DecodeCache) Decode(data []byte, opts *Options) (*RCodeInfo, error) {
	k := c.key(data)

	c.mu.RLock()
	if info, ok := c.entries[k]; ok {
		c.mu.RUnlock()
		return info, nil
	}
	c.mu.RUnlock()

	info, err := NewBytes(data, opts)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[k] = info
	c.mu.Unlock()

	return info, nil
}

// Len returns the number of cached entries.
func (c *DecodeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
