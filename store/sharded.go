package store

import (
	"github.com/cespare/xxhash/v2"
)

var _ Store[string, int] = (*Sharded[string, int])(nil)

// Sharded spreads entries over a fixed number of Hash stores, picking the
// shard from the xxhash of the key's string form. Equality inside a shard is
// still Go map equality, so keys with colliding strings never alias.
//
// keyString must be canonical under ==: keys that compare equal must map to
// the same string, or they land in different shards and are stored twice.
// fmt.Sprint is not canonical (+0.0 and -0.0 are equal but print differently).
type Sharded[K comparable, V any] struct {
	shards    []*Hash[K, V]
	keyString func(K) string
}

// NewSharded returns a store with numShards shards.
func NewSharded[K comparable, V any](numShards int, keyString func(K) string) *Sharded[K, V] {
	if numShards <= 0 {
		panic("numShards should be greater than 0")
	}
	if keyString == nil {
		panic("keyString should not be nil")
	}
	shards := make([]*Hash[K, V], numShards)
	for i := range shards {
		shards[i] = NewHash[K, V]()
	}
	return &Sharded[K, V]{shards: shards, keyString: keyString}
}

func (s *Sharded[K, V]) shard(key K) *Hash[K, V] {
	if len(s.shards) == 1 {
		return s.shards[0]
	}
	return s.shards[xxhash.Sum64String(s.keyString(key))%uint64(len(s.shards))]
}

func (s *Sharded[K, V]) Insert(key K, value V) {
	s.shard(key).Insert(key, value)
}

func (s *Sharded[K, V]) Get(key K) (V, bool) {
	return s.shard(key).Get(key)
}

func (s *Sharded[K, V]) Len() int {
	n := 0
	for _, sh := range s.shards {
		n += sh.Len()
	}
	return n
}

// ShardLens returns the number of entries held by each shard.
func (s *Sharded[K, V]) ShardLens() []int {
	lens := make([]int, len(s.shards))
	for i, sh := range s.shards {
		lens[i] = sh.Len()
	}
	return lens
}
