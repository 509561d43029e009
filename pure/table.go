package pure

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/cespare/xxhash/v2"
)

const maxShards = 16

// canonicalNaNBits is the single key every NaN argument is folded into.
// NaN != NaN, so raw NaN keys would never hit and would grow the table.
const canonicalNaNBits uint64 = 0x7FF8_0000_0000_0001

// Key identifies up to three float64 arguments by their IEEE-754 bits.
// -0 and +0 are distinct keys; all NaNs are the same key.
type Key [3]uint64

func KeyOf(args ...float64) Key {
	if len(args) > len(Key{}) {
		panic("KeyOf: more than 3 arguments")
	}
	var k Key
	for i, a := range args {
		k[i] = bitsOf(a)
	}
	return k
}

func bitsOf(a float64) uint64 {
	if math.IsNaN(a) {
		return canonicalNaNBits
	}
	return math.Float64bits(a)
}

func (k Key) hash() uint64 {
	var b [24]byte
	binary.LittleEndian.PutUint64(b[0:], k[0])
	binary.LittleEndian.PutUint64(b[8:], k[1])
	binary.LittleEndian.PutUint64(b[16:], k[2])
	return xxhash.Sum64(b[:])
}

// Table is a bounded memo table safe for concurrent use.
//
// Keys are spread over shards by xxhash. Each shard holds two generations:
// when the head generation is full it becomes the previous one and a fresh
// head is started, dropping the old previous generation. At most maxSize
// entries live in head generations, so at most 2*maxSize overall.
type Table[O any] struct {
	shards   []shard[O]
	shardCap int
}

type shard[O any] struct {
	mu   sync.RWMutex
	head map[Key]O
	prev map[Key]O
}

func NewTable[O any](maxSize uint32) *Table[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	n := min(int(maxSize), maxShards)
	t := &Table[O]{
		shards:   make([]shard[O], n),
		shardCap: int(maxSize) / n,
	}
	for i := range t.shards {
		t.shards[i].head = make(map[Key]O)
	}
	return t
}

func (t *Table[O]) shardOf(k Key) *shard[O] {
	if len(t.shards) == 1 {
		return &t.shards[0]
	}
	return &t.shards[k.hash()%uint64(len(t.shards))]
}

func (t *Table[O]) Load(k Key) (O, bool) {
	s := t.shardOf(k)
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v, ok := s.head[k]; ok {
		return v, true
	}
	v, ok := s.prev[k]
	return v, ok
}

func (t *Table[O]) Store(k Key, value O) {
	s := t.shardOf(k)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.head[k]; !ok && len(s.head) >= t.shardCap {
		s.prev = s.head
		s.head = make(map[Key]O, t.shardCap)
	}
	s.head[k] = value
}

// Len returns the number of entries currently held, both generations included.
func (t *Table[O]) Len() int {
	n := 0
	for i := range t.shards {
		s := &t.shards[i]
		s.mu.RLock()
		n += len(s.head) + len(s.prev)
		s.mu.RUnlock()
	}
	return n
}
