// Package posecache memoizes computed joint rotations by a quantized phase
// key. Entries expire after a fixed age, the oldest share is evicted in bulk
// when the cache is full, and rotations are stored in a bounded ring-buffer
// pool so steady-state lookups and inserts do not grow the heap.
package posecache

import (
	"cmp"
	"math"
	"math/bits"
	"slices"
	"strconv"
	"strings"

	"github.com/automoto/rigmotion/clock"
	"github.com/automoto/rigmotion/config"
	"github.com/automoto/rigmotion/rig"
)

// Options configures a Cache.
type Options struct {
	MaxSize    int
	TTL        float64 // seconds
	Tolerance  float64
	PoolSize   int
	EvictRatio float64
}

// DefaultOptions reads the cache section of the global config.
func DefaultOptions() Options {
	c := config.Cache
	return Options{
		MaxSize:    c.MaxSize,
		TTL:        c.TTL,
		Tolerance:  c.Tolerance,
		PoolSize:   c.PoolSize,
		EvictRatio: c.EvictRatio,
	}
}

// Stats counts cache traffic since the last Clear.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Expired   uint64
	Stale     uint64 // entries whose pooled storage was recycled
	Size      int
}

// HitRate is hits over lookups, 0 with no lookups.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

type entry struct {
	mask     uint32
	handles  [rig.JointCount]Handle
	phase    float64
	inserted float64
	seq      uint64
}

type ageRef struct {
	key      string
	inserted float64
	seq      uint64
}

// Cache is a pose memoization table. It is owned by one scene and used from
// a single goroutine.
type Cache struct {
	opts    Options
	clock   clock.Source
	pool    *Pool
	entries map[string]entry
	seq     uint64
	stats   Stats
	scratch []ageRef
}

// New builds a cache timed by c.
func New(c clock.Source, opts Options) *Cache {
	if opts.MaxSize < 1 {
		opts.MaxSize = 1
	}
	if opts.EvictRatio <= 0 {
		opts.EvictRatio = 0.3
	}
	return &Cache{
		opts:    opts,
		clock:   c,
		pool:    NewPool(opts.PoolSize),
		entries: make(map[string]entry, opts.MaxSize),
		scratch: make([]ageRef, 0, opts.MaxSize),
	}
}

// Get looks key up with the default phase tolerance.
func (c *Cache) Get(key string, phase float64) (rig.Pose, bool) {
	return c.GetWithin(key, phase, c.opts.Tolerance)
}

// GetWithin returns a copy of the pose stored under key if it is younger
// than the TTL and was stored at a phase within tol of phase.
func (c *Cache) GetWithin(key string, phase, tol float64) (rig.Pose, bool) {
	e, ok := c.entries[key]
	if !ok {
		c.stats.Misses++
		return rig.Pose{}, false
	}
	if c.clock.Now()-e.inserted >= c.opts.TTL {
		c.drop(key, e)
		c.stats.Expired++
		c.stats.Misses++
		return rig.Pose{}, false
	}
	if math.Abs(e.phase-phase) > tol {
		c.stats.Misses++
		return rig.Pose{}, false
	}

	var pose rig.Pose
	for m := e.mask; m != 0; m &= m - 1 {
		j := rig.JointID(bits.TrailingZeros32(m))
		a, ok := c.pool.Load(e.handles[j])
		if !ok {
			c.drop(key, e)
			c.stats.Stale++
			c.stats.Misses++
			return rig.Pose{}, false
		}
		pose.Set(j, a)
	}
	c.stats.Hits++
	return pose, true
}

// Put stores pose under key, replacing any previous entry. A full cache
// first evicts its oldest share of entries.
func (c *Cache) Put(key string, pose rig.Pose, phase float64) {
	if old, ok := c.entries[key]; ok {
		c.release(old)
	} else if len(c.entries) >= c.opts.MaxSize {
		c.evictOldest()
	}

	c.seq++
	e := entry{phase: phase, inserted: c.clock.Now(), seq: c.seq}
	pose.Each(func(j rig.JointID, a rig.Angles) {
		e.mask |= 1 << uint(j)
		e.handles[j] = c.pool.Acquire(a)
	})
	c.entries[key] = e
}

// evictCount is floor(ratio*max), at least one.
func (c *Cache) evictCount() int {
	n := int(math.Floor(c.opts.EvictRatio * float64(c.opts.MaxSize)))
	if n < 1 {
		n = 1
	}
	return n
}

func (c *Cache) evictOldest() {
	c.scratch = c.scratch[:0]
	for k, e := range c.entries {
		c.scratch = append(c.scratch, ageRef{key: k, inserted: e.inserted, seq: e.seq})
	}
	slices.SortFunc(c.scratch, func(a, b ageRef) int {
		if r := cmp.Compare(a.inserted, b.inserted); r != 0 {
			return r
		}
		return cmp.Compare(a.seq, b.seq)
	})

	n := min(c.evictCount(), len(c.scratch))
	for _, ref := range c.scratch[:n] {
		c.drop(ref.key, c.entries[ref.key])
		c.stats.Evictions++
	}
}

// Prune removes every expired entry and returns how many were removed.
func (c *Cache) Prune() int {
	now := c.clock.Now()
	removed := 0
	for k, e := range c.entries {
		if now-e.inserted >= c.opts.TTL {
			c.drop(k, e)
			c.stats.Expired++
			removed++
		}
	}
	return removed
}

func (c *Cache) drop(key string, e entry) {
	c.release(e)
	delete(c.entries, key)
}

func (c *Cache) release(e entry) {
	for m := e.mask; m != 0; m &= m - 1 {
		c.pool.Release(e.handles[bits.TrailingZeros32(m)])
	}
}

// Len is the number of live entries, expired ones included until touched.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Stats returns a snapshot of the counters.
func (c *Cache) Stats() Stats {
	s := c.stats
	s.Size = len(c.entries)
	return s
}

// Clear drops every entry and resets the counters.
func (c *Cache) Clear() {
	clear(c.entries)
	c.pool.Reset()
	c.stats = Stats{}
}

// Pool exposes the backing ring buffer.
func (c *Cache) Pool() *Pool {
	return c.pool
}

// Key builds a cache key from a semantic tag, the phase quantized to width
// and any modifiers: "knee:12:support".
func Key(tag string, phase, width float64, mods ...string) string {
	bucket := 0
	if width > 0 {
		bucket = int(math.Floor(phase / width))
	}
	var b strings.Builder
	b.Grow(len(tag) + 8 + 8*len(mods))
	b.WriteString(tag)
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(bucket))
	for _, m := range mods {
		b.WriteByte(':')
		b.WriteString(m)
	}
	return b.String()
}
