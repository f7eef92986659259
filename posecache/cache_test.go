package posecache

import (
	"fmt"
	"testing"

	"github.com/automoto/rigmotion/clock"
	"github.com/automoto/rigmotion/rig"
)

func testOptions() Options {
	return Options{MaxSize: 10, TTL: 5, Tolerance: 0.01, PoolSize: 64, EvictRatio: 0.3}
}

func kneePose(v float64) rig.Pose {
	return rig.PoseOf(map[rig.JointID]rig.Angles{
		rig.LeftKnee:  {X: v},
		rig.RightKnee: {X: v / 2},
	})
}

func TestPutThenGetReturnsStoredPose(t *testing.T) {
	clk := clock.NewManual(0)
	c := New(clk, testOptions())
	want := kneePose(0.4)

	c.Put("knee:12", want, 0.125)
	got, ok := c.Get("knee:12", 0.13)
	if !ok {
		t.Fatal("expected a hit within tolerance")
	}
	if !got.ApproxEqual(want, 0) {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}
}

func TestGetMisses(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		phase   float64
		advance float64
	}{
		{name: "unknown key", key: "elbow:3", phase: 0.5},
		{name: "phase outside tolerance", key: "knee:50", phase: 0.52},
		{name: "expired", key: "knee:50", phase: 0.5, advance: 5},
		{name: "long expired", key: "knee:50", phase: 0.5, advance: 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clk := clock.NewManual(10)
			c := New(clk, testOptions())
			c.Put("knee:50", kneePose(0.2), 0.5)
			clk.Advance(tt.advance)

			if _, ok := c.Get(tt.key, tt.phase); ok {
				t.Error("expected a miss")
			}
			if s := c.Stats(); s.Misses != 1 || s.Hits != 0 {
				t.Errorf("stats = %+v", s)
			}
		})
	}
}

func TestGetJustBeforeTTLHits(t *testing.T) {
	clk := clock.NewManual(0)
	c := New(clk, testOptions())
	c.Put("k", kneePose(0.1), 0.3)
	clk.Advance(4.99)
	if _, ok := c.Get("k", 0.3); !ok {
		t.Error("entry younger than the TTL should hit")
	}
}

func TestGetWithinCustomTolerance(t *testing.T) {
	c := New(clock.NewManual(0), testOptions())
	c.Put("k", kneePose(0.1), 0.3)
	if _, ok := c.GetWithin("k", 0.35, 0.1); !ok {
		t.Error("wide tolerance should hit")
	}
	if _, ok := c.GetWithin("k", 0.35, 0.01); ok {
		t.Error("narrow tolerance should miss")
	}
}

func TestEvictsOldestThirtyPercent(t *testing.T) {
	clk := clock.NewManual(0)
	c := New(clk, testOptions())
	for i := 0; i < 10; i++ {
		c.Put(fmt.Sprintf("k%d", i), kneePose(float64(i)), 0)
		clk.Advance(0.01)
	}
	c.Put("k10", kneePose(10), 0)

	if got := c.Len(); got != 8 {
		t.Fatalf("Len() = %d, want 8", got)
	}
	for i := 0; i < 3; i++ {
		if _, ok := c.Get(fmt.Sprintf("k%d", i), 0); ok {
			t.Errorf("k%d should have been evicted", i)
		}
	}
	for i := 3; i <= 10; i++ {
		if _, ok := c.Get(fmt.Sprintf("k%d", i), 0); !ok {
			t.Errorf("k%d should still be cached", i)
		}
	}
	if s := c.Stats(); s.Evictions != 3 {
		t.Errorf("Evictions = %d, want 3", s.Evictions)
	}
}

func TestEvictionOrderWithSameTimestamp(t *testing.T) {
	c := New(clock.NewManual(0), testOptions())
	for i := 0; i < 11; i++ {
		c.Put(fmt.Sprintf("k%d", i), kneePose(1), 0)
	}
	for i := 0; i < 3; i++ {
		if _, ok := c.Get(fmt.Sprintf("k%d", i), 0); ok {
			t.Errorf("k%d should have been evicted first", i)
		}
	}
}

func TestOverwriteDoesNotEvict(t *testing.T) {
	c := New(clock.NewManual(0), testOptions())
	for i := 0; i < 10; i++ {
		c.Put(fmt.Sprintf("k%d", i), kneePose(1), 0)
	}
	c.Put("k5", kneePose(2), 0.5)
	if c.Len() != 10 {
		t.Errorf("Len() = %d, want 10", c.Len())
	}
	got, ok := c.Get("k5", 0.5)
	if !ok || got.At(rig.LeftKnee).X != 2 {
		t.Errorf("overwrite not visible: %+v, %v", got, ok)
	}
}

func TestMinimumEvictionIsOne(t *testing.T) {
	opts := testOptions()
	opts.MaxSize = 2
	c := New(clock.NewManual(0), opts)
	c.Put("a", kneePose(1), 0)
	c.Put("b", kneePose(1), 0)
	c.Put("c", kneePose(1), 0)
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if _, ok := c.Get("a", 0); ok {
		t.Error("oldest entry should be gone")
	}
}

func TestReturnedPoseIsACopy(t *testing.T) {
	c := New(clock.NewManual(0), testOptions())
	c.Put("k", kneePose(0.4), 0)
	first, _ := c.Get("k", 0)
	first.Set(rig.LeftKnee, rig.Angles{X: 9})

	again, _ := c.Get("k", 0)
	if again.At(rig.LeftKnee).X != 0.4 {
		t.Errorf("cache storage was mutated through a returned pose: %v", again.At(rig.LeftKnee))
	}
}

func TestRecycledStorageReadsAsMiss(t *testing.T) {
	opts := testOptions()
	opts.PoolSize = 4
	c := New(clock.NewManual(0), opts)

	c.Put("old", kneePose(0.1), 0)
	c.Put("new", kneePose(0.2), 0)
	c.Put("newer", kneePose(0.3), 0) // wraps over "old"'s slots

	if _, ok := c.Get("old", 0); ok {
		t.Error("entry whose slots were recycled must miss")
	}
	got, ok := c.Get("newer", 0)
	if !ok || got.At(rig.LeftKnee).X != 0.3 {
		t.Errorf("newest entry = %+v, %v", got, ok)
	}
	if s := c.Stats(); s.Stale != 1 {
		t.Errorf("Stale = %d, want 1", s.Stale)
	}
}

func TestPruneAndClear(t *testing.T) {
	clk := clock.NewManual(0)
	c := New(clk, testOptions())
	c.Put("a", kneePose(1), 0)
	clk.Advance(3)
	c.Put("b", kneePose(1), 0)
	clk.Advance(2.5)

	if n := c.Prune(); n != 1 {
		t.Errorf("Prune() = %d, want 1", n)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}

	c.Clear()
	if c.Len() != 0 || c.Stats() != (Stats{}) {
		t.Errorf("Clear left %d entries, stats %+v", c.Len(), c.Stats())
	}
}

func TestHitRate(t *testing.T) {
	c := New(clock.NewManual(0), testOptions())
	if c.Stats().HitRate() != 0 {
		t.Error("empty stats should have zero hit rate")
	}
	c.Put("k", kneePose(1), 0)
	c.Get("k", 0)
	c.Get("k", 0)
	c.Get("x", 0)
	c.Get("k", 0)
	if got := c.Stats().HitRate(); got != 0.75 {
		t.Errorf("HitRate() = %v, want 0.75", got)
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		name  string
		tag   string
		phase float64
		width float64
		mods  []string
		want  string
	}{
		{"bucketed", "knee", 0.125, 0.01, nil, "knee:12"},
		{"modifiers", "knee", 0.5, 0.1, []string{"support", "axe"}, "knee:5:support:axe"},
		{"zero width", "elbow", 0.7, 0, nil, "elbow:0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.tag, tt.phase, tt.width, tt.mods...); got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}
