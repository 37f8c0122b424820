package engine

import (
	"sync"
	"testing"
)

func TestModelCacheLookupWindow(t *testing.T) {
	c := NewModelCache()
	c.store(1, cachedModel{model: &linearModel{}, confidence: 0.8, trainedOn: 10})

	cases := []struct {
		sampleCount int
		wantHit     bool
	}{
		{9, false},  // snapshot shrank below the fit
		{10, true},  // exact fit size
		{14, true},  // inside the retrain budget
		{15, false}, // retrain due
		{20, false},
	}
	for _, tc := range cases {
		if _, hit := c.lookup(1, tc.sampleCount, 5); hit != tc.wantHit {
			t.Errorf("lookup with %d samples: hit=%v, want %v", tc.sampleCount, hit, tc.wantHit)
		}
	}
}

func TestModelCachePerUser(t *testing.T) {
	c := NewModelCache()
	c.store(1, cachedModel{model: &linearModel{}, confidence: 0.8, trainedOn: 10})

	if _, hit := c.lookup(2, 10, 5); hit {
		t.Error("user 2 must not see user 1's cached model")
	}
}

func TestModelCacheInvalidate(t *testing.T) {
	c := NewModelCache()
	c.store(1, cachedModel{model: &linearModel{}, confidence: 0.8, trainedOn: 10})
	c.store(2, cachedModel{model: &linearModel{}, confidence: 0.6, trainedOn: 12})

	c.Invalidate(1)
	if _, hit := c.lookup(1, 10, 5); hit {
		t.Error("invalidated entry still returned")
	}
	if _, hit := c.lookup(2, 12, 5); !hit {
		t.Error("invalidating user 1 dropped user 2's entry")
	}

	c.Reset()
	if _, hit := c.lookup(2, 12, 5); hit {
		t.Error("reset left an entry behind")
	}
}

func TestModelCacheNilReceiver(t *testing.T) {
	var c *ModelCache

	if _, hit := c.lookup(1, 10, 5); hit {
		t.Error("nil cache reported a hit")
	}
	c.store(1, cachedModel{trainedOn: 10}) // must not panic
	c.Invalidate(1)
	c.Reset()
}

func TestModelCacheConcurrentAccess(t *testing.T) {
	c := NewModelCache()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(userID uint) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.store(userID, cachedModel{model: &linearModel{}, trainedOn: j})
				c.lookup(userID, j, 5)
				if j%10 == 0 {
					c.Invalidate(userID)
				}
			}
		}(uint(i % 3))
	}
	wg.Wait()
}
